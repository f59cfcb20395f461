package network

// BuildDemoNetwork constructs the fixed demonstration topology: one
// reservoir feeding two pump stations, four junctions, three consumption
// zones (one per demand profile), two valves, and nine sensors. Water flows
// from R1 out to the zones; pipes are oriented with the flow.
//
// The topology, coordinates and pipe properties are fixed. Callers that
// need a different network should assemble one with Builder.
func BuildDemoNetwork() (*Network, error) {
	b := NewBuilder()

	b.AddReservoir("R1", 1_000_000, 900_000, Coords{0, 0})

	b.AddPumpStation("P1", "on", 500, Coords{10, 5})
	b.AddPumpStation("P2", "on", 400, Coords{15, 10})

	b.AddJunction("J1", Coords{20, 15})
	b.AddJunction("J2", Coords{25, 20})
	b.AddJunction("J3", Coords{30, 10})
	b.AddJunction("J4", Coords{35, 15})

	b.AddConsumptionZone("Z1", ProfileResidential, 100, Coords{40, 5})
	b.AddConsumptionZone("Z2", ProfileCommercial, 80, Coords{45, 10})
	b.AddConsumptionZone("Z3", ProfileIndustrial, 120, Coords{50, 20})

	b.AddValve("V1", "open", Coords{22, 12})
	b.AddValve("V2", "open", Coords{32, 12})

	b.AddPipe("R1", "P1", 500, 0.8, "PVC")
	b.AddPipe("R1", "P2", 600, 0.7, "CastIron")
	b.AddPipe("P1", "J1", 300, 0.6, "PVC")
	b.AddPipe("P2", "J3", 400, 0.5, "DuctileIron")
	b.AddPipe("J1", "V1", 100, 0.4, "PVC")
	b.AddPipe("V1", "J2", 50, 0.4, "PVC")
	b.AddPipe("J1", "Z1", 250, 0.3, "PVC")
	b.AddPipe("J2", "J4", 200, 0.4, "DuctileIron")
	b.AddPipe("J3", "V2", 150, 0.3, "PVC")
	b.AddPipe("V2", "Z3", 100, 0.3, "PVC")
	b.AddPipe("J4", "Z2", 150, 0.3, "PVC")
	b.AddPipe("J4", "Z3", 100, 0.3, "PVC")

	b.AddSensor("S_F_J1", SensorFlow, "J1", Coords{19, 16})
	b.AddSensor("S_P_J1", SensorPressure, "J1", Coords{19.5, 15.5})
	b.AddSensor("S_F_Z1", SensorFlow, "Z1", Coords{39, 6})
	b.AddSensor("S_P_Z1", SensorPressure, "Z1", Coords{39.5, 5.5})
	b.AddSensor("S_F_Z2", SensorFlow, "Z2", Coords{44, 11})
	b.AddSensor("S_P_Z2", SensorPressure, "Z2", Coords{44.5, 10.5})
	b.AddSensor("S_F_Z3", SensorFlow, "Z3", Coords{49, 21})
	b.AddSensor("S_P_Z3", SensorPressure, "Z3", Coords{49.5, 20.5})
	b.AddSensor("S_L_R1", SensorLevel, "R1", Coords{1, 0.5})

	return b.Build()
}
