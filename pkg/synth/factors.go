package synth

import (
	"math"
	"time"

	"github.com/dd0wney/cluso-watergrid/pkg/network"
)

// Diurnal flow pattern: mean multiplier and jitter stddev per hour bucket.
// Buckets: night [0,6), morning peak [6,10), midday [10,17), evening peak
// [17,22), late night [22,24).
type flowBucket struct {
	mean   float64
	stddev float64
}

func flowDiurnal(hour int) flowBucket {
	switch {
	case hour < 6:
		return flowBucket{0.6, 0.05}
	case hour < 10:
		return flowBucket{1.2, 0.1}
	case hour < 17:
		return flowBucket{0.9, 0.08}
	case hour < 22:
		return flowBucket{1.3, 0.1}
	default:
		return flowBucket{0.7, 0.05}
	}
}

// Base pressure per attached node type, in arbitrary pressure units.
// Attachments outside this table have no defined pressure model.
func pressureBase(t network.NodeType) (float64, bool) {
	switch t {
	case network.TypeConsumptionZone:
		return 400_000, true
	case network.TypeJunction:
		return 500_000, true
	case network.TypePumpStation:
		return 600_000, true
	case network.TypeReservoir:
		return 200_000, true
	default:
		return 0, false
	}
}

// Demand multiplier per profile and hour. Cutoffs differ per profile and
// are load-bearing: residential peaks in the morning and evening,
// commercial during business hours, industrial over long shifts.
func demandDiurnal(profile network.DemandProfile, hour int) float64 {
	switch profile {
	case network.ProfileResidential:
		switch {
		case hour < 6:
			return 0.5
		case hour < 9:
			return 1.5
		case hour < 17:
			return 0.8
		case hour < 21:
			return 1.8
		default:
			return 0.7
		}
	case network.ProfileCommercial:
		switch {
		case hour < 8:
			return 0.2
		case hour < 18:
			return 1.5
		default:
			return 0.4
		}
	case network.ProfileIndustrial:
		if hour < 7 || hour >= 22 {
			return 0.7
		}
		return 1.3
	default:
		return 1.0
	}
}

// Weekend multiplier: commercial and industrial demand drops, residential
// rises slightly.
func weekendFactor(profile network.DemandProfile, day time.Weekday) float64 {
	if day != time.Saturday && day != time.Sunday {
		return 1.0
	}
	switch profile {
	case network.ProfileCommercial, network.ProfileIndustrial:
		return 0.7
	case network.ProfileResidential:
		return 1.1
	default:
		return 1.0
	}
}

// Seasonal demand curve, summer-peaking. Identical for all profiles.
func seasonalFactor(ts time.Time) float64 {
	dayOfYear := float64(ts.YearDay())
	return 1 + 0.2*math.Sin(2*math.Pi*(dayOfYear-170)/365)
}
