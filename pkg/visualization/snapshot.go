package visualization

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-watergrid/pkg/network"
	"github.com/dd0wney/cluso-watergrid/pkg/synth"
)

// ErrNoReadings is returned when a snapshot is requested against an empty
// sensor table. Callers skip the render; this is not fatal.
var ErrNoReadings = errors.New("no sensor readings to render")

// Node glyph styles by type
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	reservoirStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0000FF"))
	pumpStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
	junctionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	zoneStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF00FF"))
	valveStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	sensorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))

	leakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF0000"))

	pipeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// SnapshotRenderer renders the state of the network at a single timestamp
// as styled terminal output.
type SnapshotRenderer struct {
	width  int
	height int
	layout *CoordinateLayout
}

// NewSnapshotRenderer creates a renderer with the given canvas size in
// terminal cells.
func NewSnapshotRenderer(width, height int) *SnapshotRenderer {
	if width <= 0 {
		width = 72
	}
	if height <= 0 {
		height = 18
	}
	return &SnapshotRenderer{
		width:  width,
		height: height,
		layout: NewCoordinateLayout(LayoutConfig{Width: float64(width - 1), Height: float64(height - 1)}),
	}
}

// Snapshot renders the network at (or nearest to) the requested timestamp.
// Requested timestamps off the sampling grid fall back to the nearest grid
// timestamp; an empty table yields ErrNoReadings.
func (sr *SnapshotRenderer) Snapshot(net *network.Network, readings []synth.SensorReading, ts time.Time, leakNodes []string, title string) (string, error) {
	nearest, ok := NearestTimestamp(readings, ts)
	if !ok {
		return "", ErrNoReadings
	}
	atTS := ReadingsAt(readings, nearest)

	leaking := make(map[string]bool, len(leakNodes))
	for _, id := range leakNodes {
		leaking[id] = true
	}

	canvas := sr.drawCanvas(net, leaking)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s @ %s", title, nearest.Format("2006-01-02 15:04"))))
	b.WriteString("\n\n")
	b.WriteString(canvas)
	b.WriteString("\n")
	b.WriteString(sr.sensorTable(net, atTS, leaking))
	b.WriteString("\n")
	b.WriteString(legendStyle.Render("R reservoir  P pump  J junction  Z zone  V valve  * sensor"))
	b.WriteString("\n")
	return b.String(), nil
}

// drawCanvas rasterizes pipes then nodes onto a rune grid and styles it.
func (sr *SnapshotRenderer) drawCanvas(net *network.Network, leaking map[string]bool) string {
	positions := sr.layout.ComputeLayout(net)

	type cell struct {
		ch    rune
		style lipgloss.Style
	}
	grid := make([][]cell, sr.height)
	for y := range grid {
		grid[y] = make([]cell, sr.width)
		for x := range grid[y] {
			grid[y][x] = cell{ch: ' '}
		}
	}

	plot := func(x, y int, ch rune, style lipgloss.Style) {
		if x < 0 || x >= sr.width || y < 0 || y >= sr.height {
			return
		}
		grid[y][x] = cell{ch: ch, style: style}
	}

	// Pipes first so nodes draw over them.
	for _, pipe := range net.Pipes() {
		from, okF := positions[pipe.From]
		to, okT := positions[pipe.To]
		if !okF || !okT {
			continue
		}
		steps := int(maxFloat(absFloat(to.X-from.X), absFloat(to.Y-from.Y)))
		for i := 1; i < steps; i++ {
			t := float64(i) / float64(steps)
			plot(int(from.X+(to.X-from.X)*t+0.5), int(from.Y+(to.Y-from.Y)*t+0.5), '.', pipeStyle)
		}
	}

	for _, node := range net.Nodes() {
		pos, ok := positions[node.ID]
		if !ok {
			continue
		}
		ch, style := nodeGlyph(node)
		if leaking[node.ID] {
			style = leakStyle
			ch = '!'
		}
		plot(int(pos.X+0.5), int(pos.Y+0.5), ch, style)
	}

	var b strings.Builder
	for _, row := range grid {
		for _, c := range row {
			if c.ch == ' ' {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.ch)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// sensorTable lists the latest reading per sensor, grouped by the node the
// sensor is attached to.
func (sr *SnapshotRenderer) sensorTable(net *network.Network, atTS map[string]synth.SensorReading, leaking map[string]bool) string {
	ids := make([]string, 0, len(atTS))
	for id := range atTS {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		r := atTS[id]
		line := fmt.Sprintf("  %-8s %-8s @%-4s %12.1f", r.SensorID, r.SensorType, r.AttachedTo, r.Value)
		if leaking[r.AttachedTo] {
			line += "  " + leakStyle.Render("LEAK")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func nodeGlyph(node *network.Node) (rune, lipgloss.Style) {
	switch node.Type {
	case network.TypeReservoir:
		return 'R', reservoirStyle
	case network.TypePumpStation:
		return 'P', pumpStyle
	case network.TypeJunction:
		return 'J', junctionStyle
	case network.TypeConsumptionZone:
		return 'Z', zoneStyle
	case network.TypeValve:
		return 'V', valveStyle
	case network.TypeSensor:
		return '*', sensorStyle
	default:
		return '?', legendStyle
	}
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
