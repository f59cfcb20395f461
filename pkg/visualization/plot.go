package visualization

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	plotAxisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	plotBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	plotBandStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	plotTitleStyle = lipgloss.NewStyle().Bold(true)
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// TimeWindow marks an interval on a plot, typically the leak event.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether ts falls inside the window, inclusive.
func (w TimeWindow) Contains(ts time.Time) bool {
	return !ts.Before(w.Start) && !ts.After(w.End)
}

// PlotConfig configures a terminal time-series plot.
type PlotConfig struct {
	Title  string
	YLabel string
	Width  int         // number of plot columns, default 72
	Height int         // number of plot rows, default 10
	Band   *TimeWindow // highlighted interval, optional
}

// PlotSeries renders a time series as a unicode area chart. Points are
// bucketed into Width columns by position, each column averaging its
// bucket. Columns inside the band are drawn in the band color.
func PlotSeries(points []Point, cfg PlotConfig) string {
	if cfg.Width <= 0 {
		cfg.Width = 72
	}
	if cfg.Height <= 0 {
		cfg.Height = 10
	}
	if len(points) == 0 {
		return plotAxisStyle.Render("(no data)") + "\n"
	}

	cols, inBand := bucketize(points, cfg.Width, cfg.Band)

	minV, maxV := math.MaxFloat64, -math.MaxFloat64
	for _, v := range cols {
		if math.IsNaN(v) {
			continue
		}
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	if maxV-minV < 1e-9 {
		maxV = minV + 1
	}

	var b strings.Builder
	if cfg.Title != "" {
		b.WriteString(plotTitleStyle.Render(cfg.Title))
		b.WriteByte('\n')
	}

	// Rows from top to bottom; a cell is filled when the column value
	// reaches that row's threshold.
	for row := cfg.Height - 1; row >= 0; row-- {
		threshold := minV + (maxV-minV)*float64(row)/float64(cfg.Height)
		label := ""
		if row == cfg.Height-1 {
			label = fmt.Sprintf("%12.1f", maxV)
		} else if row == 0 {
			label = fmt.Sprintf("%12.1f", minV)
		} else {
			label = strings.Repeat(" ", 12)
		}
		b.WriteString(plotAxisStyle.Render(label + " |"))
		for i, v := range cols {
			style := plotBarStyle
			if inBand[i] {
				style = plotBandStyle
			}
			switch {
			case math.IsNaN(v) || v < threshold:
				b.WriteByte(' ')
			default:
				b.WriteString(style.Render("█"))
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(plotAxisStyle.Render(strings.Repeat(" ", 12) + "+" + strings.Repeat("-", cfg.Width)))
	b.WriteByte('\n')
	b.WriteString(plotAxisStyle.Render(fmt.Sprintf("%14s%s ... %s",
		"", points[0].Timestamp.Format("01-02 15:04"), points[len(points)-1].Timestamp.Format("01-02 15:04"))))
	b.WriteByte('\n')
	if cfg.YLabel != "" {
		b.WriteString(plotAxisStyle.Render("              y: " + cfg.YLabel))
		b.WriteByte('\n')
	}
	if cfg.Band != nil {
		b.WriteString(plotBandStyle.Render(fmt.Sprintf("              band: %s ... %s",
			cfg.Band.Start.Format("01-02 15:04"), cfg.Band.End.Format("01-02 15:04"))))
		b.WriteByte('\n')
	}
	return b.String()
}

// Sparkline renders a compact one-line view of a series.
func Sparkline(points []Point, width int) string {
	if width <= 0 {
		width = 60
	}
	if len(points) == 0 {
		return ""
	}
	cols, _ := bucketize(points, width, nil)

	minV, maxV := math.MaxFloat64, -math.MaxFloat64
	for _, v := range cols {
		if math.IsNaN(v) {
			continue
		}
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	if maxV-minV < 1e-9 {
		maxV = minV + 1
	}

	var b strings.Builder
	for _, v := range cols {
		if math.IsNaN(v) {
			b.WriteByte(' ')
			continue
		}
		idx := int((v - minV) / (maxV - minV) * float64(len(sparkRunes)-1))
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// bucketize averages points into width columns and flags columns that
// overlap the band. Empty columns hold NaN.
func bucketize(points []Point, width int, band *TimeWindow) ([]float64, []bool) {
	cols := make([]float64, width)
	counts := make([]int, width)
	inBand := make([]bool, width)

	for i, p := range points {
		col := i * width / len(points)
		cols[col] += p.Value
		counts[col]++
		if band != nil && band.Contains(p.Timestamp) {
			inBand[col] = true
		}
	}
	for i := range cols {
		if counts[i] == 0 {
			cols[i] = math.NaN()
			continue
		}
		cols[i] /= float64(counts[i])
	}
	return cols, inBand
}
