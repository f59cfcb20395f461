// Command watergrid-tui plays the scripted leak scenario back as an
// animated terminal view: the network snapshot advances along the sampling
// grid, with the leak neighbourhood highlightable at any point.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-watergrid/pkg/algorithms"
	"github.com/dd0wney/cluso-watergrid/pkg/logging"
	"github.com/dd0wney/cluso-watergrid/pkg/network"
	"github.com/dd0wney/cluso-watergrid/pkg/scenario"
	"github.com/dd0wney/cluso-watergrid/pkg/synth"
	"github.com/dd0wney/cluso-watergrid/pkg/visualization"
)

var (
	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF5555")).
			Padding(0, 1)

	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
)

type keyMap struct {
	PlayPause key.Binding
	StepBack  key.Binding
	StepFwd   key.Binding
	LeakPanel key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.StepBack, k.StepFwd, k.LeakPanel, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	PlayPause: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
	StepBack:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "step back")),
	StepFwd:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "step forward")),
	LeakPanel: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle leak ancestors")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type tickMsg time.Time

type model struct {
	net      *network.Network
	sc       *scenario.Scenario
	readings []synth.SensorReading
	grid     []time.Time
	renderer *visualization.SnapshotRenderer

	idx       int
	playing   bool
	showPanel bool
	help      help.Model
}

func newModel(net *network.Network, sc *scenario.Scenario, readings []synth.SensorReading) model {
	return model{
		net:      net,
		sc:       sc,
		readings: readings,
		grid:     sc.SynthRange().Grid(),
		renderer: visualization.NewSnapshotRenderer(72, 18),
		playing:  true,
		help:     help.New(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.playing && m.idx < len(m.grid)-1 {
			m.idx++
		}
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.PlayPause):
			m.playing = !m.playing
		case key.Matches(msg, keys.StepBack):
			m.playing = false
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.StepFwd):
			m.playing = false
			if m.idx < len(m.grid)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.LeakPanel):
			m.showPanel = !m.showPanel
		}
	}
	return m, nil
}

func (m model) View() string {
	if len(m.grid) == 0 {
		return "no timestamps to play\n"
	}
	ts := m.grid[m.idx]

	var leakNodes []string
	leakActive := !ts.Before(m.sc.Leak.Start) && !ts.After(m.sc.Leak.End)
	if leakActive {
		leakNodes = []string{m.sc.Leak.Node}
	}

	snapshot, err := m.renderer.Snapshot(m.net, m.readings, ts, leakNodes, m.sc.Name)
	if err != nil {
		snapshot = fmt.Sprintf("render failed: %v\n", err)
	}

	var b strings.Builder
	status := fmt.Sprintf("frame %d/%d", m.idx+1, len(m.grid))
	if leakActive {
		status += "  LEAK ACTIVE"
	}
	if !m.playing {
		status += pausedStyle.Render("  [paused]")
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(snapshot)

	if m.showPanel {
		b.WriteString(m.leakPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

// leakPanel lists the nodes upstream and downstream of the leak site.
func (m model) leakPanel() string {
	ancestors := sortedIDs(algorithms.Ancestors(m.net, m.sc.Leak.Node))
	descendants := sortedIDs(algorithms.Descendants(m.net, m.sc.Leak.Node))
	content := fmt.Sprintf("leak site %s\nupstream:   %s\ndownstream: %s",
		m.sc.Leak.Node,
		strings.Join(ancestors, " "),
		strings.Join(descendants, " "))
	return panelStyle.Render(content)
}

func sortedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func main() {
	sc, err := scenario.Default()
	if err != nil {
		log.Fatalf("Failed to load scenario: %v", err)
	}

	net, err := network.BuildDemoNetwork()
	if err != nil {
		log.Fatalf("Failed to build network: %v", err)
	}

	gen := synth.NewGenerator(synth.GeneratorOptions{
		Logger: logging.NewNopLogger(),
	})
	readings, err := gen.SensorReadings(net, sc.SynthRange())
	if err != nil {
		log.Fatalf("Failed to generate sensor data: %v", err)
	}
	readings = gen.InjectLeak(readings, net, sc.LeakEvent())

	p := tea.NewProgram(newModel(net, sc, readings), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
