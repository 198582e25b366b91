package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dualgrad/internal/analysis"
	"github.com/san-kum/dualgrad/internal/viz"
)

const tickInterval = 400 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model reveals a precomputed convergence trace one step per tick, so
// the shape of the iteration is visible as it happens.
type Model struct {
	x      float64
	degree int
	steps  int

	trace  []analysis.ConvergencePoint
	shown  int
	paused bool

	width  int
	height int
}

func NewModel(x float64, degree, steps int) (*Model, error) {
	trace, err := analysis.Convergence(x, degree, steps)
	if err != nil {
		return nil, err
	}
	return &Model{
		x:      x,
		degree: degree,
		steps:  steps,
		trace:  trace,
		width:  80,
		height: 24,
	}, nil
}

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.shown = 0
			m.paused = false
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		if !m.paused && m.shown < len(m.trace) {
			m.shown++
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) View() string {
	var sb strings.Builder

	header := fmt.Sprintf("nthroot(%g, n=%d)  step %d/%d", m.x, m.degree, m.shown, len(m.trace))
	sb.WriteString(viz.Title.Render(header) + "\n\n")

	if m.shown > 0 {
		p := m.trace[m.shown-1]
		sb.WriteString(fmt.Sprintf("%s %s\n",
			viz.Label.Render("estimate  "), viz.Value.Render(fmt.Sprintf("%.15f", p.Value))))
		sb.WriteString(fmt.Sprintf("%s %s\n",
			viz.Label.Render("tangent   "), viz.Value.Render(fmt.Sprintf("%.15f", p.Tangent))))
		sb.WriteString(fmt.Sprintf("%s %s\n\n",
			viz.Label.Render("abs error "), viz.Value.Render(fmt.Sprintf("%.3e", p.ValueErr))))
	} else {
		sb.WriteString(viz.Subtle.Render("seeding...") + "\n\n")
	}

	if m.shown >= 2 {
		errs := make([]float64, m.shown)
		for i := 0; i < m.shown; i++ {
			errs[i] = m.trace[i].ValueErr
		}
		graphWidth := m.width - 12
		if graphWidth > 70 {
			graphWidth = 70
		}
		sb.WriteString(asciigraph.Plot(viz.Log10Errors(errs),
			asciigraph.Height(10),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("log10 |error|"),
		))
		sb.WriteString("\n")
	}

	status := "running"
	if m.paused {
		status = "paused"
	} else if m.shown == len(m.trace) {
		status = "done"
	}
	sb.WriteString("\n" + viz.Subtle.Render(status) + "  " +
		viz.KeyHint.Render("space pause · r restart · q quit") + "\n")

	return sb.String()
}

// Run starts the live view and blocks until the user quits.
func Run(x float64, degree, steps int) error {
	m, err := NewModel(x, degree, steps)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
