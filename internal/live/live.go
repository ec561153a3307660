// Package live animates a comparison run in the terminal, advancing all
// methods one grid step per tick.
package live

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/equisdel/odelab/internal/ode"
	"github.com/equisdel/odelab/internal/problems"
	"github.com/equisdel/odelab/internal/report"
)

const (
	plotWidth  = 72
	plotHeight = 14
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps every method over the shared grid, one step per tick, and
// renders the growing trajectories.
type Model struct {
	problem  problems.Problem
	grid     ode.Grid
	steppers []ode.Stepper

	x       float64
	ys      []float64   // current y per method
	history [][]float64 // accumulated y series per method
	ref     []float64   // reference series, nil without a closed form

	step    int
	running bool
	fps     int
}

func NewModel(p problems.Problem, g ode.Grid, steppers []ode.Stepper, fps int) Model {
	m := Model{
		problem:  p,
		grid:     g,
		steppers: steppers,
		x:        g.X0,
		ys:       make([]float64, len(steppers)),
		history:  make([][]float64, len(steppers)),
		running:  true,
		fps:      fps,
	}
	for i := range steppers {
		m.ys[i] = g.Y0
		m.history[i] = append(make([]float64, 0, g.Steps+1), g.Y0)
	}
	if p.Solution != nil {
		m.ref = append(make([]float64, 0, g.Steps+1), g.Y0)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			return NewModel(m.problem, m.grid, m.steppers, m.fps), m.tick()
		}
		return m, nil

	case TickMsg:
		if m.running && m.step < m.grid.Steps {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	for i, s := range m.steppers {
		m.ys[i] = s.Step(m.problem.F, m.x, m.ys[i], m.grid.H)
		m.history[i] = append(m.history[i], m.ys[i])
	}
	m.x += m.grid.H
	m.step++
	if m.ref != nil {
		m.ref = append(m.ref, m.problem.Solution(m.x))
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s — %s", m.problem.Name, m.problem.Summary)))
	b.WriteString("\n")
	b.WriteString(m.plot())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("x"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f  (step %d/%d)", m.x, m.step, m.grid.Steps)))
	b.WriteString("\n")
	for i, s := range m.steppers {
		b.WriteString(labelStyle.Render(report.DisplayName(s.Name())))
		line := fmt.Sprintf("y = %.6f", m.ys[i])
		if m.ref != nil {
			line += fmt.Sprintf("   |err| = %.3e", absDiff(m.ref[len(m.ref)-1], m.ys[i]))
		}
		b.WriteString(valueStyle.Render(line))
		b.WriteString("\n")
	}
	if m.ref != nil {
		b.WriteString(labelStyle.Render("Solution"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("y = %.6f", m.ref[len(m.ref)-1])))
		b.WriteString("\n")
	}

	if m.step >= m.grid.Steps {
		b.WriteString(doneStyle.Render("\ngrid exhausted"))
	}
	b.WriteString(helpStyle.Render("\nspace pause/resume · r reset · q quit"))
	return b.String()
}

func (m Model) plot() string {
	series := make([][]float64, 0, len(m.steppers)+1)
	legends := make([]string, 0, len(m.steppers)+1)
	colors := make([]asciigraph.AnsiColor, 0, len(m.steppers)+1)

	palette := []asciigraph.AnsiColor{asciigraph.Red, asciigraph.Orange, asciigraph.Cyan}
	for i, s := range m.steppers {
		series = append(series, m.history[i])
		legends = append(legends, report.DisplayName(s.Name()))
		colors = append(colors, palette[i%len(palette)])
	}
	if m.ref != nil {
		series = append(series, m.ref)
		legends = append(legends, "Solution")
		colors = append(colors, asciigraph.Green)
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
