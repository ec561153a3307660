// Package report renders comparison results for the terminal. It is pure
// presentation: rounding and styling here never feed back into the math.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/equisdel/odelab/internal/compare"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

var displayNames = map[string]string{
	"euler": "Euler",
	"heun":  "Improved Euler",
	"rk4":   "Runge-Kutta 4",
}

// DisplayName maps a method's canonical name to its report label.
func DisplayName(method string) string {
	if name, ok := displayNames[method]; ok {
		return name
	}
	return method
}

// Table writes the per-method final points and errors. digits controls
// display rounding only.
func Table(w io.Writer, rep *compare.Report, digits int) error {
	g := rep.Grid
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("simulation {n: %d; h: %g}", g.Steps, g.H)))
	fmt.Fprintf(w, "%s %s\n\n",
		labelStyle.Render("grid:"),
		valueStyle.Render(fmt.Sprintf("x0=%g y0=%g last x=%g", g.X0, g.Y0, g.XFinal())))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if rep.HasReference {
		fmt.Fprintln(tw, "METHOD\tFINAL X\tFINAL Y\tABS ERROR")
	} else {
		fmt.Fprintln(tw, "METHOD\tFINAL X\tFINAL Y")
	}

	for _, res := range rep.Results {
		if rep.HasReference {
			fmt.Fprintf(tw, "%s\t%.*f\t%.*f\t%s\n",
				DisplayName(res.Method),
				digits, res.Final.X,
				digits, res.Final.Y,
				errStyle.Render(fmt.Sprintf("%.*e", digits, res.AbsError)))
		} else {
			fmt.Fprintf(tw, "%s\t%.*f\t%.*f\n",
				DisplayName(res.Method),
				digits, res.Final.X,
				digits, res.Final.Y)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if rep.HasReference {
		fmt.Fprintf(w, "\n%s %s\n",
			labelStyle.Render(fmt.Sprintf("exact y(%g):", g.XFinal())),
			valueStyle.Render(fmt.Sprintf("%.*f", digits, rep.ReferenceFinal)))
	}
	return nil
}

// Plot renders all trajectories (and the reference when present) as one
// multi-series terminal graph. The legend order follows the original
// report sink: Euler red, Improved Euler orange, Runge-Kutta cyan,
// exact solution green.
func Plot(rep *compare.Report, width, height int) string {
	series := make([][]float64, 0, len(rep.Results)+1)
	legends := make([]string, 0, len(rep.Results)+1)
	colors := make([]asciigraph.AnsiColor, 0, len(rep.Results)+1)

	palette := []asciigraph.AnsiColor{asciigraph.Red, asciigraph.Orange, asciigraph.Cyan}
	for i, res := range rep.Results {
		series = append(series, res.Trajectory.Ys)
		legends = append(legends, DisplayName(res.Method))
		colors = append(colors, palette[i%len(palette)])
	}
	if rep.HasReference {
		series = append(series, rep.Reference.Ys)
		legends = append(legends, "Solution")
		colors = append(colors, asciigraph.Green)
	}

	caption := fmt.Sprintf("y over x in [%g, %g], h=%g",
		rep.Grid.X0, rep.Grid.XFinal(), rep.Grid.H)

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}
