package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/equisdel/odelab/internal/compare"
	"github.com/equisdel/odelab/internal/config"
	"github.com/equisdel/odelab/internal/live"
	"github.com/equisdel/odelab/internal/ode"
	"github.com/equisdel/odelab/internal/problems"
	"github.com/equisdel/odelab/internal/report"
	"github.com/equisdel/odelab/internal/steppers"
	"github.com/equisdel/odelab/internal/store"
)

var (
	dataDir    string
	x0         float64
	y0         float64
	h          float64
	xf         float64
	digits     int
	methods    []string
	configFile string
	preset     string
	noSave     bool
	noPlot     bool
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "fixed-step ODE method comparison lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [problem]",
		Short: "run all methods on a problem and compare against the exact solution",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompare,
	}
	runCmd.Flags().Float64Var(&x0, "x0", 0, "initial x")
	runCmd.Flags().Float64Var(&y0, "y0", 0, "initial y")
	runCmd.Flags().Float64Var(&h, "h", 0, "step size")
	runCmd.Flags().Float64Var(&xf, "xf", 0, "final x (grid truncates, never rounds)")
	runCmd.Flags().IntVar(&digits, "digits", config.DefaultDigits, "display digits")
	runCmd.Flags().StringSliceVar(&methods, "methods", steppers.Names(), "methods to run")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the run")
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the terminal plot")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	problemsCmd := &cobra.Command{
		Use:   "problems",
		Short: "list built-in problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := problems.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range registry.List() {
				p, err := registry.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", name, p.Summary)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for problem: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "animate a comparison run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&x0, "x0", 0, "initial x")
	liveCmd.Flags().Float64Var(&y0, "y0", 0, "initial y")
	liveCmd.Flags().Float64Var(&h, "h", 0, "step size")
	liveCmd.Flags().Float64Var(&xf, "xf", 0, "final x")
	liveCmd.Flags().IntVar(&frameRate, "fps", 10, "steps per second")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, problemsCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveGrid layers the grid sources: problem defaults, then preset,
// then config file, then explicit flags.
func resolveGrid(cmd *cobra.Command, p problems.Problem) (ode.Grid, float64, error) {
	gx0, gy0, gh, gxf := p.X0, p.Y0, p.H, p.XF

	if preset != "" {
		cfg := config.GetPreset(p.Name, preset)
		if cfg == nil {
			return ode.Grid{}, 0, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(p.Name))
		}
		gx0, gy0, gh, gxf = cfg.Grid.X0, cfg.Grid.Y0, cfg.Grid.H, cfg.Grid.XF
		if !cmd.Flags().Changed("methods") && cfg.Methods != nil {
			methods = cfg.Methods
		}
		if !cmd.Flags().Changed("digits") && cfg.Digits != 0 {
			digits = cfg.Digits
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return ode.Grid{}, 0, fmt.Errorf("failed to load config: %w", err)
		}
		gx0, gy0, gh, gxf = cfg.Grid.X0, cfg.Grid.Y0, cfg.Grid.H, cfg.Grid.XF
		if !cmd.Flags().Changed("methods") {
			methods = cfg.Methods
		}
		if !cmd.Flags().Changed("digits") {
			digits = cfg.Digits
		}
	}

	if cmd.Flags().Changed("x0") {
		gx0 = x0
	}
	if cmd.Flags().Changed("y0") {
		gy0 = y0
	}
	if cmd.Flags().Changed("h") {
		gh = h
	}
	if cmd.Flags().Changed("xf") {
		gxf = xf
	}

	g, err := ode.NewGrid(gx0, gy0, gh, gxf)
	if err != nil {
		return ode.Grid{}, 0, err
	}
	return g, gxf, nil
}

func resolveSteppers(names []string) ([]ode.Stepper, error) {
	out := make([]ode.Stepper, 0, len(names))
	for _, name := range names {
		s, err := steppers.ByName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	registry := problems.NewRegistry()
	p, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	g, requestedXF, err := resolveGrid(cmd, p)
	if err != nil {
		return err
	}

	steps, err := resolveSteppers(methods)
	if err != nil {
		return err
	}

	runner := compare.NewRunner(steps...)
	rep, err := runner.Run(context.Background(), p.F, p.Solution, g)
	if err != nil {
		return err
	}

	if err := report.Table(os.Stdout, rep, digits); err != nil {
		return err
	}
	if p.Solution != nil && requestedXF != g.XFinal() {
		fmt.Printf("exact y(%g): %.*f (grid stops at x=%g)\n",
			requestedXF, digits, p.Solution(requestedXF), g.XFinal())
	}

	if !noPlot {
		fmt.Println()
		fmt.Println(report.Plot(rep, 80, 15))
	}

	if noSave {
		return nil
	}
	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(p.Name, requestedXF, rep)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tTIME\tX0\tXF\tH\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%g\t%d\n",
			run.ID,
			run.Problem,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.X0,
			run.XF,
			run.H,
			run.Steps,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples.Xs) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("problem: %s\n", meta.Problem)
	fmt.Printf("samples: %d\n\n", len(samples.Xs))

	series := make([][]float64, 0, len(samples.Series))
	legends := make([]string, 0, len(samples.Series))
	colors := make([]asciigraph.AnsiColor, 0, len(samples.Series))
	palette := []asciigraph.AnsiColor{asciigraph.Red, asciigraph.Orange, asciigraph.Cyan}
	for i, s := range samples.Series {
		series = append(series, s.Ys)
		if s.Name == "exact" {
			legends = append(legends, "Solution")
			colors = append(colors, asciigraph.Green)
			continue
		}
		legends = append(legends, report.DisplayName(s.Name))
		colors = append(colors, palette[i%len(palette)])
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("y over x in [%g, %g], h=%g", meta.X0, samples.Xs[len(samples.Xs)-1], meta.H)),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
	fmt.Println(graph)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	return store.ExportCSV(os.Stdout, samples)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSONStdout(meta, samples)
}

func runLive(cmd *cobra.Command, args []string) error {
	registry := problems.NewRegistry()
	p, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	g, _, err := resolveGrid(cmd, p)
	if err != nil {
		return err
	}

	m := live.NewModel(p, g, steppers.All(), frameRate)
	prog := tea.NewProgram(m)
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}
