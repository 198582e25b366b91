package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dualgrad/internal/analysis"
	"github.com/san-kum/dualgrad/internal/config"
	"github.com/san-kum/dualgrad/internal/storage"
	"github.com/san-kum/dualgrad/internal/study"
	"github.com/san-kum/dualgrad/internal/tui"
	"github.com/san-kum/dualgrad/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	degree     int
	steps      int
	methods    []string
	precisions []string
	configFile string
	preset     string
	svgOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dualgrad",
		Short: "forward-mode autodiff lab for root iterations",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".dualgrad", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [x]",
		Short: "compute the n-th root and its derivative",
		Args:  cobra.ExactArgs(1),
		RunE:  runStudy,
	}
	runCmd.Flags().IntVar(&degree, "degree", config.DefaultDegree, "root degree")
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "iteration count")
	runCmd.Flags().StringSliceVar(&methods, "methods", []string{"dual", "shadow"}, "differentiation methods")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	diffCmd := &cobra.Command{
		Use:   "diff [x]",
		Short: "compare differentiation methods",
		Args:  cobra.ExactArgs(1),
		RunE:  diffMethods,
	}
	diffCmd.Flags().IntVar(&degree, "degree", config.DefaultDegree, "root degree")
	diffCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "iteration count")

	convergeCmd := &cobra.Command{
		Use:   "converge [x]",
		Short: "plot error against iteration count",
		Args:  cobra.ExactArgs(1),
		RunE:  plotConvergence,
	}
	convergeCmd.Flags().IntVar(&degree, "degree", config.DefaultDegree, "root degree")
	convergeCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "iteration count")

	precisionCmd := &cobra.Command{
		Use:   "precision [x]",
		Short: "sweep arbitrary-precision mantissa widths",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepPrecision,
	}
	precisionCmd.Flags().IntVar(&degree, "degree", config.DefaultDegree, "root degree")
	precisionCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "iteration count")
	precisionCmd.Flags().StringSliceVar(&precisions, "levels", []string{"single", "double", "quad", "big256"}, "precision levels")
	precisionCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	liveCmd := &cobra.Command{
		Use:   "live [x]",
		Short: "watch the iteration converge step by step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseInput(args[0])
			if err != nil {
				return err
			}
			return tui.Run(x, degree, steps)
		},
	}
	liveCmd.Flags().IntVar(&degree, "degree", config.DefaultDegree, "root degree")
	liveCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "iteration count")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run's convergence trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run's error curve as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, diffCmd, convergeCmd, precisionCmd, liveCmd, listCmd, plotCmd, exportCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseInput(arg string) (float64, error) {
	x, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid input %q: %w", arg, err)
	}
	return x, nil
}

func runStudy(cmd *cobra.Command, args []string) error {
	x, err := parseInput(args[0])
	if err != nil {
		return err
	}

	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		degree = cfg.Degree
		steps = cfg.Steps
		methods = cfg.Methods
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("degree") {
			degree = cfg.Degree
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("methods") {
			methods = cfg.Methods
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	reg := study.NewRegistry()
	result, err := study.Run(reg, study.Config{
		X:       x,
		Degree:  degree,
		Steps:   steps,
		Methods: methods,
	})
	if err != nil {
		return err
	}

	runID, err := st.Save(result)
	if err != nil {
		return err
	}

	for _, name := range methods {
		if r, ok := result.Methods[name]; ok {
			fmt.Println(viz.ResultPanel(name, r))
		}
	}
	fmt.Printf("\nrun id: %s\n", runID)
	fmt.Printf("elapsed: %v\n", result.Elapsed)

	return nil
}

func diffMethods(cmd *cobra.Command, args []string) error {
	x, err := parseInput(args[0])
	if err != nil {
		return err
	}

	reg := study.NewRegistry()
	wantV := analysis.TrueRoot(x, degree)
	wantD := analysis.TrueDerivative(x, degree)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tVALUE\tDERIVATIVE\tVALUE ERR\tDERIV ERR")

	for _, name := range reg.MethodNames() {
		m, err := reg.GetMethod(name)
		if err != nil {
			return err
		}
		r, err := m(x, degree, steps)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.12f\t%.12f\t%.3e\t%.3e\n",
			name, r.Value, r.Derivative,
			abs(r.Value-wantV), abs(r.Derivative-wantD))
	}
	fmt.Fprintf(w, "%s\t%.12f\t%.12f\t\t\n", "closed-form", wantV, wantD)

	return w.Flush()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func plotConvergence(cmd *cobra.Command, args []string) error {
	x, err := parseInput(args[0])
	if err != nil {
		return err
	}

	points, err := analysis.Convergence(x, degree, steps)
	if err != nil {
		return err
	}

	fmt.Printf("nthroot(%g, n=%d), %d steps\n\n", x, degree, steps)
	fmt.Println(viz.ConvergencePlot(points, 70, 12))
	fmt.Println()

	last := points[len(points)-1]
	fmt.Printf("final value:      %.15f (err %.3e)\n", last.Value, last.ValueErr)
	fmt.Printf("final derivative: %.15f (err %.3e)\n", last.Tangent, last.TangentErr)

	return nil
}

func sweepPrecision(cmd *cobra.Command, args []string) error {
	x, err := parseInput(args[0])
	if err != nil {
		return err
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("degree") {
			degree = cfg.Degree
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("levels") && len(cfg.Precisions) > 0 {
			precisions = cfg.Precisions
		}
	}

	reg := study.NewRegistry()
	bits := make([]uint, 0, len(precisions))
	for _, name := range precisions {
		b, err := reg.GetPrecision(name)
		if err != nil {
			return fmt.Errorf("%w (available: %v)", err, reg.PrecisionNames())
		}
		bits = append(bits, b)
	}

	points, err := analysis.PrecisionSweep(x, degree, steps, bits)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tBITS\tVALUE\tABS ERR")
	for i, p := range points {
		fmt.Fprintf(w, "%s\t%d\t%.15f\t%.3e\n", precisions[i], p.Bits, p.Value, p.AbsError)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.PrecisionPlot(points, 60, 10))

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tX\tDEGREE\tSTEPS\tMETHODS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%d\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.X,
			run.Degree,
			run.Steps,
			len(run.Methods),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	if len(trace) == 0 {
		return fmt.Errorf("no trace to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("nthroot(%g, n=%d), %d steps\n\n", meta.X, meta.Degree, meta.Steps)

	errs := make([]float64, len(trace))
	for i, p := range trace {
		errs[i] = p.ValueErr
	}

	graph := asciigraph.Plot(viz.Log10Errors(errs),
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("log10 |error| vs iteration"),
	)
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	points, err := analysis.Convergence(meta.X, meta.Degree, meta.Steps)
	if err != nil {
		return err
	}

	svg := viz.ErrorCurveSVG(points, 640, 320, "#00ff88")
	if svg == "" {
		return fmt.Errorf("not enough trace points for an SVG curve")
	}

	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}
