package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kylecz/blshoot/internal/config"
	"github.com/kylecz/blshoot/internal/export"
	"github.com/kylecz/blshoot/internal/shoot"
	"github.com/kylecz/blshoot/internal/storage"
)

var log = logrus.New()

var (
	dataDir    string
	mach       float64
	tempInf    float64
	etaMax     float64
	gridN      int
	iterMax    int
	tolProfile float64
	tolBC      float64
	alpha0     float64
	beta0      float64
	configFile string
	preset     string
	showPlot   bool
)

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd := &cobra.Command{
		Use:   "blshoot",
		Short: "compressible laminar boundary-layer shooting solver",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".blshoot", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve the similarity profile",
		RunE:  runSolve,
	}
	solveCmd.Flags().Float64Var(&mach, "mach", shoot.DefaultMach, "freestream Mach number")
	solveCmd.Flags().Float64Var(&tempInf, "temp", shoot.DefaultTemperature, "freestream temperature [K]")
	solveCmd.Flags().Float64Var(&etaMax, "etamax", shoot.DefaultEtaMax, "outer bound of the similarity coordinate")
	solveCmd.Flags().IntVar(&gridN, "n", shoot.DefaultN, "grid segments")
	solveCmd.Flags().IntVar(&iterMax, "itermax", shoot.DefaultMaxIter, "outer iteration cap")
	solveCmd.Flags().Float64Var(&tolProfile, "tol-profile", shoot.DefaultTolProfile, "profile-change tolerance")
	solveCmd.Flags().Float64Var(&tolBC, "tol-bc", shoot.DefaultTolBC, "boundary-condition tolerance")
	solveCmd.Flags().Float64Var(&alpha0, "alpha0", shoot.DefaultAlpha0, "initial guess for f''(0)")
	solveCmd.Flags().Float64Var(&beta0, "beta0", shoot.DefaultBeta0, "initial guess for T(0)")
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	solveCmd.Flags().BoolVar(&showPlot, "plot", false, "plot profiles after solving")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run profiles",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run profile to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run profile to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run profiles to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(solveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyConfig(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, cfg)
	}

	p := shoot.Params{
		Mach:        mach,
		Temperature: tempInf,
		EtaMax:      etaMax,
		N:           gridN,
		MaxIter:     iterMax,
		TolProfile:  tolProfile,
		TolBC:       tolBC,
		Alpha0:      alpha0,
		Beta0:       beta0,
	}

	solver := shoot.New(p)
	solver.AddObserver(shoot.ObserverFunc(func(iter int, errProfile, errBC float64) {
		log.Infof("iter %3d  err_profile %14.6e  err_bc %14.6e", iter, errProfile, errBC)
	}))

	start := time.Now()
	result, err := solver.Solve(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if result.Status == shoot.Converged {
		log.Infof("velocity profile converged after %d iterations (profile change %.3e <= %.1e)",
			result.Iterations, result.ErrProfile, p.TolProfile)
	} else {
		log.Warnf("iteration limit %d reached without profile convergence (profile change %.3e > %.1e)",
			p.MaxIter, result.ErrProfile, p.TolProfile)
	}
	if result.BCMet(p.TolBC) {
		log.Infof("far-field boundary condition met (|u(etamax)-1| = %.3e <= %.1e)", result.ErrBC, p.TolBC)
	} else {
		log.Warnf("far-field boundary condition not met (|u(etamax)-1| = %.3e > %.1e)", result.ErrBC, p.TolBC)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(p, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("f''(0) = %.6f   T(0) = %.6f\n", result.Alpha, result.Beta)

	if showPlot {
		plotProfiles(result.U, result.T, result.Y)
	}
	return nil
}

// applyConfig copies config values into the flag variables, keeping any
// value the user set explicitly on the command line.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("mach") {
		mach = cfg.Mach
	}
	if !cmd.Flags().Changed("temp") {
		tempInf = cfg.Temperature
	}
	if !cmd.Flags().Changed("etamax") {
		etaMax = cfg.EtaMax
	}
	if !cmd.Flags().Changed("n") {
		gridN = cfg.N
	}
	if !cmd.Flags().Changed("itermax") {
		iterMax = cfg.MaxIter
	}
	if !cmd.Flags().Changed("tol-profile") {
		tolProfile = cfg.TolProfile
	}
	if !cmd.Flags().Changed("tol-bc") {
		tolBC = cfg.TolBC
	}
	if !cmd.Flags().Changed("alpha0") {
		alpha0 = cfg.Guess.Alpha
	}
	if !cmd.Flags().Changed("beta0") {
		beta0 = cfg.Guess.Beta
	}
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
	fmt.Fprintln(w, "ID\tTIME\tMACH\tTEMP\tN\tITERS\tSTATUS\tERR_BC")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.1f\t%d\t%d\t%s\t%.2e\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Mach,
			run.Temperature,
			run.N,
			run.Iterations,
			run.Status,
			run.ErrBC,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	_, y, u, temp, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("mach: %.2f  temperature: %.1f K  status: %s\n\n", meta.Mach, meta.Temperature, meta.Status)

	plotProfiles(u, temp, y)
	return nil
}

func plotProfiles(u, temp, y []float64) {
	for _, plot := range []struct {
		data    []float64
		caption string
	}{
		{u, "u/u_inf vs eta"},
		{temp, "T/T_inf vs eta"},
		{y, "wall-normal coordinate y vs eta"},
	} {
		graph := asciigraph.Plot(plot.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(plot.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	eta, y, u, temp, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"eta", "y", "u", "temp"}); err != nil {
		return err
	}
	for i := range eta {
		row := []string{
			fmt.Sprintf("%.6f", eta[i]),
			fmt.Sprintf("%.6f", y[i]),
			fmt.Sprintf("%.6f", u[i]),
			fmt.Sprintf("%.6f", temp[i]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	eta, y, u, temp, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}

	curves := []export.Curve{
		{X: eta, Y: u, Label: "u/u_inf vs eta", Color: "#1f77b4"},
		{X: eta, Y: temp, Label: "T/T_inf vs eta", Color: "#d62728"},
		{X: y, Y: u, Label: "u/u_inf vs y", Color: "#2ca02c"},
	}
	_, err = fmt.Fprint(os.Stdout, export.ProfileSVG(curves, 640, 480))
	return err
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	eta, y, u, temp, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}
	return storage.ExportRunJSON(os.Stdout, meta, eta, y, u, temp)
}
