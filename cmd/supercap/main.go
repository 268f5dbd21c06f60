package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	supercapacitors "github.com/mmsg-warwick/supercapacitors"
	"github.com/mmsg-warwick/supercapacitors/eqn"
	"github.com/mmsg-warwick/supercapacitors/experiment"
	"github.com/mmsg-warwick/supercapacitors/export"
	"github.com/mmsg-warwick/supercapacitors/internal/render"
	"github.com/mmsg-warwick/supercapacitors/internal/tui"
	"github.com/mmsg-warwick/supercapacitors/models"
	"github.com/mmsg-warwick/supercapacitors/parameters"
)

var (
	asJSON     bool
	format     string
	outPath    string
	configFile string
	current    float64
	duration   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "supercap",
		Short: "supercapacitor model content for DAE simulation hosts",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive browser when no command given.
			return tui.Browse()
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list registered models",
		RunE:  listModels,
	}

	paramsCmd := &cobra.Command{
		Use:   "params [set]",
		Short: "list parameter sets or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showParams,
	}

	showCmd := &cobra.Command{
		Use:   "show [model]",
		Short: "print a model's equations",
		Args:  cobra.ExactArgs(1),
		RunE:  showModel,
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "emit a json summary instead")

	validateCmd := &cobra.Command{
		Use:   "validate [model] [set]",
		Short: "check that a parameter set closes a model",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  validatePair,
	}
	validateCmd.Flags().StringVar(&configFile, "config", "", "validate a run config (yaml) instead")

	exportCmd := &cobra.Command{
		Use:   "export [set]",
		Short: "export a parameter set",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSet,
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "json", "json, yaml or csv")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	previewCmd := &cobra.Command{
		Use:   "preview [set]",
		Short: "chart the reservoir model's constant-current response",
		Args:  cobra.ExactArgs(1),
		RunE:  previewSet,
	}
	previewCmd.Flags().Float64Var(&current, "current", 0, "discharge current in A (default from the set)")
	previewCmd.Flags().Float64Var(&duration, "time", 60, "window in s")

	experimentsCmd := &cobra.Command{
		Use:   "experiments [model]",
		Short: "show the nominal protocols",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showExperiments,
	}

	rootCmd.AddCommand(modelsCmd, paramsCmd, showCmd, validateCmd, exportCmd, previewCmd, experimentsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func listModels(cmd *cobra.Command, args []string) error {
	rows := [][]string{}
	for _, name := range supercapacitors.Models() {
		m, err := supercapacitors.NewModel(name)
		if err != nil {
			return err
		}
		summary := export.Summarize(m)
		rows = append(rows, []string{
			name,
			m.Name(),
			strconv.Itoa(summary.Differential),
			strconv.Itoa(summary.Algebraic),
			strconv.Itoa(len(summary.Parameters)),
		})
	}
	fmt.Print(render.Table([]string{"name", "model", "odes", "algebraic", "params"}, rows))
	return nil
}

func showParams(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		rows := [][]string{}
		for _, name := range supercapacitors.ParameterSets() {
			values, err := supercapacitors.GetParameterValues(name)
			if err != nil {
				return err
			}
			snap := export.Snapshot(name, values)
			rows = append(rows, []string{
				name,
				snap.Chemistry,
				strconv.Itoa(len(snap.Constants)),
				strconv.Itoa(len(snap.Functions)),
			})
		}
		fmt.Print(render.Table([]string{"name", "chemistry", "constants", "functions"}, rows))
		return nil
	}

	values, err := supercapacitors.GetParameterValues(args[0])
	if err != nil {
		return err
	}
	snap := export.Snapshot(args[0], values)

	rows := [][]string{}
	for _, name := range values.Names() {
		if v, ok := snap.Constants[name]; ok {
			rows = append(rows, []string{name, strconv.FormatFloat(v, 'g', -1, 64)})
		}
	}
	for _, name := range snap.Functions {
		rows = append(rows, []string{name, "function"})
	}
	fmt.Print(render.Table([]string{"parameter", "value"}, rows))
	return nil
}

func showModel(cmd *cobra.Command, args []string) error {
	m, err := supercapacitors.NewModel(args[0])
	if err != nil {
		return err
	}
	if asJSON {
		return export.WriteModelJSON(os.Stdout, m)
	}

	fmt.Println(render.Title.Render(m.Name()))
	fmt.Println()
	for _, name := range m.VariableNames() {
		if rhs, ok := m.RHS[name]; ok {
			fmt.Printf("d/dt %s = %s\n", render.Value.Render(name), rhs)
		}
	}
	for _, name := range m.VariableNames() {
		if res, ok := m.Algebraic[name]; ok {
			fmt.Printf("0 = %s  %s\n", res, render.Dim.Render("("+name+")"))
		}
	}
	fmt.Println()
	for _, name := range m.VariableNames() {
		bc, ok := m.BoundaryConditions[name]
		if !ok {
			continue
		}
		fmt.Printf("%s %s: left %s %s, right %s %s\n",
			render.Dim.Render("bc"), name,
			bc.Left.Kind, bc.Left.Value,
			bc.Right.Kind, bc.Right.Value)
	}
	fmt.Println()
	for _, ev := range m.Events {
		fmt.Printf("%s %s: %s\n", render.Dim.Render("event"), ev.Name, ev.Expr)
	}
	return nil
}

func validatePair(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		return validateConfig(configFile)
	}
	if len(args) != 2 {
		return fmt.Errorf("need a model and a parameter set (or --config)")
	}

	m, err := supercapacitors.NewModel(args[0])
	if err != nil {
		return err
	}
	values, err := supercapacitors.GetParameterValues(args[1])
	if err != nil {
		return err
	}

	if err := eqn.ValidatePair(m, values); err != nil {
		fmt.Println(render.Bad.Render("FAIL"), args[0], "×", args[1])
		return err
	}
	fmt.Println(render.Good.Render("OK"), args[0], "×", args[1])
	return nil
}

func validateConfig(path string) error {
	cfg, err := experiment.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	m, err := supercapacitors.NewModel(cfg.Model)
	if err != nil {
		return err
	}
	values, err := supercapacitors.GetParameterValues(cfg.ParameterSet)
	if err != nil {
		return err
	}
	if len(cfg.Overrides) > 0 {
		override := parameters.Values{}
		for name, v := range cfg.Overrides {
			override[name] = v
		}
		values = values.Merge(override)
	}

	if err := eqn.ValidatePair(m, values); err != nil {
		fmt.Println(render.Bad.Render("FAIL"), path)
		return err
	}

	e, err := cfg.Experiment()
	if err != nil {
		return err
	}
	fmt.Println(render.Good.Render("OK"), cfg.Model, "×", cfg.ParameterSet)
	fmt.Println(render.KeyValue("protocol", e.String()))
	return nil
}

func exportSet(cmd *cobra.Command, args []string) error {
	values, err := supercapacitors.GetParameterValues(args[0])
	if err != nil {
		return err
	}
	snap := export.Snapshot(args[0], values)

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return export.Write(out, export.Format(format), snap)
}

func previewSet(cmd *cobra.Command, args []string) error {
	values, err := supercapacitors.GetParameterValues(args[0])
	if err != nil {
		return err
	}

	capacitance, ok := values.Value("Cell capacitance [F]")
	if !ok {
		return fmt.Errorf("set %q has no cell capacitance", args[0])
	}
	seriesR, _ := values.Value("Series resistance [Ohm]")
	v0, _ := values.Value("Initial voltage [V]")
	i := current
	if i == 0 {
		i, _ = values.Value("Current function [A]")
	}

	// The reservoir model is linear, so its constant-current response
	// is exact; the chart just samples the formula.
	response := models.ReservoirResponse(capacitance, seriesR, v0, i)
	const points = 120
	samples := make([]float64, points)
	for k := range samples {
		samples[k] = response(duration * float64(k) / float64(points-1))
	}

	caption := fmt.Sprintf("reservoir × %s: %.3g A over %.3g s (V vs t)", args[0], i, duration)
	fmt.Println(render.Chart(samples, caption))
	return nil
}

func showExperiments(cmd *cobra.Command, args []string) error {
	names := experiment.PresetModels()
	if len(args) == 1 {
		names = args
	}
	for _, name := range names {
		e, err := experiment.Nominal(name)
		if err != nil {
			return err
		}
		fmt.Println(render.Title.Render(name))
		for _, step := range e.Steps {
			fmt.Println("  " + step.String())
		}
		fmt.Println(render.KeyValue("known duration", fmt.Sprintf("%.0f s", e.Duration())))
		fmt.Println()
	}
	return nil
}
