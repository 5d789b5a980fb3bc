package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/tikzgen/internal/config"
	"github.com/san-kum/tikzgen/internal/expr"
	"github.com/san-kum/tikzgen/internal/plot"
	"github.com/san-kum/tikzgen/internal/preview"
	"github.com/san-kum/tikzgen/internal/tui"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	configFile string
	preset     string

	domainLow  float64
	domainHigh float64
	samples    int
	xLabel     string
	yLabel     string
	color      string
	grid       bool
	smooth     bool
	showAscii  bool
)

// main registers commands and flags; with no subcommand the interactive
// wizard runs, as in a plain `tikzgen` invocation.
func main() {
	rootCmd := &cobra.Command{
		Use:   "tikzgen",
		Short: "generate TikZ/PGFPlots code for functions and coordinate lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg, outputPath)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "write the document to a file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a named style preset")

	functionCmd := &cobra.Command{
		Use:   "function [expression]",
		Short: "generate a function plot from an expression in x",
		Args:  cobra.ExactArgs(1),
		RunE:  runFunction,
	}
	addPresentationFlags(functionCmd)
	functionCmd.Flags().Float64Var(&domainLow, "from", config.DefaultDomainLow, "domain lower bound")
	functionCmd.Flags().Float64Var(&domainHigh, "to", config.DefaultDomainHigh, "domain upper bound")
	functionCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sample count")
	functionCmd.Flags().BoolVar(&smooth, "smooth", true, "smooth the curve")

	coordsCmd := &cobra.Command{
		Use:   "coords [x,y;x,y;...]",
		Short: "generate a coordinate plot from a literal point list",
		Args:  cobra.ExactArgs(1),
		RunE:  runCoords,
	}
	addPresentationFlags(coordsCmd)

	functionsCmd := &cobra.Command{
		Use:   "functions",
		Short: "list supported functions and their PGFPlots spelling",
		RunE:  listFunctions,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list style presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(functionCmd, coordsCmd, functionsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPresentationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&xLabel, "xlabel", config.DefaultXLabel, "x-axis label")
	cmd.Flags().StringVar(&yLabel, "ylabel", config.DefaultYLabel, "y-axis label")
	cmd.Flags().StringVar(&color, "color", config.DefaultColor, "curve color (named or RGB)")
	cmd.Flags().BoolVar(&grid, "grid", true, "show major grid lines")
	cmd.Flags().BoolVar(&showAscii, "preview", false, "print an ASCII preview before the document")
}

// resolveConfig layers preset, config file and defaults; CLI flags are
// applied on top by the callers via cmd.Flags().Changed.
func resolveConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	return cfg, nil
}

func resolveOptions(cmd *cobra.Command, cfg *config.Config) plot.Options {
	opts := plot.Options{
		XLabel:  cfg.XLabel,
		YLabel:  cfg.YLabel,
		Color:   cfg.Color,
		Grid:    cfg.Grid,
		Samples: cfg.Samples,
		Smooth:  cfg.Smooth,
	}
	if cmd.Flags().Changed("xlabel") {
		opts.XLabel = xLabel
	}
	if cmd.Flags().Changed("ylabel") {
		opts.YLabel = yLabel
	}
	if cmd.Flags().Changed("color") {
		opts.Color = color
	}
	if cmd.Flags().Changed("grid") {
		opts.Grid = grid
	}
	if cmd.Flags().Changed("samples") {
		opts.Samples = samples
	}
	if cmd.Flags().Changed("smooth") {
		opts.Smooth = smooth
	}
	return opts
}

func runFunction(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	tree, err := expr.Parse(args[0])
	if err != nil {
		return err
	}

	low, high := cfg.DomainLow, cfg.DomainHigh
	if cmd.Flags().Changed("from") {
		low = domainLow
	}
	if cmd.Flags().Changed("to") {
		high = domainHigh
	}
	domain, err := plot.NewDomain(low, high)
	if err != nil {
		return err
	}

	opts := resolveOptions(cmd, cfg)
	if err := plot.ValidateOptions(opts); err != nil {
		return err
	}

	req := plot.Request{Function: &plot.Function{
		Source: args[0],
		Tree:   tree,
		Domain: domain,
	}}

	if showAscii {
		fmt.Println(preview.Function(tree, domain, args[0]))
		fmt.Println()
	}
	return emit(req, opts)
}

func runCoords(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	points, err := plot.ParseCoordinates(args[0])
	if err != nil {
		return err
	}

	opts := resolveOptions(cmd, cfg)
	if err := plot.ValidateOptions(opts); err != nil {
		return err
	}

	req := plot.Request{Coordinates: &plot.Coordinates{Points: points}}

	if showAscii {
		fmt.Println(preview.Coordinates(points, fmt.Sprintf("%d points", len(points))))
		fmt.Println()
	}
	return emit(req, opts)
}

func emit(req plot.Request, opts plot.Options) error {
	doc, err := plot.Document(req, opts)
	if err != nil {
		return err
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		fmt.Printf("wrote %s\n", outputPath)
		return nil
	}
	fmt.Println("Copy the following TikZ/PGFPlots code:")
	fmt.Println()
	fmt.Println(doc)
	return nil
}

func listFunctions(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INPUT\tPGFPLOTS\tNOTE")
	for _, name := range expr.Functions() {
		target, _ := expr.PGFName(name)
		note := ""
		switch name {
		case "log", "ln":
			note = "natural logarithm"
		case "sin", "cos", "tan":
			note = "radians (trig format plots=rad)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, target, note)
	}
	fmt.Fprintln(w, "pi\tpi\tconstant")
	fmt.Fprintln(w, "e\te\tconstant")
	return w.Flush()
}
