package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/plotmorph/internal/config"
	"github.com/san-kum/plotmorph/internal/easing"
	"github.com/san-kum/plotmorph/internal/export"
	"github.com/san-kum/plotmorph/internal/render"
	"github.com/san-kum/plotmorph/internal/scene"
	"github.com/san-kum/plotmorph/internal/theme"
	"github.com/san-kum/plotmorph/internal/transition"
	"github.com/san-kum/plotmorph/internal/viz"
)

var (
	duration   float64
	frameRate  float64
	easingName string
	preset     string
	configFile string
	darkMode   bool
	// render outputs
	asciiOut bool
	svgDir   string
	gifPath  string
	jsonPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plotmorph",
		Short: "smooth animated transitions between plot states",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, []string{"line"})
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo [scene]",
		Short: "interactive transition viewer (scenes: line, scatter, bar)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDemo,
	}

	renderCmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "run a transition headless and export the frames",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().BoolVar(&asciiOut, "ascii", false, "print each frame as an ascii chart")
	renderCmd.Flags().StringVar(&svgDir, "svg-dir", "", "write one SVG per frame into this directory")
	renderCmd.Flags().StringVar(&gifPath, "gif", "", "record the transition to an animated GIF")
	renderCmd.Flags().StringVar(&jsonPath, "json", "", "write a JSON frame log")

	easingsCmd := &cobra.Command{
		Use:   "easings",
		Short: "list easing functions with a curve preview",
		Run:   runEasings,
	}

	for _, c := range []*cobra.Command{demoCmd, renderCmd} {
		c.Flags().Float64Var(&duration, "time", 0, "transition duration in seconds")
		c.Flags().Float64Var(&frameRate, "fps", 0, "frames per second")
		c.Flags().StringVar(&easingName, "easing", "", "easing function name")
		c.Flags().StringVar(&preset, "preset", "", "named preset for the scene")
		c.Flags().StringVar(&configFile, "config", "", "yaml config file")
		c.Flags().BoolVar(&darkMode, "dark", false, "toggle the scene to dark mode before running")
	}

	rootCmd.AddCommand(demoCmd, renderCmd, easingsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges file, preset and flag settings, flags winning.
func loadConfig(sceneName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if preset != "" {
		p := config.GetPreset(sceneName, preset)
		if p == nil {
			return nil, fmt.Errorf("no preset %q for scene %q (have: %v)",
				preset, sceneName, config.ListPresets(sceneName))
		}
		cfg = p
	}
	if duration > 0 {
		cfg.Duration = duration
	}
	if frameRate > 0 {
		cfg.FrameRate = frameRate
	}
	if easingName != "" {
		cfg.Easing = easingName
	}
	return cfg, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	sceneName := "line"
	if len(args) > 0 {
		sceneName = args[0]
	}
	cfg, err := loadConfig(sceneName)
	if err != nil {
		return err
	}
	from, to, err := demoPlots(sceneName)
	if err != nil {
		return err
	}
	applyDarkFlag(from, to, cfg)
	return viz.Run(from, to, cfg)
}

func runRender(cmd *cobra.Command, args []string) error {
	sceneName := "line"
	if len(args) > 0 {
		sceneName = args[0]
	}
	cfg, err := loadConfig(sceneName)
	if err != nil {
		return err
	}
	from, to, err := demoPlots(sceneName)
	if err != nil {
		return err
	}
	applyDarkFlag(from, to, cfg)

	// Flags win over the config file's export section.
	if svgDir == "" {
		svgDir = cfg.Export.SVGDir
	}
	if gifPath == "" {
		gifPath = cfg.Export.GIF
	}
	if jsonPath == "" {
		jsonPath = cfg.Export.JSON
	}

	var sinks transition.MultiSink
	if asciiOut || (svgDir == "" && gifPath == "" && jsonPath == "") {
		sinks = append(sinks, render.NewAsciiSink(os.Stdout))
	}
	if svgDir != "" {
		sinks = append(sinks, export.NewSVGSink(svgDir))
	}
	var gifSink *export.GIFSink
	if gifPath != "" {
		gifSink = export.NewGIFSink(cfg.Canvas.Width, cfg.Canvas.Height, cfg.FrameRate)
		sinks = append(sinks, gifSink)
	}
	var log *export.JSONLog
	if jsonPath != "" {
		log = export.NewJSONLog(cfg.Easing, cfg.Duration, cfg.FrameRate)
		sinks = append(sinks, log)
	}

	session, err := transition.NewSession(transition.Descriptor{
		From:      scene.Capture(from),
		To:        scene.Capture(to),
		Duration:  cfg.Duration,
		FrameRate: cfg.FrameRate,
		Easing:    cfg.Easing,
		Sink:      sinks,
	})
	if err != nil {
		return err
	}

	for {
		if _, err := session.Advance(); errors.Is(err, transition.ErrSessionEnded) {
			break
		}
	}

	if gifSink != nil {
		if err := gifSink.Save(gifPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", gifPath)
	}
	if log != nil {
		if err := log.WriteFile(jsonPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}
	for _, d := range session.Diagnostics() {
		fmt.Fprintf(os.Stderr, "warning: %v\n", d)
	}
	return nil
}

func runEasings(cmd *cobra.Command, args []string) {
	samples := 60
	for _, name := range easing.Names() {
		fn, _ := easing.ForName(name)
		data := make([]float64, samples+1)
		for i := 0; i <= samples; i++ {
			data[i] = fn(float64(i) / float64(samples))
		}
		chart := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption(name))
		fmt.Printf("%s\n\n", chart)
	}
}

// applyDarkFlag flips both plots to the dark palette when --dark is set or
// the config asks for the dark theme.
func applyDarkFlag(from, to *render.Plot, cfg *config.Config) {
	if !darkMode && cfg.Theme != "dark" {
		return
	}
	toggler := theme.NewToggler(theme.DefaultScheme())
	toggler.AdjustDataColors = true
	toggler.Register("from", from)
	toggler.Register("to", to)
	toggler.Toggle("from", from)
	toggler.Toggle("to", to)
}

// demoPlots builds the canned from/to scenes.
func demoPlots(name string) (*render.Plot, *render.Plot, error) {
	switch name {
	case "line":
		x := linspace(0, 2*math.Pi, 100)
		from, to := render.NewPlot(), render.NewPlot()
		from.Line(x, apply(x, math.Sin), scene.MustColor("steelblue"))
		to.Line(x, apply(x, math.Cos), scene.MustColor("tomato"))
		from.Autoscale()
		to.Autoscale()
		return from, to, nil

	case "scatter":
		n := 40
		fromX, fromY := make(scene.Vec, n), make(scene.Vec, n)
		toX, toY := make(scene.Vec, n), make(scene.Vec, n)
		for i := 0; i < n; i++ {
			// grid gathering into a circle
			fromX[i] = float64(i%8) - 3.5
			fromY[i] = float64(i/8) - 2.0
			a := 2 * math.Pi * float64(i) / float64(n)
			toX[i] = 3 * math.Cos(a)
			toY[i] = 3 * math.Sin(a)
		}
		from, to := render.NewPlot(), render.NewPlot()
		from.Scatter(fromX, fromY, 40, scene.MustColor("seagreen"))
		to.Scatter(toX, toY, 90, scene.MustColor("orchid"))
		from.Autoscale()
		to.Autoscale()
		return from, to, nil

	case "bar":
		from, to := render.NewPlot(), render.NewPlot()
		from.Bar(scene.Vec{3, 5, 2, 7, 4}, scene.MustColor("steelblue"))
		to.Bar(scene.Vec{6, 2, 8, 3, 9}, scene.MustColor("tomato"))
		from.Autoscale()
		to.Autoscale()
		return from, to, nil

	default:
		return nil, nil, fmt.Errorf("unknown scene %q (have: line, scatter, bar)", name)
	}
}

func linspace(lo, hi float64, n int) scene.Vec {
	v := make(scene.Vec, n)
	for i := range v {
		v[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return v
}

func apply(x scene.Vec, fn func(float64) float64) scene.Vec {
	y := make(scene.Vec, len(x))
	for i, val := range x {
		y[i] = fn(val)
	}
	return y
}
