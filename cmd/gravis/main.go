package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/mknier/gravis/internal/anim"
	"github.com/mknier/gravis/internal/config"
	"github.com/mknier/gravis/internal/scene"
	"github.com/mknier/gravis/internal/trajectory"
	"github.com/mknier/gravis/internal/view"
)

var (
	configFile string
	rs         float64
	conversion string
	maxFrames  int
	attractor  float64
	animStep   float64
	sinkMode   string
	sinkHost   string
	sinkPort   int
	svgPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravis",
		Short: "relativistic trajectory visualization",
	}

	plotCmd := &cobra.Command{
		Use:   "plot [trajectory.csv]",
		Short: "visualize a trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrajectory,
	}
	addDatasetFlags(plotCmd)
	plotCmd.Flags().Float64Var(&attractor, "attractor", 0, "attractor sphere radius [m], 0 disables")
	plotCmd.Flags().Float64Var(&animStep, "anim-step", 0, "animation step size [s], 0 disables")
	plotCmd.Flags().StringVar(&sinkMode, "sink", "", "display target: local or remote")
	plotCmd.Flags().StringVar(&sinkHost, "host", "", "remote viewer host (default: discover gateway)")
	plotCmd.Flags().IntVar(&sinkPort, "port", config.DefaultSinkPort, "remote viewer port")
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "write a headless SVG snapshot instead of displaying")

	infoCmd := &cobra.Command{
		Use:   "info [trajectory.csv]",
		Short: "print dataset summary",
		Args:  cobra.ExactArgs(1),
		RunE:  printInfo,
	}
	addDatasetFlags(infoCmd)

	dilationCmd := &cobra.Command{
		Use:   "dilation [trajectory.csv]",
		Short: "chart time dilation along the worldline",
		Args:  cobra.ExactArgs(1),
		RunE:  chartDilation,
	}
	addDatasetFlags(dilationCmd)

	rootCmd.AddCommand(plotCmd, infoCmd, dilationCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addDatasetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Float64Var(&rs, "rs", 0, "Schwarzschild radius [m]")
	cmd.Flags().StringVar(&conversion, "conversion", "", "input interpretation: spherical or identity")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 0, "animation frame bound")
}

// buildConfig layers flag overrides over the optional config file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("rs") {
		cfg.Rs = rs
	}
	if cmd.Flags().Changed("conversion") {
		cfg.Conversion = conversion
	}
	if cmd.Flags().Changed("max-frames") {
		cfg.MaxAnimFrames = maxFrames
	}
	if cmd.Flags().Changed("attractor") {
		cfg.AttractorRadius = attractor
	}
	if cmd.Flags().Changed("anim-step") {
		cfg.AnimationStepSize = animStep
	}
	if cmd.Flags().Changed("sink") {
		cfg.Sink.Mode = sinkMode
	}
	if cmd.Flags().Changed("host") {
		cfg.Sink.Host = sinkHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Sink.Port = sinkPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDataset(cmd *cobra.Command, path string) (*trajectory.Dataset, *config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	m, err := trajectory.LoadCSV(path)
	if err != nil {
		return nil, nil, err
	}

	conv, err := cfg.ConversionMode()
	if err != nil {
		return nil, nil, err
	}
	ds, err := trajectory.New(m, cfg.Rs,
		trajectory.WithConversion(conv),
		trajectory.WithMaxAnimFrames(cfg.MaxAnimFrames))
	if err != nil {
		return nil, nil, err
	}
	return ds, cfg, nil
}

func resolveSink(cfg *config.Config) (scene.Sink, error) {
	if svgPath != "" {
		return view.NewSnapshotSink(svgPath), nil
	}

	var resolver scene.Resolver
	switch cfg.Sink.Mode {
	case "remote":
		r := scene.RemoteResolver{Port: cfg.Sink.Port}
		if cfg.Sink.Host != "" {
			r.Gateway = scene.StaticHost(cfg.Sink.Host)
		}
		resolver = r
	default:
		resolver = view.Resolver{}
	}
	return resolver.Resolve()
}

func plotTrajectory(cmd *cobra.Command, args []string) error {
	ds, cfg, err := loadDataset(cmd, args[0])
	if err != nil {
		return err
	}

	sink, err := resolveSink(cfg)
	if err != nil {
		return err
	}

	emitter := scene.NewEmitter(sink, anim.LogReporter{})
	if err := emitter.Plot(ds, scene.PlotOptions{
		AttractorRadius:   cfg.AttractorRadius,
		AnimationStepSize: cfg.AnimationStepSize,
	}); err != nil {
		sink.Close()
		return err
	}
	return sink.Close()
}

func printInfo(cmd *cobra.Command, args []string) error {
	ds, cfg, err := loadDataset(cmd, args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "samples\t%d\n", ds.Len())
	fmt.Fprintf(w, "rs [m]\t%g\n", cfg.Rs)
	if ds.Len() > 0 {
		fmt.Fprintf(w, "proper time span [s]\t%g\n", ds.MaxTau())
		fmt.Fprintf(w, "coordinate time span [s]\t%g\n", ds.MaxT())

		maxDiff := 0.0
		for i := 0; i < ds.Len(); i++ {
			if d := ds.Sample(i).TimeDiff(); d > maxDiff {
				maxDiff = d
			}
		}
		fmt.Fprintf(w, "max |t - tau| [s]\t%g\n", maxDiff)
	}
	return w.Flush()
}

func chartDilation(cmd *cobra.Command, args []string) error {
	ds, _, err := loadDataset(cmd, args[0])
	if err != nil {
		return err
	}
	if ds.Len() < 2 {
		return fmt.Errorf("not enough samples to chart")
	}

	series := make([]float64, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		series[i] = ds.Sample(i).TimeDilation()
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("time dilation t/tau along the worldline"),
	)
	fmt.Println(graph)
	return nil
}
