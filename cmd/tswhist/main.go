// Command tswhist computes sliding-window histograms of 1D signals.
package main

import (
	"fmt"
	"os"

	"github.com/cyber-g/tswhist/config"
	"github.com/cyber-g/tswhist/logging"
	"github.com/spf13/cobra"
)

// cliOptions mirrors the HistogramConfig fields settable from flags
type cliOptions struct {
	configPath    string
	bins          int
	windowLength  int
	stride        int
	normalization string
	selfNormalize bool
	oneBased      bool
	format        string
	summary       bool
	maxSamples    int
	workers       int
	logLevel      string
	noColor       bool

	cfg *config.HistogramConfig
}

func main() {
	// stdout carries results, so every log level goes to stderr
	logging.SetGlobalLogger(logging.NewDefaultLoggerWithWriters(os.Stderr, os.Stderr))
	if stderrIsTerminal() {
		logging.EnableColors()
	}

	if err := newRootCmd().Execute(); err != nil {
		logging.Error(err, "tswhist failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	defaults := config.DefaultHistogramConfig()

	rootCmd := &cobra.Command{
		Use:           "tswhist",
		Short:         "Sliding-window histograms with differential updates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML or JSON config file")
	flags.IntVarP(&opts.bins, "bins", "b", defaults.Bins, "number of histogram bins (> 2)")
	flags.IntVarP(&opts.windowLength, "window", "w", defaults.WindowLength, "window length in samples")
	flags.IntVarP(&opts.stride, "stride", "s", defaults.Stride, "samples the window advances per step (< window)")
	flags.StringVar(&opts.normalization, "normalize", defaults.Normalization, "input normalization: none, minmax or clip")
	flags.BoolVar(&opts.selfNormalize, "self-normalize", defaults.SelfNormalize, "bin over [min,max] of the raw signal")
	flags.BoolVar(&opts.oneBased, "one-based", defaults.OneBasedLoci, "report 1-based window starts")
	flags.StringVarP(&opts.format, "format", "f", defaults.Format, "output format: json or csv")
	flags.BoolVar(&opts.summary, "summary", defaults.Summary, "add per-window entropy, mode and mean")
	flags.IntVar(&opts.maxSamples, "max-samples", defaults.MaxSamples, "truncate input to this many samples (0 = all)")
	flags.IntVar(&opts.workers, "workers", defaults.Workers, "batch workers (0 = GOMAXPROCS)")
	flags.StringVar(&opts.logLevel, "log-level", defaults.LogLevel, "debug, info, warn or error")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored log output")

	rootCmd.AddCommand(
		newComputeCmd(opts),
		newBatchCmd(opts),
		newBenchCmd(opts),
	)
	return rootCmd
}

// resolve loads the config file, applies explicitly set flags on top and
// configures logging
func (o *cliOptions) resolve(cmd *cobra.Command) error {
	cfg := config.DefaultHistogramConfig()
	if o.configPath != "" {
		loaded, err := config.LoadFile(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("bins") {
		cfg.Bins = o.bins
	}
	if flags.Changed("window") {
		cfg.WindowLength = o.windowLength
	}
	if flags.Changed("stride") {
		cfg.Stride = o.stride
	}
	if flags.Changed("normalize") {
		cfg.Normalization = o.normalization
	}
	if flags.Changed("self-normalize") {
		cfg.SelfNormalize = o.selfNormalize
	}
	if flags.Changed("one-based") {
		cfg.OneBasedLoci = o.oneBased
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("summary") {
		cfg.Summary = o.summary
	}
	if flags.Changed("max-samples") {
		cfg.MaxSamples = o.maxSamples
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.SetLevel(level)
	if o.noColor {
		logging.DisableColors()
	}

	o.cfg = cfg
	return nil
}

func stderrIsTerminal() bool {
	if fi, _ := os.Stderr.Stat(); fi != nil {
		return fi.Mode()&os.ModeCharDevice != 0
	}
	return false
}
