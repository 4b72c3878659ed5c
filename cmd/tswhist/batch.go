package main

import (
	"github.com/cyber-g/tswhist/algorithms/histogram"
	"github.com/cyber-g/tswhist/logging"
	"github.com/spf13/cobra"
)

func newBatchCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch file...",
		Short: "Compute the sliding histograms of several signals in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkStdinOnce(args); err != nil {
				return err
			}
			ctx := cmd.Context()

			signals := make([][]float64, len(args))
			sources := make([]string, len(args))
			for i, path := range args {
				data, err := loadSignal(ctx, opts.cfg, path, cmd.InOrStdin())
				if err != nil {
					return err
				}
				signals[i] = data.Samples
				sources[i] = data.Source
			}

			sh := histogram.NewSlidingHistogram(opts.cfg.Params())
			results, err := sh.ComputeBatch(logging.ContextWithFields(ctx, logging.Fields{"command": "batch"}), signals, opts.cfg.Workers)
			if err != nil {
				return err
			}

			reports := make([]*report, len(results))
			for i, res := range results {
				reports[i] = newReport(sources[i], res, opts.cfg)
			}
			return writeResults(cmd.OutOrStdout(), opts.cfg, reports)
		},
	}
}
