package main

import (
	"github.com/cyber-g/tswhist/algorithms/histogram"
	"github.com/spf13/cobra"
)

func newComputeCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compute [file]",
		Short: "Compute the sliding histograms of one signal",
		Long: `Compute the sliding histograms of one signal read from a WAV file,
a text/CSV list of numbers, any ffmpeg-readable audio file, or stdin.
Samples must lie in [0,1] unless --normalize or --self-normalize is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			data, err := loadSignal(cmd.Context(), opts.cfg, path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			res, err := histogram.NewSlidingHistogram(opts.cfg.Params()).Compute(data.Samples)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), opts.cfg, newReport(data.Source, res, opts.cfg))
		},
	}
}
