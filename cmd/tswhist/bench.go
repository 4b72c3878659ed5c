package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cyber-g/tswhist/algorithms/histogram"
	"github.com/cyber-g/tswhist/logging"
	"github.com/spf13/cobra"
)

func newBenchCmd(opts *cliOptions) *cobra.Command {
	var (
		length int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "bench [file]",
		Short: "Time the differential update against exhaustive re-binning",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var signal []float64
			if len(args) == 1 {
				data, err := loadSignal(cmd.Context(), opts.cfg, args[0], cmd.InOrStdin())
				if err != nil {
					return err
				}
				signal = data.Samples
			} else {
				rng := rand.New(rand.NewSource(seed))
				signal = make([]float64, length)
				for i := range signal {
					signal[i] = rng.Float64()
				}
			}

			params := opts.cfg.Params()
			sh := histogram.NewSlidingHistogram(params).WithLogger(&logging.NoOpLogger{})

			start := time.Now()
			sliding, err := sh.Compute(signal)
			if err != nil {
				return err
			}
			slidingTime := time.Since(start)

			start = time.Now()
			exhaustive, err := histogram.Exhaustive(signal, params)
			if err != nil {
				return err
			}
			exhaustiveTime := time.Since(start)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "samples:     %d\n", len(signal))
			fmt.Fprintf(out, "windows:     %d (bins=%d window=%d stride=%d)\n",
				sliding.NumWindows(), params.Bins, params.WindowLength, params.Stride)
			fmt.Fprintf(out, "sliding:     %v, %d operations\n", slidingTime, sliding.Operations)
			fmt.Fprintf(out, "exhaustive:  %v, %d operations\n", exhaustiveTime, exhaustive.Operations)
			if slidingTime > 0 {
				fmt.Fprintf(out, "speedup:     %.1fx\n", float64(exhaustiveTime)/float64(slidingTime))
			}
			fmt.Fprintf(out, "identical:   %t\n", sliding.Equal(exhaustive))
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 100_000, "length of the synthetic signal")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed of the synthetic signal")
	return cmd
}
