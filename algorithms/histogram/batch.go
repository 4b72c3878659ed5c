package histogram

import (
	"context"
	"fmt"
	"runtime"

	"github.com/cyber-g/tswhist/logging"
	"golang.org/x/sync/errgroup"
)

// ComputeBatch runs Compute over independent signals on at most workers
// goroutines (GOMAXPROCS when workers <= 0). Results keep the input order.
// Each run owns its buffer, so runs share no mutable state. The first
// failure cancels the signals not yet started and is returned with its index.
func (sh *SlidingHistogram) ComputeBatch(ctx context.Context, signals [][]float64, workers int) ([]*Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(signals))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, signal := range signals {
		i, signal := i, signal
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := sh.Compute(signal)
			if err != nil {
				return fmt.Errorf("signal %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sh.logger.WithContext(ctx).Debug("Batch completed", logging.Fields{
		"signals": len(signals),
		"workers": workers,
	})
	return results, nil
}
