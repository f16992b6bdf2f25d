package mdc

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Sweep solves the optimal partition for several lambda values and returns
// the results in input order.
//
// Solves run concurrently: the loss cache is read-only once the graph is
// built and each solve owns its DP scratch. Concurrency is bounded by the
// resource controller's solve-slot limit when one is configured.
func (m *MultiSet) Sweep(ctx context.Context, lambdas []float64) ([]*MultiPartition, error) {
	if !m.graphBuilt {
		return nil, ErrNotBuilt
	}

	results := make([]*MultiPartition, len(lambdas))
	g, ctx := errgroup.WithContext(ctx)
	if c := m.opts.controller; c != nil {
		g.SetLimit(c.MaxConcurrentSolves())
	}

	for i, lambda := range lambdas {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := m.OptimalPartition(lambda)
			if err != nil {
				return err
			}
			results[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
