package mdc

import (
	"context"
	"math"
	"time"
)

// solveRun holds the per-lambda dynamic-programming state: one cost and one
// choice slot per block, reset at the start of every solve. Keeping the
// scratch on the run rather than on the blocks lets concurrent sweeps share
// the read-only loss cache without racing.
type solveRun struct {
	ms     *MultiSet
	lambda float64
	cost   []float64 // NaN = not computed
	choice []int32   // candidate index, -1 = keep as one block
}

// OptimalPartition computes the admissible rectangular tiling of the product
// space minimising size + lambda*loss, for lambda >= 0.
//
// Ties are broken by keeping the earlier choice: the single-block option wins
// over any tying candidate, and earlier candidates beat later ones.
func (m *MultiSet) OptimalPartition(lambda float64) (*MultiPartition, error) {
	start := time.Now()
	p, err := m.optimalPartition(lambda)
	size := 0
	cost := math.NaN()
	if p != nil {
		size = p.Size()
		cost = p.cost
	}
	m.opts.metricsCollector.RecordSolve(lambda, size, time.Since(start), err)
	m.opts.logger.LogSolve(context.Background(), lambda, size, cost, time.Since(start), err)
	return p, err
}

func (m *MultiSet) optimalPartition(lambda float64) (*MultiPartition, error) {
	if !m.graphBuilt {
		return nil, ErrNotBuilt
	}
	if math.IsNaN(lambda) || lambda < 0 {
		return nil, ErrInvalidLambda
	}

	run := &solveRun{
		ms:     m,
		lambda: lambda,
		cost:   make([]float64, len(m.multiSubsets)),
		choice: make([]int32, len(m.multiSubsets)),
	}
	for i := range run.cost {
		run.cost[i] = math.NaN()
		run.choice[i] = -1
	}

	run.computeCost(m.topMultiSubset)
	return run.reconstruct(), nil
}

func (r *solveRun) computeCost(s *MultiSubset) float64 {
	if c := r.cost[s.id]; !math.IsNaN(c) {
		return c
	}

	// Cost of keeping s as a single block: 1 for partition size,
	// lambda*loss for weighted information loss.
	best := 1 + r.lambda*s.loss
	choice := int32(-1)
	for i, mp := range s.multiPartitions {
		c := 0.0
		for _, child := range mp.blocks {
			c += r.computeCost(child)
		}
		if c < best {
			best = c
			choice = int32(i)
		}
	}

	r.cost[s.id] = best
	r.choice[s.id] = choice
	return best
}

// reconstruct flattens the chosen decomposition by a FIFO traversal from the
// top block: blocks whose choice is "keep" are emitted, others enqueue the
// children of their chosen candidate.
func (r *solveRun) reconstruct() *MultiPartition {
	result := &MultiPartition{lambda: r.lambda}

	queue := []*MultiSubset{r.ms.topMultiSubset}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		if c := r.choice[s.id]; c >= 0 {
			queue = append(queue, s.multiPartitions[c].blocks...)
			continue
		}
		result.blocks = append(result.blocks, s)
		result.loss += s.loss
		result.cost += r.cost[s.id]
	}
	return result
}
