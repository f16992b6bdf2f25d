package mdc

import (
	"strings"

	"github.com/lamarche-perrin/mdc/hierarchy"
)

// MultiSubset is a rectangular block of the product space: a d-tuple of
// admissible subsets, one per dimension.
//
// Blocks live in a dense vector owned by the MultiSet, addressed in mixed
// radix over per-dimension subset ids. Candidate multi-partitions are
// generated by splitting exactly one dimension along one of that dimension's
// partitions.
type MultiSubset struct {
	ms      *MultiSet
	id      int
	subsets []*hierarchy.Subset
	top     bool
	bot     bool

	multiPartitions []*MultiPartition

	// Loss cache, populated once per data load. multiElementNb == 0 means
	// the aggregates have not been computed yet.
	multiElementNb int
	sumValue       float64
	sumInfo        float64
	loss           float64
}

// ID returns the dense block id.
func (s *MultiSubset) ID() int { return s.id }

// Subsets returns the per-dimension subsets in dimension order. The returned
// slice must not be modified.
func (s *MultiSubset) Subsets() []*hierarchy.Subset { return s.subsets }

// IsTop reports whether every component is its dimension's top subset.
func (s *MultiSubset) IsTop() bool { return s.top }

// IsBot reports whether every component is a leaf subset, i.e. the block
// covers a single cell.
func (s *MultiSubset) IsBot() bool { return s.bot }

// CandidatePartitions returns the block's candidate multi-partitions in
// generation order (dimension 0 first, each dimension's partitions in
// declaration order). The returned slice must not be modified.
func (s *MultiSubset) CandidatePartitions() []*MultiPartition { return s.multiPartitions }

// MultiElementNb returns the number of cells the block covers. Zero before
// the loss pass has run.
func (s *MultiSubset) MultiElementNb() int { return s.multiElementNb }

// SumValue returns the total value of the covered cells.
func (s *MultiSubset) SumValue() float64 { return s.sumValue }

// Loss returns the block's information loss. After BuildMultiSubsets it is
// normalized by the top block's total value (when that total is positive).
func (s *MultiSubset) Loss() float64 { return s.loss }

// String renders "(A12, B123, C12)".
func (s *MultiSubset) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, sub := range s.subsets {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sub.Name())
	}
	b.WriteString(")")
	return b.String()
}

// MultiPartition is an ordered list of blocks that jointly tile a parent
// block. Candidates hold only the block list; results returned by
// OptimalPartition additionally carry the aggregated size, loss and cost.
type MultiPartition struct {
	blocks []*MultiSubset

	lambda float64
	loss   float64
	cost   float64
}

// Blocks returns the tiling blocks. The returned slice must not be modified.
func (p *MultiPartition) Blocks() []*MultiSubset { return p.blocks }

// Size returns the number of blocks in the tiling.
func (p *MultiPartition) Size() int { return len(p.blocks) }

// Lambda returns the trade-off parameter this partition was solved for.
func (p *MultiPartition) Lambda() float64 { return p.lambda }

// Loss returns the summed loss of the blocks.
func (p *MultiPartition) Loss() float64 { return p.loss }

// Cost returns the summed cost of the blocks, i.e. Size() + Lambda()*Loss().
func (p *MultiPartition) Cost() float64 { return p.cost }

// String renders the block list, one block per line.
func (p *MultiPartition) String() string {
	var b strings.Builder
	for i, block := range p.blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block.String())
	}
	return b.String()
}
