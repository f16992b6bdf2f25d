package mdc

import (
	"math"

	"github.com/lamarche-perrin/mdc/hierarchy"
)

// The loss pass computes, for every block, the number of covered cells, the
// total value, the value self-information sum
//
//	sumInfo = sum over cells with value > 0 of value*log2(value)
//
// and the resulting information loss
//
//	loss = sumValue*log2(nb) + sumInfo - sumValue*log2(sumValue)
//
// with the last term taken as 0 when sumValue == 0. This is the
// Kullback-Leibler cost of replacing the block's cells by their average
// density: 0 for single cells and uniform blocks, non-negative otherwise.
// Aggregates are memoized
// bottom-up: any candidate multi-partition tiles its parent exactly, so an
// internal block sums the aggregates of its canonical candidate's children;
// a block with no candidate enumerates its covered cells directly.
//
// After the pass, every loss is divided by the top block's total value so
// losses are per unit of mass. The division is skipped when that total is 0.
func (m *MultiSet) computeLoss() error {
	for _, block := range m.multiSubsets {
		if err := m.computeLossAggregates(block); err != nil {
			return err
		}
	}

	top := m.topMultiSubset
	if top.sumValue > 0 {
		for _, block := range m.multiSubsets {
			block.loss /= top.sumValue
		}
	}
	return nil
}

func (m *MultiSet) computeLossAggregates(s *MultiSubset) error {
	if s.multiElementNb != 0 {
		return nil
	}

	if len(s.multiPartitions) == 0 {
		if err := m.aggregateCells(s); err != nil {
			return err
		}
	} else {
		for _, child := range s.multiPartitions[0].blocks {
			if err := m.computeLossAggregates(child); err != nil {
				return err
			}
			s.multiElementNb += child.multiElementNb
			s.sumValue += child.sumValue
			s.sumInfo += child.sumInfo
		}
	}

	s.loss = s.sumValue*math.Log2(float64(s.multiElementNb)) + s.sumInfo
	if s.sumValue > 0 {
		s.loss -= s.sumValue * math.Log2(s.sumValue)
	}
	return nil
}

// aggregateCells sums value and entropy over the cells a block covers, by
// mixed-radix enumeration of the per-dimension leaf expansions.
func (m *MultiSet) aggregateCells(s *MultiSubset) error {
	dim := len(m.sets)
	elems := make([][]*hierarchy.Element, dim)
	strides := make([]int, dim)
	stride := 1
	nb := 1
	for d := 0; d < dim; d++ {
		le, err := s.subsets[d].LeafElements()
		if err != nil {
			return err
		}
		elems[d] = le
		strides[d] = stride
		stride *= m.sets[d].Size()
		nb *= len(le)
	}

	radix := make([]int, dim)
	for i := 0; i < nb; i++ {
		id := 0
		for d := 0; d < dim; d++ {
			id += elems[d][radix[d]].ID() * strides[d]
		}
		v := m.multiElements[id].value
		s.sumValue += v
		if v > 0 {
			s.sumInfo += v * math.Log2(v)
		}

		for d := 0; d < dim; d++ {
			radix[d]++
			if radix[d] < len(elems[d]) {
				break
			}
			radix[d] = 0
		}
	}
	s.multiElementNb = nb
	return nil
}
