package mdc

import (
	"context"
	"time"

	"github.com/lamarche-perrin/mdc/hierarchy"
)

// MultiSet is the whole product space: an ordered list of dimensions, the
// dense grid of cells, and the dense graph of rectangular blocks.
//
// Lifecycle: declare dimensions and hierarchies, BuildMultiElements, load
// cell values, BuildMultiSubsets (which runs the loss pass), then query
// OptimalPartition for any number of lambda values. Construction is
// single-threaded; once built, solves are safe to run concurrently.
type MultiSet struct {
	name string
	opts options

	sets       []*hierarchy.Set
	setsByName map[string]*hierarchy.Set

	multiElements  []*MultiElement
	multiSubsets   []*MultiSubset
	topMultiSubset *MultiSubset

	gridBuilt  bool
	graphBuilt bool

	gridBytes  int64
	graphBytes int64
}

// NewMultiSet creates an empty multiset.
func NewMultiSet(name string, optFns ...Option) *MultiSet {
	return &MultiSet{
		name:       name,
		opts:       applyOptions(optFns),
		setsByName: make(map[string]*hierarchy.Set),
	}
}

// Name returns the multiset's name.
func (m *MultiSet) Name() string { return m.name }

// Dim returns the number of dimensions.
func (m *MultiSet) Dim() int { return len(m.sets) }

// Sets returns the dimensions in declaration order. The returned slice must
// not be modified.
func (m *MultiSet) Sets() []*hierarchy.Set { return m.sets }

// Set resolves a dimension by name.
func (m *MultiSet) Set(name string) (*hierarchy.Set, error) {
	s, ok := m.setsByName[name]
	if !ok {
		return nil, &hierarchy.ErrUnknownName{Set: m.name, Name: name}
	}
	return s, nil
}

// AddSet declares a new dimension with the next dimension index.
func (m *MultiSet) AddSet(name string) (*hierarchy.Set, error) {
	if _, ok := m.setsByName[name]; ok {
		return nil, &hierarchy.ErrDuplicateName{Set: m.name, Name: name}
	}
	s := hierarchy.NewSet(name, len(m.sets))
	m.sets = append(m.sets, s)
	m.setsByName[name] = s
	return s, nil
}

// MultiElements returns the dense cell grid, or nil before
// BuildMultiElements. The returned slice must not be modified.
func (m *MultiSet) MultiElements() []*MultiElement { return m.multiElements }

// MultiSubsets returns the dense block vector, or nil before
// BuildMultiSubsets. The returned slice must not be modified.
func (m *MultiSet) MultiSubsets() []*MultiSubset { return m.multiSubsets }

// TopMultiSubset returns the block whose every component is its dimension's
// top subset, or nil before BuildMultiSubsets.
func (m *MultiSet) TopMultiSubset() *MultiSubset { return m.topMultiSubset }

// BuildMultiElements allocates the dense cell grid and populates each cell
// with its element tuple by mixed-radix enumeration, dimension 0 varying
// fastest. All values start at 0. Rebuilding resets every value.
func (m *MultiSet) BuildMultiElements() error {
	start := time.Now()
	err := m.buildMultiElements()
	m.opts.metricsCollector.RecordBuildGrid(len(m.multiElements), time.Since(start), err)
	m.opts.logger.LogBuildGrid(context.Background(), len(m.multiElements), time.Since(start), err)
	return err
}

func (m *MultiSet) buildMultiElements() error {
	n := 1
	for _, s := range m.sets {
		n *= s.Size()
	}

	// The grid is one of the two dominant allocations; ask the resource
	// controller first when one is configured.
	bytes := int64(n) * int64(64 + 8*len(m.sets))
	if c := m.opts.controller; c != nil {
		if m.gridBytes > 0 {
			c.ReleaseMemory(m.gridBytes)
			m.gridBytes = 0
		}
		if !c.TryAcquireMemory(bytes) {
			return c.MemoryBudgetError(bytes)
		}
		m.gridBytes = bytes
	}

	dim := len(m.sets)
	m.multiElements = make([]*MultiElement, n)
	radix := make([]int, dim)
	for id := 0; id < n; id++ {
		elems := make([]*hierarchy.Element, dim)
		for d := 0; d < dim; d++ {
			elems[d] = m.sets[d].ElementAt(radix[d])
		}
		m.multiElements[id] = &MultiElement{ms: m, id: id, elements: elems}

		for d := 0; d < dim; d++ {
			radix[d]++
			if radix[d] < m.sets[d].Size() {
				break
			}
			radix[d] = 0
		}
	}

	m.gridBuilt = true
	m.graphBuilt = false
	return nil
}

// MultiElement resolves a cell by its name tuple, one name per dimension in
// dimension order.
func (m *MultiSet) MultiElement(names []string) (*MultiElement, error) {
	if !m.gridBuilt {
		return nil, ErrNotBuilt
	}
	if len(names) != len(m.sets) {
		return nil, &ErrDimensionArityMismatch{Expected: len(m.sets), Actual: len(names)}
	}
	id := 0
	stride := 1
	for d, s := range m.sets {
		e, err := s.Element(names[d])
		if err != nil {
			return nil, err
		}
		id += e.ID() * stride
		stride *= s.Size()
	}
	return m.multiElements[id], nil
}

// MultiSubset resolves a block by its subset-name tuple, one name per
// dimension in dimension order.
func (m *MultiSet) MultiSubset(names []string) (*MultiSubset, error) {
	if !m.graphBuilt {
		return nil, ErrNotBuilt
	}
	if len(names) != len(m.sets) {
		return nil, &ErrDimensionArityMismatch{Expected: len(m.sets), Actual: len(names)}
	}
	id := 0
	stride := 1
	for d, s := range m.sets {
		sub, err := s.Subset(names[d])
		if err != nil {
			return nil, err
		}
		id += sub.ID() * stride
		stride *= s.SubsetCount()
	}
	return m.multiSubsets[id], nil
}

// SetValue assigns a value to the cell addressed by the name tuple.
func (m *MultiSet) SetValue(names []string, value float64) error {
	e, err := m.MultiElement(names)
	if err != nil {
		return err
	}
	e.value = value
	return nil
}

// BuildMultiSubsets allocates the dense block vector, generates every
// block's candidate multi-partitions by the product rule, then runs the loss
// pass and normalizes losses by the top block's total value.
//
// Requires BuildMultiElements to have run, and every dimension to have a top
// subset. Must be called again after cell values change.
func (m *MultiSet) BuildMultiSubsets() error {
	start := time.Now()
	err := m.buildMultiSubsets()
	m.opts.metricsCollector.RecordBuildGraph(len(m.multiSubsets), time.Since(start), err)
	m.opts.logger.LogBuildGraph(context.Background(), len(m.multiSubsets), time.Since(start), err)
	return err
}

func (m *MultiSet) buildMultiSubsets() error {
	if !m.gridBuilt {
		return ErrNotBuilt
	}
	for _, s := range m.sets {
		if s.TopSubset() == nil {
			return &ErrMissingTop{Set: s.Name()}
		}
		if m.opts.validate {
			if err := s.Validate(); err != nil {
				return err
			}
		}
	}

	dim := len(m.sets)
	n := 1
	for _, s := range m.sets {
		n *= s.SubsetCount()
	}

	bytes := int64(n) * int64(128 + 16*len(m.sets))
	if c := m.opts.controller; c != nil {
		if m.graphBytes > 0 {
			c.ReleaseMemory(m.graphBytes)
			m.graphBytes = 0
		}
		if !c.TryAcquireMemory(bytes) {
			return c.MemoryBudgetError(bytes)
		}
		m.graphBytes = bytes
	}

	m.multiSubsets = make([]*MultiSubset, n)
	m.topMultiSubset = nil
	radix := make([]int, dim)
	for id := 0; id < n; id++ {
		subs := make([]*hierarchy.Subset, dim)
		top, bot := true, true
		for d := 0; d < dim; d++ {
			subs[d] = m.sets[d].SubsetAt(radix[d])
			top = top && subs[d].IsTop()
			bot = bot && subs[d].IsLeaf()
		}
		block := &MultiSubset{ms: m, id: id, subsets: subs, top: top, bot: bot}
		m.multiSubsets[id] = block
		if top {
			m.topMultiSubset = block
		}

		for d := 0; d < dim; d++ {
			radix[d]++
			if radix[d] < m.sets[d].SubsetCount() {
				break
			}
			radix[d] = 0
		}
	}

	// Product rule: one candidate multi-partition per (dimension, partition)
	// pair, replacing that dimension's component by each child in turn.
	for _, block := range m.multiSubsets {
		stride := 1
		for d := 0; d < dim; d++ {
			base := block.id - block.subsets[d].ID()*stride
			for _, p := range block.subsets[d].Partitions() {
				mp := &MultiPartition{blocks: make([]*MultiSubset, 0, p.Size())}
				for _, child := range p.Subsets() {
					mp.blocks = append(mp.blocks, m.multiSubsets[base+child.ID()*stride])
				}
				block.multiPartitions = append(block.multiPartitions, mp)
			}
			stride *= m.sets[d].SubsetCount()
		}
	}

	if err := m.computeLoss(); err != nil {
		return err
	}

	m.graphBuilt = true
	return nil
}
