package hierarchy

import "github.com/RoaringBitmap/roaring/v2"

// Validate checks that every declared partition of every subset is a true
// set-theoretic partition of its parent: children pairwise disjoint and
// jointly covering the parent's elements.
//
// Validation is optional. The loss and cost engines run without it, but
// their results are only meaningful on valid hierarchies.
func (s *Set) Validate() error {
	for _, sub := range s.subsets {
		if err := sub.validatePartitions(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Subset) validatePartitions() error {
	if s.IsLeaf() && !s.top {
		return nil
	}
	parent, err := s.Bitmap()
	if err != nil {
		return err
	}
	if s.top {
		// The parent bitmap derives from the canonical partition, so
		// undercoverage there is only visible against the full dimension.
		full := roaring.New()
		full.AddRange(0, uint64(s.set.Size()))
		if !parent.Equals(full) {
			return &ErrInvalidPartition{Subset: s.name, Index: 0, Reason: "top subset does not cover the dimension"}
		}
	}
	for i, p := range s.partitions {
		union := roaring.New()
		for _, child := range p.subsets {
			cbm, err := child.Bitmap()
			if err != nil {
				return err
			}
			if union.Intersects(cbm) {
				return &ErrInvalidPartition{Subset: s.name, Index: i, Reason: "children overlap"}
			}
			union.Or(cbm)
		}
		if !union.Equals(parent) {
			return &ErrInvalidPartition{Subset: s.name, Index: i, Reason: "children do not cover the parent"}
		}
	}
	return nil
}
