package hierarchy

import (
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Subset is an admissible set of elements of one dimension, usable as a block
// edge in that dimension. A leaf subset wraps exactly one element; any other
// subset carries at least one partition, the first of which is canonical.
type Subset struct {
	set  *Set
	name string
	id   int

	element    *Element // non-nil iff leaf
	top        bool
	partitions []*Partition

	bitmap *roaring.Bitmap // element ids, built on first use
}

// Set returns the owning dimension.
func (s *Subset) Set() *Set { return s.set }

// Name returns the subset's name, unique within its dimension.
func (s *Subset) Name() string { return s.name }

// ID returns the dense subset id in [0, set.SubsetCount()).
func (s *Subset) ID() int { return s.id }

// IsLeaf reports whether the subset wraps a single element.
func (s *Subset) IsLeaf() bool { return s.element != nil }

// IsTop reports whether the subset is the dimension's top.
func (s *Subset) IsTop() bool { return s.top }

// Element returns the wrapped element for a leaf subset, nil otherwise.
func (s *Subset) Element() *Element { return s.element }

// Partitions returns the declared partitions in insertion order. The
// returned slice must not be modified.
func (s *Subset) Partitions() []*Partition { return s.partitions }

// CanonicalPartition returns the first-declared partition, used for leaf
// enumeration and loss aggregation. Leaf subsets have none.
func (s *Subset) CanonicalPartition() (*Partition, error) {
	if s.IsLeaf() {
		return nil, nil
	}
	if len(s.partitions) == 0 {
		return nil, &ErrNoPartition{Set: s.set.name, Subset: s.name}
	}
	return s.partitions[0], nil
}

// LeafElements returns the elements covered by the subset, in the order
// produced by recursively expanding the canonical partition.
func (s *Subset) LeafElements() ([]*Element, error) {
	var out []*Element
	if err := s.appendLeafElements(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Subset) appendLeafElements(out *[]*Element) error {
	if s.IsLeaf() {
		*out = append(*out, s.element)
		return nil
	}
	p, err := s.CanonicalPartition()
	if err != nil {
		return err
	}
	for _, child := range p.subsets {
		if err := child.appendLeafElements(out); err != nil {
			return err
		}
	}
	return nil
}

// Bitmap returns the set of covered element ids as a Roaring bitmap. The
// bitmap is built once from the canonical expansion and cached; callers must
// not mutate it (use Clone first).
func (s *Subset) Bitmap() (*roaring.Bitmap, error) {
	if s.bitmap != nil {
		return s.bitmap, nil
	}
	bm := roaring.New()
	if s.IsLeaf() {
		bm.Add(uint32(s.element.id))
	} else {
		p, err := s.CanonicalPartition()
		if err != nil {
			return nil, err
		}
		for _, child := range p.subsets {
			cbm, err := child.Bitmap()
			if err != nil {
				return nil, err
			}
			bm.Or(cbm)
		}
	}
	s.bitmap = bm
	return bm, nil
}

// String renders "name = {elements} {p1 children} {p2 children} ...".
func (s *Subset) String() string {
	var b strings.Builder
	b.WriteString(s.name)
	b.WriteString(" = {")
	elems, err := s.LeafElements()
	if err == nil {
		for i, e := range elems {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.name)
		}
	}
	b.WriteString("}")
	for _, p := range s.partitions {
		b.WriteString(" ")
		b.WriteString(p.String())
	}
	return b.String()
}
