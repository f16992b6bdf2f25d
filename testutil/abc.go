package testutil

import (
	"testing"

	"github.com/lamarche-perrin/mdc"
	"github.com/lamarche-perrin/mdc/hierarchy"
)

// NewABC builds the canonical three-dimensional sample:
//
//	A = {a1..a4} with leaves A1..A4, A12 = {A1,A2}, A34 = {A3,A4},
//	    top A1234 = {A12,A34}
//	B = {b1..b3} with leaves B1..B3, B12 = {B1,B2}, B23 = {B2,B3},
//	    top B123 with two partitions {B1,B23} and {B12,B3}
//	C = {c1,c2} with leaves C1,C2, top C12 = {C1,C2}
//
// The grid is 4*3*2 = 24 cells; the graph is 7*6*3 = 126 blocks.
// Hierarchies are declared; the caller runs the build steps.
func NewABC(optFns ...mdc.Option) (*mdc.MultiSet, error) {
	ms := mdc.NewMultiSet("ABC", optFns...)

	a, err := ms.AddSet("A")
	if err != nil {
		return nil, err
	}
	var aElems []*hierarchy.Element
	for _, name := range []string{"a1", "a2", "a3", "a4"} {
		e, err := a.AddElement(name)
		if err != nil {
			return nil, err
		}
		aElems = append(aElems, e)
	}
	var aLeaves []*hierarchy.Subset
	for i, name := range []string{"A1", "A2", "A3", "A4"} {
		s, err := a.AddSubset(name, hierarchy.Leaf(aElems[i]))
		if err != nil {
			return nil, err
		}
		aLeaves = append(aLeaves, s)
	}
	a12, err := a.AddSubset("A12", hierarchy.Internal())
	if err != nil {
		return nil, err
	}
	if _, err := a.AddPartition(a12, aLeaves[0], aLeaves[1]); err != nil {
		return nil, err
	}
	a34, err := a.AddSubset("A34", hierarchy.Internal())
	if err != nil {
		return nil, err
	}
	if _, err := a.AddPartition(a34, aLeaves[2], aLeaves[3]); err != nil {
		return nil, err
	}
	aTop, err := a.AddSubset("A1234", hierarchy.Top())
	if err != nil {
		return nil, err
	}
	if _, err := a.AddPartition(aTop, a12, a34); err != nil {
		return nil, err
	}

	b, err := ms.AddSet("B")
	if err != nil {
		return nil, err
	}
	var bElems []*hierarchy.Element
	for _, name := range []string{"b1", "b2", "b3"} {
		e, err := b.AddElement(name)
		if err != nil {
			return nil, err
		}
		bElems = append(bElems, e)
	}
	var bLeaves []*hierarchy.Subset
	for i, name := range []string{"B1", "B2", "B3"} {
		s, err := b.AddSubset(name, hierarchy.Leaf(bElems[i]))
		if err != nil {
			return nil, err
		}
		bLeaves = append(bLeaves, s)
	}
	b12, err := b.AddSubset("B12", hierarchy.Internal())
	if err != nil {
		return nil, err
	}
	if _, err := b.AddPartition(b12, bLeaves[0], bLeaves[1]); err != nil {
		return nil, err
	}
	b23, err := b.AddSubset("B23", hierarchy.Internal())
	if err != nil {
		return nil, err
	}
	if _, err := b.AddPartition(b23, bLeaves[1], bLeaves[2]); err != nil {
		return nil, err
	}
	bTop, err := b.AddSubset("B123", hierarchy.Top())
	if err != nil {
		return nil, err
	}
	if _, err := b.AddPartition(bTop, bLeaves[0], b23); err != nil {
		return nil, err
	}
	if _, err := b.AddPartition(bTop, b12, bLeaves[2]); err != nil {
		return nil, err
	}

	c, err := ms.AddSet("C")
	if err != nil {
		return nil, err
	}
	var cElems []*hierarchy.Element
	for _, name := range []string{"c1", "c2"} {
		e, err := c.AddElement(name)
		if err != nil {
			return nil, err
		}
		cElems = append(cElems, e)
	}
	var cLeaves []*hierarchy.Subset
	for i, name := range []string{"C1", "C2"} {
		s, err := c.AddSubset(name, hierarchy.Leaf(cElems[i]))
		if err != nil {
			return nil, err
		}
		cLeaves = append(cLeaves, s)
	}
	cTop, err := c.AddSubset("C12", hierarchy.Top())
	if err != nil {
		return nil, err
	}
	if _, err := c.AddPartition(cTop, cLeaves[0], cLeaves[1]); err != nil {
		return nil, err
	}

	return ms, nil
}

// MustABC builds the sample multiset with its element grid allocated.
func MustABC(tb testing.TB, optFns ...mdc.Option) *mdc.MultiSet {
	tb.Helper()
	ms, err := NewABC(optFns...)
	if err != nil {
		tb.Fatalf("build ABC fixture: %v", err)
	}
	if err := ms.BuildMultiElements(); err != nil {
		tb.Fatalf("build ABC grid: %v", err)
	}
	return ms
}
