package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDimA(t *testing.T) *Set {
	t.Helper()

	a := NewSet("A", 0)
	var elems []*Element
	for _, name := range []string{"a1", "a2", "a3", "a4"} {
		e, err := a.AddElement(name)
		require.NoError(t, err)
		elems = append(elems, e)
	}

	var leaves []*Subset
	for i, name := range []string{"A1", "A2", "A3", "A4"} {
		s, err := a.AddSubset(name, Leaf(elems[i]))
		require.NoError(t, err)
		leaves = append(leaves, s)
	}

	a12, err := a.AddSubset("A12", Internal())
	require.NoError(t, err)
	_, err = a.AddPartition(a12, leaves[0], leaves[1])
	require.NoError(t, err)

	a34, err := a.AddSubset("A34", Internal())
	require.NoError(t, err)
	_, err = a.AddPartition(a34, leaves[2], leaves[3])
	require.NoError(t, err)

	top, err := a.AddSubset("A1234", Top())
	require.NoError(t, err)
	_, err = a.AddPartition(top, a12, a34)
	require.NoError(t, err)

	return a
}

func TestSet_DenseIDs(t *testing.T) {
	a := buildDimA(t)

	for i, e := range a.Elements() {
		assert.Equal(t, i, e.ID())
	}
	for i, s := range a.Subsets() {
		assert.Equal(t, i, s.ID())
	}
	assert.Equal(t, 4, a.Size())
	assert.Equal(t, 7, a.SubsetCount())
}

func TestSet_DuplicateElement(t *testing.T) {
	a := NewSet("A", 0)
	_, err := a.AddElement("a1")
	require.NoError(t, err)

	_, err = a.AddElement("a1")
	var dup *ErrDuplicateName
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a1", dup.Name)
	assert.Equal(t, "A", dup.Set)
}

func TestSet_DuplicateSubset(t *testing.T) {
	a := NewSet("A", 0)
	e, err := a.AddElement("a1")
	require.NoError(t, err)

	_, err = a.AddSubset("A1", Leaf(e))
	require.NoError(t, err)
	_, err = a.AddSubset("A1", Internal())
	var dup *ErrDuplicateName
	require.ErrorAs(t, err, &dup)
}

func TestSet_MultipleTop(t *testing.T) {
	a := NewSet("A", 0)
	_, err := a.AddSubset("T1", Top())
	require.NoError(t, err)

	_, err = a.AddSubset("T2", Top())
	var multi *ErrMultipleTop
	require.ErrorAs(t, err, &multi)
	assert.Equal(t, "T1", multi.Existing)
	assert.Equal(t, "T2", multi.Name)
}

func TestSet_MarkTop(t *testing.T) {
	a := NewSet("A", 0)
	e, err := a.AddElement("a1")
	require.NoError(t, err)

	s1, err := a.AddSubset("S1", Leaf(e))
	require.NoError(t, err)
	require.NoError(t, a.MarkTop(s1))
	require.NoError(t, a.MarkTop(s1)) // idempotent
	assert.True(t, s1.IsTop())
	assert.True(t, s1.IsLeaf())

	s2, err := a.AddSubset("S2", Internal())
	require.NoError(t, err)
	var multi *ErrMultipleTop
	require.ErrorAs(t, a.MarkTop(s2), &multi)
}

func TestSet_UnknownLookups(t *testing.T) {
	a := buildDimA(t)

	_, err := a.Element("zz")
	var unknown *ErrUnknownName
	require.ErrorAs(t, err, &unknown)

	_, err = a.Subset("ZZ")
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ZZ", unknown.Name)
}

func TestSet_EmptyPartition(t *testing.T) {
	a := NewSet("A", 0)
	mid, err := a.AddSubset("M", Internal())
	require.NoError(t, err)

	_, err = a.AddPartition(mid)
	var empty *ErrEmptyPartition
	require.ErrorAs(t, err, &empty)
}

func TestSet_LeafPartition(t *testing.T) {
	a := NewSet("A", 0)
	e, err := a.AddElement("a1")
	require.NoError(t, err)
	leaf, err := a.AddSubset("A1", Leaf(e))
	require.NoError(t, err)

	_, err = a.AddPartition(leaf, leaf)
	var lp *ErrLeafPartition
	require.ErrorAs(t, err, &lp)
}

func TestSubset_LeafElements(t *testing.T) {
	a := buildDimA(t)

	top := a.TopSubset()
	require.NotNil(t, top)

	elems, err := top.LeafElements()
	require.NoError(t, err)
	names := make([]string, len(elems))
	for i, e := range elems {
		names[i] = e.Name()
	}
	// Canonical expansion preserves declaration order.
	assert.Equal(t, []string{"a1", "a2", "a3", "a4"}, names)
}

func TestSubset_NoPartition(t *testing.T) {
	a := NewSet("A", 0)
	mid, err := a.AddSubset("M", Internal())
	require.NoError(t, err)

	_, err = mid.LeafElements()
	var np *ErrNoPartition
	require.ErrorAs(t, err, &np)
	assert.Equal(t, "M", np.Subset)
}

func TestSubset_Bitmap(t *testing.T) {
	a := buildDimA(t)

	top := a.TopSubset()
	bm, err := top.Bitmap()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), bm.GetCardinality())

	a12, err := a.Subset("A12")
	require.NoError(t, err)
	bm12, err := a12.Bitmap()
	require.NoError(t, err)
	assert.True(t, bm12.Contains(0))
	assert.True(t, bm12.Contains(1))
	assert.False(t, bm12.Contains(2))
}
