package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_OK(t *testing.T) {
	a := buildDimA(t)
	require.NoError(t, a.Validate())
}

func TestValidate_Overlap(t *testing.T) {
	a := NewSet("A", 0)
	e1, _ := a.AddElement("a1")
	e2, _ := a.AddElement("a2")
	s1, _ := a.AddSubset("A1", Leaf(e1))
	s2, _ := a.AddSubset("A2", Leaf(e2))
	s12, _ := a.AddSubset("A12", Internal())
	_, err := a.AddPartition(s12, s1, s2)
	require.NoError(t, err)
	// Second, overlapping alternative: {A1, A1}.
	_, err = a.AddPartition(s12, s1, s1)
	require.NoError(t, err)

	err = a.Validate()
	var inv *ErrInvalidPartition
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "A12", inv.Subset)
	assert.Equal(t, 1, inv.Index)
}

func TestValidate_Undercover(t *testing.T) {
	a := NewSet("A", 0)
	e1, _ := a.AddElement("a1")
	e2, _ := a.AddElement("a2")
	s1, _ := a.AddSubset("A1", Leaf(e1))
	s2, _ := a.AddSubset("A2", Leaf(e2))
	s12, _ := a.AddSubset("A12", Internal())
	_, err := a.AddPartition(s12, s1, s2)
	require.NoError(t, err)
	// Alternative that drops a2.
	_, err = a.AddPartition(s12, s1)
	require.NoError(t, err)

	err = a.Validate()
	var inv *ErrInvalidPartition
	require.ErrorAs(t, err, &inv)
	assert.Contains(t, inv.Reason, "cover")
}
