package mdc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamarche-perrin/mdc"
	"github.com/lamarche-perrin/mdc/testutil"
)

func buildABCWithValues(t *testing.T, cells map[[3]string]float64) *mdc.MultiSet {
	t.Helper()
	ms := testutil.MustABC(t)
	for names, v := range cells {
		require.NoError(t, ms.SetValue([]string{names[0], names[1], names[2]}, v))
	}
	require.NoError(t, ms.BuildMultiSubsets())
	return ms
}

func uniformCells(v float64) map[[3]string]float64 {
	cells := make(map[[3]string]float64)
	for _, a := range []string{"a1", "a2", "a3", "a4"} {
		for _, b := range []string{"b1", "b2", "b3"} {
			for _, c := range []string{"c1", "c2"} {
				cells[[3]string{a, b, c}] = v
			}
		}
	}
	return cells
}

func TestLoss_UniformDataIsLossless(t *testing.T) {
	ms := buildABCWithValues(t, uniformCells(1))

	for _, block := range ms.MultiSubsets() {
		assert.InDelta(t, 0, block.Loss(), 1e-12, "block %s", block)
	}
	assert.Equal(t, 24.0, ms.TopMultiSubset().SumValue())
}

func TestLoss_SingleCell(t *testing.T) {
	ms := buildABCWithValues(t, map[[3]string]float64{{"a3", "b2", "c1"}: 2})

	top := ms.TopMultiSubset()
	assert.Equal(t, 2.0, top.SumValue())
	assert.Equal(t, 24, top.MultiElementNb())

	// Raw loss 2*log2(24), normalized by sumValue 2.
	assert.InDelta(t, math.Log2(24), top.Loss(), 1e-12)

	for _, block := range ms.MultiSubsets() {
		// Single cells and all-zero blocks are lossless.
		if block.MultiElementNb() == 1 || block.SumValue() == 0 {
			assert.InDelta(t, 0, block.Loss(), 1e-12, "block %s", block)
		}
		// Loss is a KL divergence: never negative.
		assert.GreaterOrEqual(t, block.Loss(), -1e-12, "block %s", block)
	}
}

func TestLoss_ChildNeverExceedsParent(t *testing.T) {
	cells := uniformCells(0)
	cells[[3]string{"a1", "b1", "c1"}] = 3
	cells[[3]string{"a2", "b2", "c1"}] = 1
	cells[[3]string{"a4", "b3", "c2"}] = 0.25
	ms := buildABCWithValues(t, cells)

	for _, block := range ms.MultiSubsets() {
		for _, mp := range block.CandidatePartitions() {
			for _, child := range mp.Blocks() {
				assert.LessOrEqual(t, child.Loss(), block.Loss()+1e-12,
					"child %s of %s", child, block)
			}
		}
	}
}

func TestLoss_ZeroTotalSkipsNormalization(t *testing.T) {
	ms := buildABCWithValues(t, nil)

	for _, block := range ms.MultiSubsets() {
		assert.Zero(t, block.Loss())
	}
	assert.Zero(t, ms.TopMultiSubset().SumValue())
}
