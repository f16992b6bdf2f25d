package mdc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamarche-perrin/mdc"
	"github.com/lamarche-perrin/mdc/resource"
	"github.com/lamarche-perrin/mdc/testutil"
)

func TestSweep_MatchesIndividualSolves(t *testing.T) {
	ctrl := resource.NewController(resource.Config{MaxConcurrentSolves: 4})
	ms := testutil.MustABC(t, mdc.WithResourceController(ctrl))
	require.NoError(t, ms.SetValue([]string{"a3", "b2", "c1"}, 2))
	require.NoError(t, ms.BuildMultiSubsets())

	lambdas := []float64{0, 0.5, 2, 100, 100000}
	results, err := ms.Sweep(context.Background(), lambdas)
	require.NoError(t, err)
	require.Len(t, results, len(lambdas))

	for i, lambda := range lambdas {
		want, err := ms.OptimalPartition(lambda)
		require.NoError(t, err)
		assert.Equal(t, lambda, results[i].Lambda())
		assert.Equal(t, want.Size(), results[i].Size())
		assert.InDelta(t, want.Cost(), results[i].Cost(), 1e-9)
	}

	// Size grows monotonically with lambda.
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i].Size(), results[i-1].Size())
	}
}

func TestSweep_InvalidLambdaFails(t *testing.T) {
	ms := testutil.MustABC(t)
	require.NoError(t, ms.BuildMultiSubsets())

	_, err := ms.Sweep(context.Background(), []float64{1, -1})
	require.ErrorIs(t, err, mdc.ErrInvalidLambda)
}

func TestSweep_NotBuilt(t *testing.T) {
	ms := testutil.MustABC(t)
	_, err := ms.Sweep(context.Background(), []float64{1})
	require.ErrorIs(t, err, mdc.ErrNotBuilt)
}
