package resource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_MemoryBudget(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 1000})

	require.True(t, c.TryAcquireMemory(600))
	assert.Equal(t, int64(600), c.MemoryUsed())

	require.False(t, c.TryAcquireMemory(600))

	c.ReleaseMemory(600)
	assert.Equal(t, int64(0), c.MemoryUsed())
	require.True(t, c.TryAcquireMemory(1000))
}

func TestController_NoLimitTracksOnly(t *testing.T) {
	c := NewController(Config{})

	require.True(t, c.TryAcquireMemory(1<<40))
	assert.Equal(t, int64(1<<40), c.MemoryUsed())
	c.ReleaseMemory(1 << 40)
}

func TestController_NilIsSafe(t *testing.T) {
	var c *Controller

	require.True(t, c.TryAcquireMemory(42))
	c.ReleaseMemory(42)
	assert.Equal(t, int64(0), c.MemoryUsed())
	assert.Equal(t, 1, c.MaxConcurrentSolves())
	require.NoError(t, c.WaitIO(context.Background(), 10))
}

func TestController_SolveSlots(t *testing.T) {
	c := NewController(Config{MaxConcurrentSolves: 4})
	assert.Equal(t, 4, c.MaxConcurrentSolves())

	c = NewController(Config{})
	assert.Equal(t, 1, c.MaxConcurrentSolves())
}

func TestController_WaitIO(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})
	require.NoError(t, c.WaitIO(context.Background(), 1024))
}
