package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "snap/001.mdcs", []byte("one")))
	require.NoError(t, store.Put(ctx, "snap/002.mdcs", []byte("two")))
	require.NoError(t, store.Put(ctx, "other.txt", []byte("x")))

	names, err := store.List(ctx, "snap/")
	require.NoError(t, err)
	assert.Equal(t, []string{"snap/001.mdcs", "snap/002.mdcs"}, names)

	got, err := ReadAll(ctx, store, "snap/002.mdcs")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))

	_, err = store.Open(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Delete(ctx, "snap/001.mdcs"))
	_, err = store.Open(ctx, "snap/001.mdcs")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_CreateStream(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	w, err := store.Create(ctx, "stream")
	require.NoError(t, err)
	_, err = w.Write([]byte("part1 "))
	require.NoError(t, err)
	_, err = w.Write([]byte("part2"))
	require.NoError(t, err)

	// Not visible until closed.
	_, err = store.Open(ctx, "stream")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, w.Close())
	got, err := ReadAll(ctx, store, "stream")
	require.NoError(t, err)
	assert.Equal(t, "part1 part2", string(got))
}
