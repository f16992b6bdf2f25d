package snapshot

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamarche-perrin/mdc/blobstore"
	"github.com/lamarche-perrin/mdc/codec"
	"github.com/lamarche-perrin/mdc/testutil"
)

func sampleResult(t *testing.T) *Result {
	t.Helper()
	ms := testutil.MustABC(t)
	require.NoError(t, ms.SetValue([]string{"a3", "b2", "c1"}, 2))
	require.NoError(t, ms.BuildMultiSubsets())

	p, err := ms.OptimalPartition(2)
	require.NoError(t, err)
	return FromPartition(ms.Name(), p)
}

func TestFromPartition(t *testing.T) {
	res := sampleResult(t)

	assert.Equal(t, "ABC", res.Name)
	assert.Equal(t, 2.0, res.Lambda)
	assert.Equal(t, res.Size, len(res.Blocks))
	for _, names := range res.Blocks {
		assert.Len(t, names, 3)
	}
}

func TestWriteRead_AllCompressions(t *testing.T) {
	res := sampleResult(t)

	for _, comp := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, res, nil, comp))

		got, err := Read(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err, "compression %d", comp)
		assert.Equal(t, res, got, "compression %d", comp)
	}
}

func TestWriteRead_CodecByName(t *testing.T) {
	res := sampleResult(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, codec.JSON{}, CompressionZstd))

	got, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, res, got)
}

func TestRead_BadMagic(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not a snapshot at all")))
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestRead_CorruptPayload(t *testing.T) {
	res := sampleResult(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, nil, CompressionNone))
	data := buf.Bytes()
	data[len(data)-6] ^= 0xff // flip a payload byte

	_, err := Read(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrChecksum)
}

func TestPublishCurrent(t *testing.T) {
	ctx := context.Background()
	res := sampleResult(t)
	store := blobstore.NewMemoryStore()

	require.NoError(t, PublishCurrent(ctx, store, "snap/lambda2.mdcs", res, nil, CompressionZstd))

	got, err := Load(ctx, store, "snap/lambda2.mdcs")
	require.NoError(t, err)
	assert.Equal(t, res, got)

	got, err = LoadCurrent(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, res, got)
}
