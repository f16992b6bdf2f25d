package s3

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamarche-perrin/mdc/blobstore"
)

// fakeDDB is an in-memory DDBClient good enough for commit-pointer logic.
type fakeDDB struct {
	items   []map[string]types.AttributeValue
	condErr bool
}

func (f *fakeDDB) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.condErr {
		return nil, &types.ConditionalCheckFailedException{}
	}
	f.items = append(f.items, params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDDB) Query(_ context.Context, _ *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if len(f.items) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	// Latest item wins (descending scan with limit 1).
	return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{f.items[len(f.items)-1]}}, nil
}

func TestCommitStore_PublishAndResolve(t *testing.T) {
	ctx := context.Background()
	ddb := &fakeDDB{}
	store := NewCommitStore(nil, ddb, "mdc-commits", "s3://bucket/mdc")

	// Nothing published yet.
	_, err := store.Open(ctx, "CURRENT")
	require.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, store.Put(ctx, "CURRENT", []byte("snap/001.mdcs")))
	require.NoError(t, store.Put(ctx, "CURRENT", []byte("snap/002.mdcs")))

	blob, err := store.Open(ctx, "CURRENT")
	require.NoError(t, err)
	defer blob.Close()

	buf := make([]byte, blob.Size())
	_, err = blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "snap/002.mdcs", string(buf))
}

func TestCommitStore_ConcurrentModification(t *testing.T) {
	ctx := context.Background()
	store := NewCommitStore(nil, &fakeDDB{condErr: true}, "mdc-commits", "s3://bucket/mdc")

	err := store.Put(ctx, "CURRENT", []byte("snap/001.mdcs"))
	require.ErrorIs(t, err, ErrConcurrentModification)
}

func TestStore_KeyMapping(t *testing.T) {
	s := NewStore(nil, "bucket", "datasets")
	assert.Equal(t, "datasets/dims/A.txt", s.key("dims/A.txt"))

	s = NewStore(nil, "bucket", "")
	assert.Equal(t, "values.txt", s.key("values.txt"))
}
