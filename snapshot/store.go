package snapshot

import (
	"bytes"
	"context"

	"github.com/lamarche-perrin/mdc/blobstore"
	"github.com/lamarche-perrin/mdc/codec"
)

// Publish writes res to the store under the given blob name.
func Publish(ctx context.Context, store blobstore.BlobStore, name string, res *Result, c codec.Codec, comp Compression) error {
	var buf bytes.Buffer
	if err := Write(&buf, res, c, comp); err != nil {
		return err
	}
	return store.Put(ctx, name, buf.Bytes())
}

// PublishCurrent writes res under name and points "CURRENT" at it.
// On an s3.CommitStore the pointer update is an atomic conditional write;
// on plain stores it is a regular blob holding the name.
func PublishCurrent(ctx context.Context, store blobstore.BlobStore, name string, res *Result, c codec.Codec, comp Compression) error {
	if err := Publish(ctx, store, name, res, c, comp); err != nil {
		return err
	}
	return store.Put(ctx, "CURRENT", []byte(name))
}

// Load reads the snapshot stored under the given blob name.
func Load(ctx context.Context, store blobstore.BlobStore, name string) (*Result, error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, err
	}
	return Read(bytes.NewReader(data))
}

// LoadCurrent resolves the "CURRENT" pointer and loads the snapshot it
// names.
func LoadCurrent(ctx context.Context, store blobstore.BlobStore) (*Result, error) {
	ptr, err := blobstore.ReadAll(ctx, store, "CURRENT")
	if err != nil {
		return nil, err
	}
	return Load(ctx, store, string(bytes.TrimSpace(ptr)))
}
