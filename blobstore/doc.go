// Package blobstore abstracts where datasets and snapshots live.
//
// The compression engine itself is storage-agnostic: hierarchy files, value
// files and solved-partition snapshots are read and written through the
// BlobStore interface. Implementations in this module:
//
//   - LocalStore: plain files under a root directory
//   - MemoryStore: in-memory, for tests
//   - s3.Store: objects on Amazon S3 (optionally with a DynamoDB-backed
//     commit pointer for atomically publishing the current snapshot)
//   - minio.Store: any S3-compatible endpoint via the MinIO client
package blobstore
