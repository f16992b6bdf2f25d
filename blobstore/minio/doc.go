// Package minio provides a BlobStore for MinIO and other S3-compatible
// endpoints via the MinIO Go client.
//
// Useful for self-hosted object storage holding shared datasets or
// published snapshots without AWS credentials.
package minio
