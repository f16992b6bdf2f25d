// Package s3 provides BlobStore implementations backed by Amazon S3.
//
// Store keeps dataset files and snapshots as plain objects. CommitStore
// layers a DynamoDB table on top to atomically publish the "CURRENT"
// snapshot pointer, giving multiple writers compare-and-swap semantics that
// S3 alone lacks.
package s3
