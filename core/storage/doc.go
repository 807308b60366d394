// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the record store can mirror catalog entries
// into an S3-compatible bucket instead of a local directory. This abstraction
// supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Prepare the destination bucket.
//   - PutObject: Uploads a whole entry (all-or-nothing from a reader's point of view).
//   - GetObject: Retrieves an entry as a stream.
//   - StatObject: Checks whether an entry exists without downloading it.
//   - ListObjects / RemoveObject: Scan a destination and drop stray objects.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "catalog")
package storage
