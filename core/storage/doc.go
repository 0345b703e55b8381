// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that downloaded media files (featured images)
// can be kept in AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket bootstrap (EnsureBucket).
//   - PutObject: uploads a media file.
//   - RemoveObject: deletes a superseded media file.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
