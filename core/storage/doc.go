// Package storage provides an abstraction layer for object storage services.
//
// The Client interface is the contract the gateway needs from an object store:
// bucket lifecycle, object upload with user metadata, listing, metadata lookup,
// URL resolution and canned ACLs. Two providers implement it:
//
//   - minio: the MinIO Go client, for MinIO and other S3-compatible stores.
//   - s3: the AWS SDK for Go v2, for AWS S3 (or any endpoint via BaseEndpoint).
//
// # Existence Waiter
//
// Bucket creation and deletion are eventually consistent. Waiter polls
// BucketExists at a fixed interval and gives up with ErrWaitTimeout after a
// bounded number of attempts.
//
// # ACLs
//
// SetObjectACL replaces the whole ACL with one of two canned policies,
// ACLPublicRead or ACLBucketOwnerFullControl. ObjectACL returns the raw grants;
// a grant to the AllUsersURI group with PermissionRead means "public".
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := client.CreateBucket(ctx, "assets"); err != nil { ... }
//	err = storage.NewWaiter(cfg.Storage).WaitForExists(ctx, client, "assets")
package storage
