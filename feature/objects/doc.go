// Package objects exposes bucket and object operations over an S3-compatible store.
//
// The Repository wraps a storage.Client and turns provider calls into
// models.Object descriptors. Visibility is never cached: IsPublic is derived
// from the live ACL each time objects are listed.
//
// # HTTP Endpoints
//
//   - POST /api/v1/{bucketName} : Creates a bucket and waits until it exists.
//   - POST /api/v1/bucket/{bucketName}/object : Uploads the multipart "file" field.
//   - POST /api/v1/{bucketName}/object/{key} : Makes an object public.
//
// Deleting buckets, listing objects and making objects private are available
// from the CLI only.
package objects
