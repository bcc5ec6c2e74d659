package objects

import (
	"context"
	"errors"
	"fmt"
	"io"

	"object-gateway/core/journal"
	"object-gateway/core/storage"
	"object-gateway/feature/objects/models"

	"go.uber.org/zap"
)

// MetadataName is the user metadata key holding an object's display name.
const MetadataName = "name"

var (
	// ErrEmptyBucket is returned when an operation is called without a bucket name.
	ErrEmptyBucket = errors.New("bucket name must not be empty")
	// ErrEmptyKey is returned when an object operation is called without a key.
	ErrEmptyKey = errors.New("object key must not be empty")
)

// Repository performs bucket and object operations against the storage provider.
type Repository struct {
	client  storage.Client
	waiter  storage.Waiter
	journal journal.Recorder
	logger  *zap.Logger
}

// NewRepository creates a new repository. A nil recorder disables the journal.
func NewRepository(client storage.Client, waiter storage.Waiter, recorder journal.Recorder, logger *zap.Logger) *Repository {
	if recorder == nil {
		recorder = journal.Nop{}
	}
	return &Repository{
		client:  client,
		waiter:  waiter,
		journal: recorder,
		logger:  logger,
	}
}

// CreateBucket creates a bucket and blocks until the provider reports it exists.
func (r *Repository) CreateBucket(ctx context.Context, bucket string) error {
	if bucket == "" {
		return ErrEmptyBucket
	}

	if err := r.client.CreateBucket(ctx, bucket); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	r.logger.Info("Sent request to create bucket", zap.String("bucket", bucket))

	if err := r.waiter.WaitForExists(ctx, r.client, bucket); err != nil {
		return err
	}
	r.logger.Info("Bucket is ready", zap.String("bucket", bucket))

	r.record(ctx, journal.OpBucketCreate, bucket, "")
	return nil
}

// DeleteBucket deletes a bucket and blocks until the provider reports it gone.
func (r *Repository) DeleteBucket(ctx context.Context, bucket string) error {
	if bucket == "" {
		return ErrEmptyBucket
	}

	if err := r.client.DeleteBucket(ctx, bucket); err != nil {
		return fmt.Errorf("failed to delete bucket %s: %w", bucket, err)
	}
	r.logger.Info("Sent request to delete bucket", zap.String("bucket", bucket))

	if err := r.waiter.WaitForNotExists(ctx, r.client, bucket); err != nil {
		return err
	}
	r.logger.Info("Bucket is deleted", zap.String("bucket", bucket))

	r.record(ctx, journal.OpBucketDelete, bucket, "")
	return nil
}

// ListObjects returns a descriptor for every object in the bucket.
// Each object costs one metadata, one URL and one ACL lookup.
func (r *Repository) ListObjects(ctx context.Context, bucket string) ([]models.Object, error) {
	if bucket == "" {
		return nil, ErrEmptyBucket
	}

	keys, err := r.client.ListObjectKeys(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects in %s: %w", bucket, err)
	}
	r.logger.Info("Listed objects", zap.String("bucket", bucket), zap.Int("count", len(keys)))

	objects := make([]models.Object, 0, len(keys))
	for _, key := range keys {
		meta, err := r.client.ObjectMetadata(ctx, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("failed to read metadata of %s/%s: %w", bucket, key, err)
		}

		url, err := r.client.ObjectURL(bucket, key)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve url of %s/%s: %w", bucket, key, err)
		}

		public, err := r.isPublic(ctx, bucket, key)
		if err != nil {
			return nil, err
		}

		name := meta[MetadataName]
		if name == "" {
			name = key
		}

		objects = append(objects, models.Object{
			Name:     name,
			Key:      key,
			URL:      url,
			IsPublic: public,
		})
	}

	return objects, nil
}

// Store uploads the payload under key with name as user metadata.
// The returned descriptor is private; the ACL is not read back.
func (r *Repository) Store(ctx context.Context, bucket, key, name string, payload io.Reader, size int64) (*models.Object, error) {
	if bucket == "" {
		return nil, ErrEmptyBucket
	}
	if key == "" {
		return nil, ErrEmptyKey
	}
	if name == "" {
		name = key
	}

	metadata := map[string]string{MetadataName: name}
	if err := r.client.PutObject(ctx, bucket, key, payload, size, metadata); err != nil {
		return nil, fmt.Errorf("failed to store %s/%s: %w", bucket, key, err)
	}
	r.logger.Info("Stored object",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.Int64("size", size))

	url, err := r.client.ObjectURL(bucket, key)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve url of %s/%s: %w", bucket, key, err)
	}

	r.record(ctx, journal.OpObjectStore, bucket, key)

	return &models.Object{
		Name:     name,
		Key:      key,
		URL:      url,
		IsPublic: false,
	}, nil
}

// MakePublic replaces the object's ACL with public-read.
func (r *Repository) MakePublic(ctx context.Context, bucket, key string) error {
	return r.setACL(ctx, bucket, key, storage.ACLPublicRead, journal.OpObjectPublic)
}

// MakePrivate replaces the object's ACL with bucket-owner-full-control.
func (r *Repository) MakePrivate(ctx context.Context, bucket, key string) error {
	return r.setACL(ctx, bucket, key, storage.ACLBucketOwnerFullControl, journal.OpObjectPrivate)
}

func (r *Repository) setACL(ctx context.Context, bucket, key string, acl storage.ACL, op journal.Operation) error {
	if bucket == "" {
		return ErrEmptyBucket
	}
	if key == "" {
		return ErrEmptyKey
	}

	if err := r.client.SetObjectACL(ctx, bucket, key, acl); err != nil {
		return fmt.Errorf("failed to set %s on %s/%s: %w", acl, bucket, key, err)
	}
	r.logger.Info("Changed object ACL",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.String("acl", string(acl)))

	r.record(ctx, op, bucket, key)
	return nil
}

func (r *Repository) isPublic(ctx context.Context, bucket, key string) (bool, error) {
	grants, err := r.client.ObjectACL(ctx, bucket, key)
	if err != nil {
		return false, fmt.Errorf("failed to read acl of %s/%s: %w", bucket, key, err)
	}
	return IsPublic(grants), nil
}

// IsPublic reports whether the grants give READ to the AllUsers group.
// Broader permissions such as FULL_CONTROL do not count.
func IsPublic(grants []storage.Grant) bool {
	for _, g := range grants {
		if g.Grantee.URI == storage.AllUsersURI && g.Permission == storage.PermissionRead {
			return true
		}
	}
	return false
}

func (r *Repository) record(ctx context.Context, op journal.Operation, bucket, key string) {
	if err := r.journal.Record(ctx, op, bucket, key); err != nil {
		r.logger.Warn("Failed to record operation",
			zap.String("operation", string(op)),
			zap.String("bucket", bucket),
			zap.Error(err))
	}
}
