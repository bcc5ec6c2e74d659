package mocks

import (
	"context"
	"io"

	"object-gateway/core/storage"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) CreateBucket(ctx context.Context, bucket string) error {
	args := m.Called(ctx, bucket)
	return args.Error(0)
}

func (m *Client) DeleteBucket(ctx context.Context, bucket string) error {
	args := m.Called(ctx, bucket)
	return args.Error(0)
}

func (m *Client) BucketExists(ctx context.Context, bucket string) (bool, error) {
	args := m.Called(ctx, bucket)
	return args.Bool(0), args.Error(1)
}

func (m *Client) PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, metadata map[string]string) error {
	args := m.Called(ctx, bucket, key, reader, size, metadata)
	return args.Error(0)
}

func (m *Client) ListObjectKeys(ctx context.Context, bucket string) ([]string, error) {
	args := m.Called(ctx, bucket)
	if keys, ok := args.Get(0).([]string); ok {
		return keys, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ObjectMetadata(ctx context.Context, bucket, key string) (map[string]string, error) {
	args := m.Called(ctx, bucket, key)
	if meta, ok := args.Get(0).(map[string]string); ok {
		return meta, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ObjectURL(bucket, key string) (string, error) {
	args := m.Called(bucket, key)
	return args.String(0), args.Error(1)
}

func (m *Client) ObjectACL(ctx context.Context, bucket, key string) ([]storage.Grant, error) {
	args := m.Called(ctx, bucket, key)
	if grants, ok := args.Get(0).([]storage.Grant); ok {
		return grants, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) SetObjectACL(ctx context.Context, bucket, key string, acl storage.ACL) error {
	args := m.Called(ctx, bucket, key, acl)
	return args.Error(0)
}
