package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioAPI is the subset of *minio.Client used by minioClient.
type minioAPI interface {
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	RemoveBucket(ctx context.Context, bucketName string) error
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	GetObjectACL(ctx context.Context, bucketName, objectName string) (*minio.ObjectInfo, error)
	CopyObject(ctx context.Context, dst minio.CopyDestOptions, src minio.CopySrcOptions) (minio.UploadInfo, error)
	EndpointURL() *url.URL
}

type minioClient struct {
	api    minioAPI
	region string
}

func newMinioClient(cfg Config) (*minioClient, error) {
	endpoint, secure := normalizeEndpoint(cfg.Endpoint, cfg.UseSSL)

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    secure,
		Region:    cfg.Region,
		Transport: newTransport(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	// Minio connects lazily; the first operation surfaces connectivity errors.
	return &minioClient{api: mc, region: cfg.Region}, nil
}

func (c *minioClient) CreateBucket(ctx context.Context, bucket string) error {
	return c.api.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: c.region})
}

func (c *minioClient) DeleteBucket(ctx context.Context, bucket string) error {
	return c.api.RemoveBucket(ctx, bucket)
}

func (c *minioClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	return c.api.BucketExists(ctx, bucket)
}

func (c *minioClient) PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, metadata map[string]string) error {
	_, err := c.api.PutObject(ctx, bucket, key, reader, size, minio.PutObjectOptions{UserMetadata: metadata})
	return err
}

func (c *minioClient) ListObjectKeys(ctx context.Context, bucket string) ([]string, error) {
	keys := []string{}
	for obj := range c.api.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

func (c *minioClient) ObjectMetadata(ctx context.Context, bucket, key string) (map[string]string, error) {
	info, err := c.api.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, err
	}
	return lowerKeys(info.UserMetadata), nil
}

func (c *minioClient) ObjectURL(bucket, key string) (string, error) {
	u := c.api.EndpointURL()
	if u == nil {
		return "", fmt.Errorf("minio endpoint is not configured")
	}
	return pathStyleURL(u.Host, u.Scheme == "https", bucket, key), nil
}

func (c *minioClient) ObjectACL(ctx context.Context, bucket, key string) ([]Grant, error) {
	info, err := c.api.GetObjectACL(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	grants := make([]Grant, 0, len(info.Grant))
	for _, g := range info.Grant {
		grantee := Grantee{ID: g.Grantee.ID, URI: g.Grantee.URI, Type: GranteeCanonicalUser}
		if g.Grantee.URI != "" {
			grantee.Type = GranteeGroup
		}
		grants = append(grants, Grant{Grantee: grantee, Permission: g.Permission})
	}
	return grants, nil
}

// SetObjectACL rewrites the object onto itself with the canned ACL header.
// minio-go has no PutObjectAcl, so the user metadata and content type are
// carried over explicitly with a REPLACE metadata directive.
func (c *minioClient) SetObjectACL(ctx context.Context, bucket, key string, acl ACL) error {
	info, err := c.api.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return err
	}

	meta := make(map[string]string, len(info.UserMetadata)+2)
	for k, v := range info.UserMetadata {
		meta[strings.ToLower(k)] = v
	}
	if info.ContentType != "" {
		meta["Content-Type"] = info.ContentType
	}
	meta["x-amz-acl"] = string(acl)

	_, err = c.api.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: bucket, Object: key, ReplaceMetadata: true, UserMetadata: meta},
		minio.CopySrcOptions{Bucket: bucket, Object: key},
	)
	return err
}
