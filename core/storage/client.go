package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ACL names a canned access policy understood by the provider.
type ACL string

const (
	// ACLPublicRead grants the owner full control and everyone read access.
	ACLPublicRead ACL = "public-read"
	// ACLBucketOwnerFullControl grants the bucket owner full control and nobody else anything.
	ACLBucketOwnerFullControl ACL = "bucket-owner-full-control"
)

const (
	// AllUsersURI identifies the "everyone" group grantee.
	AllUsersURI = "http://acs.amazonaws.com/groups/global/AllUsers"
	// PermissionRead is the permission value granting object reads.
	PermissionRead = "READ"

	GranteeGroup         = "Group"
	GranteeCanonicalUser = "CanonicalUser"
)

// Grantee is the subject of an ACL grant.
type Grantee struct {
	Type string
	ID   string
	URI  string
}

// Grant is a single entry of an object's ACL.
type Grant struct {
	Grantee    Grantee
	Permission string
}

// ErrUnknownProvider is returned by NewClient for an unsupported provider name.
var ErrUnknownProvider = errors.New("unknown storage provider")

// Client defines the object storage operations the gateway relies on.
type Client interface {
	// CreateBucket issues a bucket creation request. It does not wait for the bucket to be visible.
	CreateBucket(ctx context.Context, bucket string) error
	// DeleteBucket issues a bucket deletion request. It does not wait for the bucket to disappear.
	DeleteBucket(ctx context.Context, bucket string) error
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucket string) (bool, error)
	// PutObject uploads an object with the given user metadata.
	PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, metadata map[string]string) error
	// ListObjectKeys lists every object key in a bucket.
	ListObjectKeys(ctx context.Context, bucket string) ([]string, error)
	// ObjectMetadata returns the user metadata of an object. Keys are lower case.
	ObjectMetadata(ctx context.Context, bucket, key string) (map[string]string, error)
	// ObjectURL resolves the address the object can be fetched from.
	ObjectURL(bucket, key string) (string, error)
	// ObjectACL returns the grants of an object's ACL.
	ObjectACL(ctx context.Context, bucket, key string) ([]Grant, error)
	// SetObjectACL replaces the object's ACL with a canned policy.
	SetObjectACL(ctx context.Context, bucket, key string, acl ACL) error
}

// NewClient creates a storage client for the configured provider.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderMinio, "":
		c, err := newMinioClient(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case ProviderS3:
		c, err := newS3Client(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// newTransport builds an HTTP transport with strict connection timeouts.
func newTransport(cfg Config) *http.Transport {
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	withTimeouts(cfg)(tr)
	return tr
}

// withTimeouts applies the dial, TLS handshake and response header timeouts.
// The AWS SDK takes it as a transport option so it can still install a custom CA bundle.
func withTimeouts(cfg Config) func(*http.Transport) {
	timeout := cfg.Timeout()
	return func(tr *http.Transport) {
		tr.DialContext = (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext
		tr.TLSHandshakeTimeout = timeout
		tr.ResponseHeaderTimeout = timeout
	}
}

// normalizeEndpoint strips the scheme from endpoint. A scheme wins over useSSL.
func normalizeEndpoint(endpoint string, useSSL bool) (host string, secure bool) {
	secure = useSSL
	if endpoint == "" {
		return "", secure
	}
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		if u, err := url.Parse(endpoint); err == nil {
			return u.Host, u.Scheme == "https"
		}
	}
	return strings.TrimRight(endpoint, "/"), secure
}

// pathStyleURL builds scheme://host/bucket/key.
func pathStyleURL(host string, secure bool, bucket, key string) string {
	scheme := "http"
	if secure {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: host, Path: "/" + bucket + "/" + key}
	return u.String()
}

func lowerKeys(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToLower(k)] = v
	}
	return out
}
