package objects

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"object-gateway/core/storage"
)

var errNoSuchKey = errors.New("no such key")

type fakeObject struct {
	data     []byte
	metadata map[string]string
	grants   []storage.Grant
}

// fakeClient is an in-memory storage.Client. Buckets become visible after
// pendingChecks calls to BucketExists, mimicking eventual consistency.
type fakeClient struct {
	mu            sync.Mutex
	buckets       map[string]map[string]*fakeObject
	pending       map[string]int
	pendingChecks int
	existsCalls   int
}

func newFakeClient(pendingChecks int) *fakeClient {
	return &fakeClient{
		buckets:       make(map[string]map[string]*fakeObject),
		pending:       make(map[string]int),
		pendingChecks: pendingChecks,
	}
}

func ownerGrant() storage.Grant {
	return storage.Grant{
		Grantee:    storage.Grantee{Type: storage.GranteeCanonicalUser, ID: "owner"},
		Permission: "FULL_CONTROL",
	}
}

func (f *fakeClient) CreateBucket(_ context.Context, bucket string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.buckets[bucket]; ok {
		return fmt.Errorf("bucket %s already exists", bucket)
	}
	f.buckets[bucket] = make(map[string]*fakeObject)
	f.pending[bucket] = f.pendingChecks
	return nil
}

func (f *fakeClient) DeleteBucket(_ context.Context, bucket string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.buckets, bucket)
	f.pending[bucket] = f.pendingChecks
	return nil
}

func (f *fakeClient) BucketExists(_ context.Context, bucket string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.existsCalls++
	_, exists := f.buckets[bucket]
	if f.pending[bucket] > 0 {
		f.pending[bucket]--
		return !exists, nil
	}
	return exists, nil
}

func (f *fakeClient) PutObject(_ context.Context, bucket, key string, reader io.Reader, _ int64, metadata map[string]string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	objects, ok := f.buckets[bucket]
	if !ok {
		return fmt.Errorf("no such bucket %s", bucket)
	}
	meta := make(map[string]string, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}
	objects[key] = &fakeObject{data: data, metadata: meta, grants: []storage.Grant{ownerGrant()}}
	return nil
}

func (f *fakeClient) ListObjectKeys(_ context.Context, bucket string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	objects, ok := f.buckets[bucket]
	if !ok {
		return nil, fmt.Errorf("no such bucket %s", bucket)
	}
	keys := make([]string, 0, len(objects))
	for k := range objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (f *fakeClient) object(bucket, key string) (*fakeObject, error) {
	obj, ok := f.buckets[bucket][key]
	if !ok {
		return nil, errNoSuchKey
	}
	return obj, nil
}

func (f *fakeClient) ObjectMetadata(_ context.Context, bucket, key string) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, err := f.object(bucket, key)
	if err != nil {
		return nil, err
	}
	return obj.metadata, nil
}

func (f *fakeClient) ObjectURL(bucket, key string) (string, error) {
	return "http://storage.local/" + bucket + "/" + key, nil
}

func (f *fakeClient) ObjectACL(_ context.Context, bucket, key string) ([]storage.Grant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, err := f.object(bucket, key)
	if err != nil {
		return nil, err
	}
	return obj.grants, nil
}

func (f *fakeClient) SetObjectACL(_ context.Context, bucket, key string, acl storage.ACL) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, err := f.object(bucket, key)
	if err != nil {
		return err
	}
	switch acl {
	case storage.ACLPublicRead:
		obj.grants = []storage.Grant{ownerGrant(), {
			Grantee:    storage.Grantee{Type: storage.GranteeGroup, URI: storage.AllUsersURI},
			Permission: storage.PermissionRead,
		}}
	case storage.ACLBucketOwnerFullControl:
		obj.grants = []storage.Grant{ownerGrant()}
	default:
		return fmt.Errorf("unsupported acl %s", acl)
	}
	return nil
}
