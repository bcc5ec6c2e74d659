package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3API struct {
	createBucketFn func(ctx context.Context, params *s3.CreateBucketInput) (*s3.CreateBucketOutput, error)
	deleteBucketFn func(ctx context.Context, params *s3.DeleteBucketInput) (*s3.DeleteBucketOutput, error)
	headBucketFn   func(ctx context.Context, params *s3.HeadBucketInput) (*s3.HeadBucketOutput, error)
	putObjectFn    func(ctx context.Context, params *s3.PutObjectInput) (*s3.PutObjectOutput, error)
	listFn         func(ctx context.Context, params *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error)
	headObjectFn   func(ctx context.Context, params *s3.HeadObjectInput) (*s3.HeadObjectOutput, error)
	getACLFn       func(ctx context.Context, params *s3.GetObjectAclInput) (*s3.GetObjectAclOutput, error)
	putACLFn       func(ctx context.Context, params *s3.PutObjectAclInput) (*s3.PutObjectAclOutput, error)
}

var errUnexpectedCall = errors.New("unexpected call")

func (f *fakeS3API) CreateBucket(ctx context.Context, params *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	if f.createBucketFn == nil {
		return nil, errUnexpectedCall
	}
	return f.createBucketFn(ctx, params)
}

func (f *fakeS3API) DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, _ ...func(*s3.Options)) (*s3.DeleteBucketOutput, error) {
	if f.deleteBucketFn == nil {
		return nil, errUnexpectedCall
	}
	return f.deleteBucketFn(ctx, params)
}

func (f *fakeS3API) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if f.headBucketFn == nil {
		return nil, errUnexpectedCall
	}
	return f.headBucketFn(ctx, params)
}

func (f *fakeS3API) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putObjectFn == nil {
		return nil, errUnexpectedCall
	}
	return f.putObjectFn(ctx, params)
}

func (f *fakeS3API) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if f.listFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listFn(ctx, params)
}

func (f *fakeS3API) HeadObject(ctx context.Context, params *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headObjectFn == nil {
		return nil, errUnexpectedCall
	}
	return f.headObjectFn(ctx, params)
}

func (f *fakeS3API) GetObjectAcl(ctx context.Context, params *s3.GetObjectAclInput, _ ...func(*s3.Options)) (*s3.GetObjectAclOutput, error) {
	if f.getACLFn == nil {
		return nil, errUnexpectedCall
	}
	return f.getACLFn(ctx, params)
}

func (f *fakeS3API) PutObjectAcl(ctx context.Context, params *s3.PutObjectAclInput, _ ...func(*s3.Options)) (*s3.PutObjectAclOutput, error) {
	if f.putACLFn == nil {
		return nil, errUnexpectedCall
	}
	return f.putACLFn(ctx, params)
}

func TestS3Client_CreateBucket(t *testing.T) {
	t.Run("LocationConstraintOutsideUSEast1", func(t *testing.T) {
		var got *s3.CreateBucketInput
		api := &fakeS3API{createBucketFn: func(_ context.Context, in *s3.CreateBucketInput) (*s3.CreateBucketOutput, error) {
			got = in
			return &s3.CreateBucketOutput{}, nil
		}}
		c := &s3Client{api: api, region: "eu-west-1"}

		require.NoError(t, c.CreateBucket(context.Background(), "assets"))
		assert.Equal(t, "assets", aws.ToString(got.Bucket))
		require.NotNil(t, got.CreateBucketConfiguration)
		assert.Equal(t, types.BucketLocationConstraint("eu-west-1"), got.CreateBucketConfiguration.LocationConstraint)
	})

	t.Run("NoConstraintInUSEast1", func(t *testing.T) {
		var got *s3.CreateBucketInput
		api := &fakeS3API{createBucketFn: func(_ context.Context, in *s3.CreateBucketInput) (*s3.CreateBucketOutput, error) {
			got = in
			return &s3.CreateBucketOutput{}, nil
		}}
		c := &s3Client{api: api, region: "us-east-1"}

		require.NoError(t, c.CreateBucket(context.Background(), "assets"))
		assert.Nil(t, got.CreateBucketConfiguration)
	})

	t.Run("ProviderErrorPropagates", func(t *testing.T) {
		exists := &types.BucketAlreadyExists{}
		api := &fakeS3API{createBucketFn: func(context.Context, *s3.CreateBucketInput) (*s3.CreateBucketOutput, error) {
			return nil, exists
		}}
		c := &s3Client{api: api}

		err := c.CreateBucket(context.Background(), "assets")
		var target *types.BucketAlreadyExists
		assert.ErrorAs(t, err, &target)
	})
}

func TestS3Client_DeleteBucket(t *testing.T) {
	var got string
	api := &fakeS3API{deleteBucketFn: func(_ context.Context, in *s3.DeleteBucketInput) (*s3.DeleteBucketOutput, error) {
		got = aws.ToString(in.Bucket)
		return &s3.DeleteBucketOutput{}, nil
	}}
	c := &s3Client{api: api}

	require.NoError(t, c.DeleteBucket(context.Background(), "assets"))
	assert.Equal(t, "assets", got)
}

func TestS3Client_BucketExists(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    bool
		wantErr bool
	}{
		{"Exists", nil, true, false},
		{"NotFound", &types.NotFound{}, false, false},
		{"NoSuchBucketCode", &smithy.GenericAPIError{Code: "NoSuchBucket"}, false, false},
		{"AccessDenied", &smithy.GenericAPIError{Code: "AccessDenied"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeS3API{headBucketFn: func(context.Context, *s3.HeadBucketInput) (*s3.HeadBucketOutput, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return &s3.HeadBucketOutput{}, nil
			}}
			c := &s3Client{api: api}

			exists, err := c.BucketExists(context.Background(), "assets")
			assert.Equal(t, tt.want, exists)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestS3Client_PutObject(t *testing.T) {
	var got *s3.PutObjectInput
	api := &fakeS3API{putObjectFn: func(_ context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		got = in
		return &s3.PutObjectOutput{}, nil
	}}
	c := &s3Client{api: api}

	err := c.PutObject(context.Background(), "assets", "a.txt", strings.NewReader("abc"), 3, map[string]string{"name": "A"})
	require.NoError(t, err)
	assert.Equal(t, "a.txt", aws.ToString(got.Key))
	assert.Equal(t, int64(3), aws.ToInt64(got.ContentLength))
	assert.Equal(t, map[string]string{"name": "A"}, got.Metadata)

	err = c.PutObject(context.Background(), "assets", "b.txt", strings.NewReader("abc"), -1, nil)
	require.NoError(t, err)
	assert.Nil(t, got.ContentLength)
}

func TestS3Client_ListObjectKeysFollowsPages(t *testing.T) {
	var tokens []string
	api := &fakeS3API{listFn: func(_ context.Context, in *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error) {
		tokens = append(tokens, aws.ToString(in.ContinuationToken))
		if in.ContinuationToken == nil {
			return &s3.ListObjectsV2Output{
				Contents:              []types.Object{{Key: aws.String("a.txt")}, {Key: aws.String("b.txt")}},
				IsTruncated:           aws.Bool(true),
				NextContinuationToken: aws.String("page-2"),
			}, nil
		}
		return &s3.ListObjectsV2Output{
			Contents:    []types.Object{{Key: aws.String("c.txt")}},
			IsTruncated: aws.Bool(false),
		}, nil
	}}
	c := &s3Client{api: api}

	keys, err := c.ListObjectKeys(context.Background(), "assets")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, keys)
	assert.Equal(t, []string{"", "page-2"}, tokens)
}

func TestS3Client_ObjectMetadata(t *testing.T) {
	api := &fakeS3API{headObjectFn: func(context.Context, *s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
		return &s3.HeadObjectOutput{Metadata: map[string]string{"Name": "Report"}}, nil
	}}
	c := &s3Client{api: api}

	meta, err := c.ObjectMetadata(context.Background(), "assets", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "Report", meta["name"])
}

func TestS3Client_ObjectACL(t *testing.T) {
	api := &fakeS3API{getACLFn: func(context.Context, *s3.GetObjectAclInput) (*s3.GetObjectAclOutput, error) {
		return &s3.GetObjectAclOutput{Grants: []types.Grant{
			{Grantee: &types.Grantee{Type: types.TypeCanonicalUser, ID: aws.String("owner-id")}, Permission: types.PermissionFullControl},
			{Grantee: &types.Grantee{Type: types.TypeGroup, URI: aws.String(AllUsersURI)}, Permission: types.PermissionRead},
			{Permission: types.PermissionRead},
		}}, nil
	}}
	c := &s3Client{api: api}

	grants, err := c.ObjectACL(context.Background(), "assets", "a.txt")
	require.NoError(t, err)
	require.Len(t, grants, 3)
	assert.Equal(t, Grant{Grantee: Grantee{Type: GranteeCanonicalUser, ID: "owner-id"}, Permission: "FULL_CONTROL"}, grants[0])
	assert.Equal(t, Grant{Grantee: Grantee{Type: GranteeGroup, URI: AllUsersURI}, Permission: PermissionRead}, grants[1])
	assert.Equal(t, Grant{Permission: PermissionRead}, grants[2])
}

func TestS3Client_SetObjectACL(t *testing.T) {
	var got *s3.PutObjectAclInput
	api := &fakeS3API{putACLFn: func(_ context.Context, in *s3.PutObjectAclInput) (*s3.PutObjectAclOutput, error) {
		got = in
		return &s3.PutObjectAclOutput{}, nil
	}}
	c := &s3Client{api: api}

	require.NoError(t, c.SetObjectACL(context.Background(), "assets", "a.txt", ACLPublicRead))
	assert.Equal(t, types.ObjectCannedACLPublicRead, got.ACL)

	require.NoError(t, c.SetObjectACL(context.Background(), "assets", "a.txt", ACLBucketOwnerFullControl))
	assert.Equal(t, types.ObjectCannedACLBucketOwnerFullControl, got.ACL)
}
