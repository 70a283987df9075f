package utils

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	put    *s3.PutObjectInput
	body   []byte
	acl    *s3.PutObjectAclInput
	putErr error
	aclErr error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.putErr
}

func (f *fakeS3) PutObjectAcl(_ context.Context, in *s3.PutObjectAclInput, _ ...func(*s3.Options)) (*s3.PutObjectAclOutput, error) {
	f.acl = in
	return &s3.PutObjectAclOutput{}, f.aclErr
}

func newTestObjectStore(cli s3API) *ObjectStore {
	return &ObjectStore{
		cli:        cli,
		bucket:     "proofs",
		publicBase: "https://storage.googleapis.com",
		now:        func() time.Time { return time.UnixMilli(1700000000000) },
	}
}

func TestObjectStoreUpload(t *testing.T) {
	cli := &fakeS3{}
	store := newTestObjectStore(cli)

	url, err := store.Upload(context.Background(), Screenshot{
		Filename:    "proof.JPG",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
	})
	require.NoError(t, err)

	require.NotNil(t, cli.put)
	key := aws.ToString(cli.put.Key)
	assert.Regexp(t, `^orders/1700000000000-[0-9a-f]{10}\.jpg$`, key)
	assert.Equal(t, "proofs", aws.ToString(cli.put.Bucket))
	assert.Equal(t, "image/jpeg", aws.ToString(cli.put.ContentType))
	assert.Equal(t, ScreenshotCache, aws.ToString(cli.put.CacheControl))
	assert.Equal(t, []byte("jpeg-bytes"), cli.body)

	require.NotNil(t, cli.acl)
	assert.Equal(t, key, aws.ToString(cli.acl.Key))
	assert.Equal(t, types.ObjectCannedACLPublicRead, cli.acl.ACL)

	assert.Equal(t, "https://storage.googleapis.com/proofs/"+key, url)
}

func TestObjectStoreUploadFailure(t *testing.T) {
	cli := &fakeS3{putErr: errors.New("bucket gone")}
	_, err := newTestObjectStore(cli).Upload(context.Background(), Screenshot{Filename: "a.png"})
	require.Error(t, err)
	assert.Nil(t, cli.acl)

	cli = &fakeS3{aclErr: errors.New("forbidden")}
	_, err = newTestObjectStore(cli).Upload(context.Background(), Screenshot{Filename: "a.png"})
	assert.ErrorContains(t, err, "make")
}
