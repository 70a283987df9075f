package utils

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	config "github.com/phillip/topup-intake-go/config"
)

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	PutObjectAcl(ctx context.Context, in *s3.PutObjectAclInput, optFns ...func(*s3.Options)) (*s3.PutObjectAclOutput, error)
}

// ObjectStore uploads screenshots to an S3 compatible bucket. The default
// endpoint is the GCS interoperability API.
type ObjectStore struct {
	cli        s3API
	bucket     string
	publicBase string
	now        func() time.Time
}

func NewObjectStore(cfg config.Bucket) *ObjectStore {
	cli := s3.New(s3.Options{
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		BaseEndpoint: aws.String(cfg.Endpoint),
		UsePathStyle: true,
		Region:       cfg.Region,
	})

	return &ObjectStore{
		cli:        cli,
		bucket:     cfg.Name,
		publicBase: cfg.PublicBaseURL,
		now:        time.Now,
	}
}

func (o *ObjectStore) Upload(ctx context.Context, shot Screenshot) (string, error) {
	key := ObjectName(shot.Filename, o.now())

	_, err := o.cli.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(o.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(shot.Data),
		ContentLength: aws.Int64(int64(len(shot.Data))),
		ContentType:   aws.String(shot.DetectContentType()),
		CacheControl:  aws.String(ScreenshotCache),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	_, err = o.cli.PutObjectAcl(ctx, &s3.PutObjectAclInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(key),
		ACL:    types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("make %s public: %w", key, err)
	}

	return PublicURL(o.publicBase, o.bucket, key), nil
}
