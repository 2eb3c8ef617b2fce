package output

import (
	"bytes"
	"context"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/gee/internal/errors"
)

// PutObjectAPI is the part of *s3.Client used by S3Sink.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads documents to a bucket under an optional key prefix.
//
// Example usage:
//
//	client, err := output.NewS3Client(ctx, "eu-west-1")
//	if err != nil {
//	    return err
//	}
//	sink := output.NewS3Sink(client, "my-bucket", "pages/")
//	loc, err := sink.Put(ctx, "index.html", html)
type S3Sink struct {
	client PutObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

// NewS3Sink creates a sink for bucket.
func NewS3Sink(client PutObjectAPI, bucket, prefix string) *S3Sink {
	return &S3Sink{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}
}

// Key returns the object key used for name.
func (s *S3Sink) Key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *S3Sink) Put(ctx context.Context, name string, body []byte) (string, error) {
	key := s.Key(name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(ContentType(name)),
		Metadata: map[string]string{
			"generator":   "gee",
			"render-time": s.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", errors.New("G061").
			WithPath("s3://" + s.bucket + "/" + key).
			WithDetail(err.Error()).
			Wrap(err)
	}
	return "s3://" + s.bucket + "/" + key, nil
}

// NewS3Client creates an S3 client from the default AWS configuration chain
// (environment, shared config and credentials files, SSO, instance roles).
// A non-empty region overrides the configured one.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("G061").
			WithDetailf("load AWS configuration: %v", err).
			WithSuggestion("Check AWS_PROFILE, AWS_REGION and the shared config files").
			Wrap(err)
	}
	return s3.NewFromConfig(cfg), nil
}
