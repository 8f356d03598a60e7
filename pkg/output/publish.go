package output

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/df07/go-raycaster/pkg/core"
)

// UploadTimeout bounds a single frame upload
const UploadTimeout = 30 * time.Second

// S3Config holds the connection settings for frame publishing
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string // Optional; empty uses the AWS endpoint for Region
	Region    string
	Bucket    string
}

// objectPutter is the subset of the S3 client the publisher uses
type objectPutter interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// Publisher uploads encoded frames to an S3 bucket
type Publisher struct {
	client objectPutter
	bucket string
}

// NewPublisher creates an S3 session from cfg
func NewPublisher(cfg S3Config) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket must be set")
	}

	awsCfg := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(cfg.Endpoint != ""),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 session: %w", err)
	}
	return newPublisher(s3.New(sess), cfg.Bucket), nil
}

func newPublisher(client objectPutter, bucket string) *Publisher {
	return &Publisher{client: client, bucket: bucket}
}

// Publish uploads data under key with the content type of format
func (p *Publisher) Publish(ctx context.Context, key string, data []byte, format Format) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(format.ContentType()),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	core.Logger().Info("frame published", "bucket", p.bucket, "key", key, "bytes", size)
	return nil
}
