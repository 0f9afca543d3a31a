// Package s3blob provides a blob.Store implementation on any S3-compatible
// object store (AWS S3, Cloudflare R2, MinIO).
package s3blob

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"careeros/pkg/blob"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Options configures the S3 client.
type Options struct {
	// Endpoint overrides the AWS endpoint, e.g. https://<account>.r2.cloudflarestorage.com.
	Endpoint string
	Region   string
	Bucket   string
	// AccessKey and SecretKey are optional. The default AWS credential chain
	// is used when they are empty.
	AccessKey string
	SecretKey string
	// PathStyle addresses the bucket in the path instead of the host name.
	PathStyle bool
	// PresignTTL is how long download URLs stay valid.
	PresignTTL time.Duration
}

// Client stores objects in a single bucket. It is safe for concurrent use.
type Client struct {
	s3        *s3.Client
	presigner *s3.PresignClient
	bucket    string
	ttl       time.Duration
	now       func() time.Time
}

var _ blob.Store = (*Client)(nil)

// New loads the AWS configuration for options and creates a Client.
func New(ctx context.Context, options Options) (*Client, error) {
	loaders := []func(*config.LoadOptions) error{config.WithRegion(options.Region)}
	if options.AccessKey != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(options.AccessKey, options.SecretKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	return NewFromConfig(cfg, options), nil
}

// NewFromConfig creates a Client from an already loaded AWS configuration.
func NewFromConfig(cfg aws.Config, options Options) *Client {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if options.Endpoint != "" {
			o.BaseEndpoint = aws.String(options.Endpoint)
		}
		o.UsePathStyle = options.PathStyle
	})

	ttl := options.PresignTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Client{
		s3:        client,
		presigner: s3.NewPresignClient(client),
		bucket:    options.Bucket,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Put implements blob.Store.
func (c *Client) Put(ctx context.Context, key, contentType string, body []byte) (*blob.Object, error) {
	if _, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	}); err != nil {
		return nil, fmt.Errorf("could not put object %s: %w", key, err)
	}

	signedAt := c.now()
	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(c.ttl))
	if err != nil {
		return nil, fmt.Errorf("could not presign object %s: %w", key, err)
	}

	return &blob.Object{
		Key:       key,
		URL:       req.URL,
		ExpiresAt: signedAt.Add(c.ttl),
	}, nil
}

// Delete implements blob.Store.
func (c *Client) Delete(ctx context.Context, key string) error {
	if _, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("could not delete object %s: %w", key, err)
	}

	return nil
}
