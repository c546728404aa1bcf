package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appconfig "github.com/promostack/storefront-core/internal/config"
	"github.com/promostack/storefront-core/internal/pkg/apperr"
)

// MaxUploadSize caps product and hero images at 5 MB.
const MaxUploadSize = 5 << 20

type Service struct {
	client *s3.Client
	opts   appconfig.S3Options
}

// NewService builds an S3 client from static credentials. Endpoint and
// path-style access support S3-compatible stores like MinIO or R2.
func NewService(opts appconfig.S3Options) (*Service, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	cfg := aws.Config{
		Region: opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			opts.AccessKeyID, opts.SecretAccessKey, ""),
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.PathStyleAccess
	})
	return &Service{client: client, opts: opts}, nil
}

// Upload validates the file, stores it under a collision-free key and
// returns the public URL.
func (s *Service) Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperr.New(apperr.Validation, "only image uploads are accepted")
	}
	if size <= 0 || size > MaxUploadSize {
		return "", apperr.New(apperr.Validation, "image must be between 1 byte and 5 MB")
	}

	key := objectKey(filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.opts.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", apperr.Wrap(apperr.Persistence, "upload image", err)
	}
	return s.PublicURL(key), nil
}

// PublicURL resolves where an uploaded object is served from.
func (s *Service) PublicURL(key string) string {
	if s.opts.CustomDomain != "" {
		return strings.TrimRight(s.opts.CustomDomain, "/") + "/" + key
	}
	if s.opts.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.opts.Endpoint, "/"), s.opts.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.opts.Bucket, s.opts.Region, key)
}

// objectKey builds uploads/<unix>-<uuid><ext> so concurrent uploads of
// the same filename never collide.
func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("uploads/%d-%s%s", time.Now().Unix(), uuid.NewString(), ext)
}
