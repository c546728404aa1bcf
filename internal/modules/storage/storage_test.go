package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	appconfig "github.com/promostack/storefront-core/internal/config"
)

func TestObjectKeyKeepsExtension(t *testing.T) {
	key := objectKey("Photo.JPG")
	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
}

func TestObjectKeyUnique(t *testing.T) {
	assert.NotEqual(t, objectKey("a.png"), objectKey("a.png"))
}

func TestPublicURL(t *testing.T) {
	cases := []struct {
		name string
		opts appconfig.S3Options
		want string
	}{
		{
			name: "custom domain wins",
			opts: appconfig.S3Options{Bucket: "imgs", CustomDomain: "https://cdn.example.com/"},
			want: "https://cdn.example.com/uploads/k",
		},
		{
			name: "endpoint path style",
			opts: appconfig.S3Options{Bucket: "imgs", Endpoint: "https://minio.local:9000"},
			want: "https://minio.local:9000/imgs/uploads/k",
		},
		{
			name: "aws default",
			opts: appconfig.S3Options{Bucket: "imgs", Region: "us-east-1"},
			want: "https://imgs.s3.us-east-1.amazonaws.com/uploads/k",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Service{opts: tc.opts}
			assert.Equal(t, tc.want, s.PublicURL("uploads/k"))
		})
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	s := &Service{opts: appconfig.S3Options{Bucket: "imgs"}}
	_, err := s.Upload(context.Background(), "doc.pdf", "application/pdf", 100, strings.NewReader("x"))
	assert.Error(t, err)
}

func TestUploadRejectsOversize(t *testing.T) {
	s := &Service{opts: appconfig.S3Options{Bucket: "imgs"}}
	_, err := s.Upload(context.Background(), "big.png", "image/png", MaxUploadSize+1, strings.NewReader("x"))
	assert.Error(t, err)
}
