package service

import (
	"context"
	"fmt"
	"time"

	"github.com/craftnet/backend/config"
)

const presignExpiry = 15 * time.Minute

// defaultImageKey is served when a profile has no uploaded image.
const defaultImageKey = "defaults/avatar.png"

// MediaService resolves stored object keys to URLs the client can fetch.
// It is optional: without S3 configuration keys are returned as-is, which
// keeps local development and tests free of AWS credentials.
type MediaService struct {
	s3 *config.S3Config
}

func NewMediaService(s3 *config.S3Config) *MediaService {
	return &MediaService{s3: s3}
}

// ResolveImageURL returns a URL for the given object key, preferring a
// presigned URL and falling back to the bucket's public URL.
func (s *MediaService) ResolveImageURL(ctx context.Context, key string) string {
	if key == "" {
		key = defaultImageKey
	}
	if s.s3 == nil {
		return key
	}

	url, err := s.s3.GeneratePresignedURL(ctx, key, presignExpiry)
	if err != nil {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3.BucketName, key)
	}
	return url
}
