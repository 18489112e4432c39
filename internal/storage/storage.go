// Package storage keeps uploaded post images in S3 or on local disk.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"yatube/backend/internal/config"
)

// Storage saves and serves image attachments by key.
type Storage interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// NewImageKey returns a fresh key under posts/ for an upload with extension ext (".gif").
func NewImageKey(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("posts/%s%s", uuid.NewString(), ext)
}

// New picks S3 when a bucket is configured and local disk otherwise.
func New(cfg *config.Config) (Storage, error) {
	if cfg.S3.Bucket != "" {
		return NewS3Storage(&cfg.S3)
	}
	return NewLocalStorage(cfg.MediaRoot, cfg.MediaURL), nil
}
