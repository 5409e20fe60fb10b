package asset

import (
	"context"
	"errors"
	"time"
)

// Store errors
var (
	ErrNotFound = errors.New("asset not found")
)

// Store defines binary object operations for avatar assets.
type Store interface {
	// Upload writes data under key with the given content type, overwriting
	// any existing object.
	Upload(ctx context.Context, key, contentType string, data []byte) error
	// Delete removes the object under key.
	Delete(ctx context.Context, key string) error
	// SignedURL returns a time-limited download URL for key. The URL is a
	// bearer capability; callers choose the validity window.
	SignedURL(key string, ttl time.Duration) (string, error)
}
