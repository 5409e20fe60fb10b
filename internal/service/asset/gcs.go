package asset

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
)

// GCSStore implements Store on a Cloud Storage bucket.
type GCSStore struct {
	bucket *storage.BucketHandle
}

// NewGCSStore creates a store over the named bucket.
func NewGCSStore(client *storage.Client, bucket string) *GCSStore {
	return &GCSStore{bucket: client.Bucket(bucket)}
}

// Upload writes the object in a single shot; avatar payloads are small.
func (s *GCSStore) Upload(ctx context.Context, key, contentType string, data []byte) error {
	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// Delete removes the object under key.
func (s *GCSStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return ErrNotFound
	}
	return err
}

// SignedURL issues a V4 GET URL valid for ttl.
func (s *GCSStore) SignedURL(key string, ttl time.Duration) (string, error) {
	return s.bucket.SignedURL(key, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
	})
}

// Compile-time interface check
var _ Store = (*GCSStore)(nil)
