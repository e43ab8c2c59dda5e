package objectstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"

	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/resilience"
)

// GCSStore stores protocol documents in a Google Cloud Storage bucket. All
// calls run through the shared "gcs" breaker.
type GCSStore struct {
	client   *storage.Client
	bucket   string
	breakers *resilience.Registry
}

// NewGCSStore creates a GCS-backed store on the given bucket.
func NewGCSStore(ctx context.Context, bucket string, breakers *resilience.Registry) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket, breakers: breakers}, nil
}

// Fetch implements Store.
func (s *GCSStore) Fetch(ctx context.Context, pointer string) ([]byte, string, error) {
	bucket, object, err := ParsePointer(pointer)
	if err != nil {
		return nil, "", models.NewCategorizedError(models.ErrorStorage, err)
	}

	type fetched struct {
		data        []byte
		contentType string
	}

	result, err := s.breakers.Execute("gcs", func() (interface{}, error) {
		reader, err := s.client.Bucket(bucket).Object(object).NewReader(ctx)
		if err != nil {
			return nil, err
		}
		defer func() { _ = reader.Close() }()

		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		return fetched{data: data, contentType: reader.Attrs.ContentType}, nil
	})
	if err != nil {
		return nil, "", models.NewCategorizedError(models.ErrorStorage,
			fmt.Errorf("failed to fetch %s: %w", pointer, err))
	}

	f := result.(fetched)
	return f.data, f.contentType, nil
}

// Put implements Store.
func (s *GCSStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.breakers.Execute("gcs", func() (interface{}, error) {
		writer := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
		writer.ContentType = contentType
		if _, err := writer.Write(data); err != nil {
			_ = writer.Close()
			return nil, err
		}
		return nil, writer.Close()
	})
	if err != nil {
		return "", models.NewCategorizedError(models.ErrorStorage,
			fmt.Errorf("failed to store %s: %w", key, err))
	}
	return fmt.Sprintf("gs://%s/%s", s.bucket, key), nil
}

// SignedURL implements Store.
func (s *GCSStore) SignedURL(_ context.Context, pointer string, expires time.Duration) (string, error) {
	bucket, object, err := ParsePointer(pointer)
	if err != nil {
		return "", models.NewCategorizedError(models.ErrorStorage, err)
	}
	url, err := s.client.Bucket(bucket).SignedURL(object, &storage.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(expires),
	})
	if err != nil {
		return "", models.NewCategorizedError(models.ErrorStorage,
			fmt.Errorf("failed to sign %s: %w", pointer, err))
	}
	return url, nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
