// Package objectstore abstracts protocol document storage. Protocols carry a
// file_pointer instead of bytes; the store resolves pointers to content.
package objectstore

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Store fetches and saves protocol documents by pointer. Pointers use the
// "gs://bucket/object" form for GCS-backed stores and bare keys for the
// in-memory store.
type Store interface {
	// Fetch returns the document bytes and content type for a pointer.
	Fetch(ctx context.Context, pointer string) ([]byte, string, error)
	// Put stores a document and returns its pointer.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// SignedURL returns a time-limited download URL for a pointer.
	SignedURL(ctx context.Context, pointer string, expires time.Duration) (string, error)
}

// ParsePointer splits a gs:// pointer into bucket and object name.
func ParsePointer(pointer string) (bucket, object string, err error) {
	trimmed, ok := strings.CutPrefix(pointer, "gs://")
	if !ok {
		return "", "", fmt.Errorf("invalid object pointer %q", pointer)
	}
	bucket, object, ok = strings.Cut(trimmed, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("invalid object pointer %q", pointer)
	}
	return bucket, object, nil
}
