package storage

import (
	"context"
	"errors"
	"time"
)

var (
	ErrObjectExists   = errors.New("object already exists")
	ErrObjectNotFound = errors.New("object not found")
)

// Object is one entry in a bucket listing. Name is relative to the listed
// prefix and doubles as the display label.
type Object struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// ObjectStore abstracts the blob backend so services and tests never touch a
// concrete client directly.
type ObjectStore interface {
	// List returns the objects under prefix (non-recursive), names stripped
	// of the prefix.
	List(ctx context.Context, bucket, prefix string) ([]Object, error)

	// Upload stores data under key. It fails with ErrObjectExists when the
	// key is already taken; there is no overwrite.
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error

	// Download returns the full object bytes, or ErrObjectNotFound.
	Download(ctx context.Context, bucket, key string) ([]byte, error)

	// Remove deletes the given keys. Missing keys are not an error.
	Remove(ctx context.Context, bucket string, keys []string) error

	// PublicURL derives the public retrieval URL for a key. Nothing is
	// stored; the URL is recomputed from bucket and key every time.
	PublicURL(bucket, key string) string
}
