package documents

import (
	"context"
	"io"
	"time"
)

// Repository persists document records.
type Repository interface {
	Save(ctx context.Context, d *Document) error
	Get(ctx context.Context, org, id string) (*Document, error)
	List(ctx context.Context, org string, f Filter) (*List, error)
	Delete(ctx context.Context, org, id string) error
	// NextVersion returns 1 + the number of documents already stored
	// under the same display name in the organization.
	NextVersion(ctx context.Context, org, name string) (int, error)
}

// BlobStore is the object-store port behind upload, download and the
// presigned handshake.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error
	// PresignedPut issues a time-limited direct-write URL for a key.
	PresignedPut(ctx context.Context, key string, expiry time.Duration) (string, error)
	// PresignedGet issues a time-limited download URL, with a
	// content-disposition filename when given.
	PresignedGet(ctx context.Context, key, filename string, expiry time.Duration) (string, error)
	// Stat returns the stored object size, or ErrObjectMissing.
	Stat(ctx context.Context, key string) (int64, error)
	Remove(ctx context.Context, key string) error
}
