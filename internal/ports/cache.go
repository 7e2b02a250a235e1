package ports

import (
	"context"
	"io"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}

// FileStore persists uploaded evidence images. Save sanitizes the requested
// name and returns the filename actually stored.
type FileStore interface {
	Save(name string, r io.Reader) (string, error)
}
