package storage

import (
	"context"
	"io"
)

// Provider stores uploaded images under a key like "events/abc123.png" and
// returns a URL the front end can render.
type Provider interface {
	Upload(ctx context.Context, key, contentType string, size int64, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
