package storage

import (
	"context"
	"io"
)

// ImageStorage persists an uploaded image under a key and returns the
// public URL it will be served from.
type ImageStorage interface {
	Upload(ctx context.Context, key string, src io.Reader) (string, error)
}
