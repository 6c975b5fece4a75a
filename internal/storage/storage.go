package storage

import (
	"context"
	"io"
)

// Storage accepts an uploaded file and returns a stable reference path. The
// returned path is what gets persisted; callers never store raw bytes.
type Storage interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}
