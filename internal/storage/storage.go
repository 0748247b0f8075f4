package storage

import (
	"context"
	"errors"
	"fmt"

	"pawtag/internal/config"
)

// ErrNotFound is returned by Read when the key has never been written.
var ErrNotFound = errors.New("object not found")

// Store is the file-store collaborator: photos, vaccine certificates and
// QR tags all go through it. Saving to an existing key overwrites it.
type Store interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error
	Read(ctx context.Context, key string) ([]byte, error)
	// URL returns the externally reachable URL for a stored key.
	URL(key string) string
}

// New selects a backend from configuration.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case "local":
		return NewLocalStore(cfg.StorageLocalDir, cfg.PublicBaseURL)
	case "s3":
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
