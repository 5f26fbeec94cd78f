package storage

import (
	"fmt"
	"io"

	"jobboard_backend/internal/config"
)

// Storage persists uploaded files and returns their public URL.
type Storage interface {
	Save(key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(key string) error
}

// New builds the storage backend named in config. "cloudflare_r2" is the S3
// backend pointed at an R2 endpoint.
func New(cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Type {
	case "local", "":
		return NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	case "s3", "cloudflare_r2":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}
