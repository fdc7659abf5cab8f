package objectstore

import (
	"fmt"

	"github.com/potatolake/internal/config"
)

// New builds the store selected by BLOB_DRIVER.
func New(cfg config.AppConfig) (Store, error) {
	switch cfg.BlobDriver {
	case "", "local":
		return NewLocal(cfg.UploadDir, cfg.UploadURLPath), nil
	case "http":
		return NewHTTP(HTTPConfig{
			BaseURL:   cfg.BlobBaseURL,
			PublicURL: cfg.BlobPublicURL,
			Token:     cfg.BlobToken,
		}), nil
	default:
		return nil, fmt.Errorf("objectstore: unknown driver %q", cfg.BlobDriver)
	}
}
