package assets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory-sync/core/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ErrNotFound means the object was already absent. It is an outcome, not a failure.
var ErrNotFound = errors.New("asset not found")

// ErrCannotDeriveKey is returned for URLs without the marker or delimiter.
var ErrCannotDeriveKey = errors.New("cannot derive object key from url")

// OperationError wraps an object store failure for one key.
type OperationError struct {
	Key string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("asset operation on %q failed: %v", e.Key, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Resource is one stored object.
type Resource struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Format    string    `json:"format"`
	SizeBytes int64     `json:"sizeBytes"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is an object store addressed by derived keys.
type Store interface {
	// Remove deletes the object for key. It returns ErrNotFound when nothing was there.
	Remove(ctx context.Context, key string) error
	// List returns up to limit objects under prefix.
	List(ctx context.Context, prefix string, limit int) ([]Resource, error)
	// Ping verifies the store is reachable with the configured credentials.
	Ping(ctx context.Context) error
}

// NewStore builds the store selected by cfg.Provider.
func NewStore(cfg Config, storageCfg storage.Config) (Store, error) {
	switch cfg.Provider {
	case ProviderMinio:
		client, err := storage.NewClient(storageCfg)
		if err != nil {
			return nil, err
		}
		return NewMinioStore(client, storageCfg.Bucket, cfg.PublicBaseURL, cfg.Delimiter), nil
	case ProviderCloudinary:
		cld, err := cloudinary.NewFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
		}
		return NewCloudinaryStore(cld), nil
	}
	return nil, fmt.Errorf("unknown asset provider %q", cfg.Provider)
}
