package assets

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type destroyer interface {
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

type assetLister interface {
	Assets(ctx context.Context, params admin.AssetsParams) (*admin.AssetsResult, error)
	Ping(ctx context.Context) (*admin.PingResult, error)
}

// CloudinaryStore addresses images by public ID, which is exactly the derived key.
type CloudinaryStore struct {
	uploader destroyer
	admin    assetLister
}

// NewCloudinaryStore wraps an authenticated Cloudinary client.
func NewCloudinaryStore(cld *cloudinary.Cloudinary) *CloudinaryStore {
	return &CloudinaryStore{uploader: &cld.Upload, admin: &cld.Admin}
}

func (s *CloudinaryStore) Remove(ctx context.Context, key string) error {
	res, err := s.uploader.Destroy(ctx, uploader.DestroyParams{PublicID: key})
	if err != nil {
		return &OperationError{Key: key, Err: err}
	}
	if res.Error.Message != "" {
		return &OperationError{Key: key, Err: errors.New(res.Error.Message)}
	}
	switch res.Result {
	case "ok":
		return nil
	case "not found":
		return ErrNotFound
	}
	return &OperationError{Key: key, Err: fmt.Errorf("unexpected destroy result %q", res.Result)}
}

func (s *CloudinaryStore) List(ctx context.Context, prefix string, limit int) ([]Resource, error) {
	res, err := s.admin.Assets(ctx, admin.AssetsParams{
		AssetType:    api.Image,
		DeliveryType: string(api.Upload),
		Prefix:       prefix,
		MaxResults:   ClampLimit(limit, MaxListLimit),
	})
	if err != nil {
		return nil, &OperationError{Key: prefix, Err: err}
	}
	if res.Error.Message != "" {
		return nil, &OperationError{Key: prefix, Err: errors.New(res.Error.Message)}
	}

	out := make([]Resource, 0, len(res.Assets))
	for _, a := range res.Assets {
		out = append(out, Resource{
			Key:       a.PublicID,
			URL:       a.SecureURL,
			Format:    a.Format,
			SizeBytes: int64(a.Bytes),
			CreatedAt: a.CreatedAt,
		})
	}
	return out, nil
}

func (s *CloudinaryStore) Ping(ctx context.Context) error {
	res, err := s.admin.Ping(ctx)
	if err != nil {
		return &OperationError{Key: "ping", Err: err}
	}
	if res.Error.Message != "" {
		return &OperationError{Key: "ping", Err: errors.New(res.Error.Message)}
	}
	return nil
}
