package assets

import (
	"context"
	"fmt"
	"path"
	"strings"

	"inventory-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// MinioStore keeps assets as "<key>.<ext>" objects in one bucket.
type MinioStore struct {
	client    storage.Client
	bucket    string
	baseURL   string
	delimiter string
}

// NewMinioStore creates a store. Canonical URLs are baseURL + delimiter + object name,
// which DeriveKey maps back to the key.
func NewMinioStore(client storage.Client, bucket, baseURL, delimiter string) *MinioStore {
	return &MinioStore{
		client:    client,
		bucket:    bucket,
		baseURL:   strings.TrimRight(baseURL, "/"),
		delimiter: delimiter,
	}
}

func stripExt(name string) (string, string) {
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext), strings.TrimPrefix(ext, ".")
}

// Remove deletes every object whose extension-less name equals key.
func (s *MinioStore) Remove(ctx context.Context, key string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var matches []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: key, Recursive: true}) {
		if obj.Err != nil {
			return &OperationError{Key: key, Err: obj.Err}
		}
		if name, _ := stripExt(obj.Key); name == key {
			matches = append(matches, obj.Key)
		}
	}
	if len(matches) == 0 {
		return ErrNotFound
	}

	for _, name := range matches {
		if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
			return &OperationError{Key: key, Err: fmt.Errorf("remove %s: %w", name, err)}
		}
	}
	return nil
}

// List walks the bucket under prefix and stops after limit objects.
func (s *MinioStore) List(ctx context.Context, prefix string, limit int) ([]Resource, error) {
	limit = ClampLimit(limit, MaxListLimit)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var out []Resource
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, &OperationError{Key: prefix, Err: obj.Err}
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		key, ext := stripExt(obj.Key)
		out = append(out, Resource{
			Key:       key,
			URL:       s.baseURL + s.delimiter + obj.Key,
			Format:    ext,
			SizeBytes: obj.Size,
			CreatedAt: obj.LastModified,
		})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *MinioStore) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return &OperationError{Key: s.bucket, Err: err}
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}
