package storage_test

import (
	"context"
	"errors"
	"testing"

	"inventory-sync/core/storage"
	"inventory-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "inventory-assets",
			Region:    "us-east-1",
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := storage.Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: "b"}
	assert.NoError(t, valid.Validate())

	missingKeys := valid
	missingKeys.SecretKey = ""
	assert.Error(t, missingKeys.Validate())

	missingBucket := valid
	missingBucket.Bucket = ""
	assert.Error(t, missingBucket.Validate())
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()
	cfg := storage.Config{Bucket: "inventory-assets", Region: "eu-west-1"}

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "inventory-assets").Return(true, nil)

		created, err := storage.EnsureBucket(ctx, client, cfg)
		assert.NoError(t, err)
		assert.False(t, created)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "inventory-assets").Return(false, nil)
		client.On("MakeBucket", ctx, "inventory-assets", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		created, err := storage.EnsureBucket(ctx, client, cfg)
		assert.NoError(t, err)
		assert.True(t, created)
		client.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "inventory-assets").Return(false, errors.New("access denied"))

		_, err := storage.EnsureBucket(ctx, client, cfg)
		assert.ErrorContains(t, err, "access denied")
	})
}
