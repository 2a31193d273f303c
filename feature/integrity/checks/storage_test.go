package checks

import (
	"context"
	"testing"

	"inventory-sync/core/assets/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckStorage(t *testing.T) {
	ctx := context.Background()

	store := new(mocks.Store)
	store.On("Ping", mock.Anything).Return(nil).Once()
	assert.Equal(t, StorageReport{Provider: "minio", Reachable: true}, CheckStorage(ctx, store, "minio"))

	store.On("Ping", mock.Anything).Return(assert.AnError).Once()
	report := CheckStorage(ctx, store, "cloudinary")
	assert.False(t, report.Reachable)
	assert.NotEmpty(t, report.Error)

	assert.False(t, CheckStorage(ctx, nil, "minio").Reachable)
}
