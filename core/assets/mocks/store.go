package mocks

import (
	"context"

	"inventory-sync/core/assets"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of assets.Store
type Store struct {
	mock.Mock
}

func (m *Store) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Store) List(ctx context.Context, prefix string, limit int) ([]assets.Resource, error) {
	args := m.Called(ctx, prefix, limit)
	if res, ok := args.Get(0).([]assets.Resource); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
