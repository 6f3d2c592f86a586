package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"warehouseapi/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) List(ctx context.Context, container, prefix string) ([]storage.ObjectInfo, error) {
	args := m.Called(ctx, container, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ObjectInfo), args.Error(1)
}

func (m *MockStorage) Get(ctx context.Context, container, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, container, key)
	if args.Get(0) == nil {
		return nil, storage.ObjectInfo{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}
