package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"warehouseapi/internal/model"
	"warehouseapi/internal/repository"
)

type MockChunkRepository struct {
	mock.Mock
}

func (m *MockChunkRepository) ListByDate(ctx context.Context, f repository.ActivityFilter) ([]model.Chunk, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Chunk), args.Error(1)
}

func (m *MockChunkRepository) Find(ctx context.Context, warehouseID, camID, chunkID string) (*model.Chunk, error) {
	args := m.Called(ctx, warehouseID, camID, chunkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Chunk), args.Error(1)
}
