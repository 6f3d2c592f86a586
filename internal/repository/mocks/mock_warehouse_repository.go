package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"warehouseapi/internal/model"
)

type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) List(ctx context.Context) ([]model.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindByID(ctx context.Context, id string) (*model.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) ListSupervisors(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Employee), args.Error(1)
}

func (m *MockWarehouseRepository) ListEmployees(ctx context.Context, warehouseID string) ([]model.Employee, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Employee), args.Error(1)
}

func (m *MockWarehouseRepository) ListCameras(ctx context.Context, warehouseID string) ([]model.Camera, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Camera), args.Error(1)
}

func (m *MockWarehouseRepository) ListVehicles(ctx context.Context, warehouseID string) ([]model.Vehicle, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

type MockCameraRepository struct {
	mock.Mock
}

func (m *MockCameraRepository) Find(ctx context.Context, warehouseID, camID string) (*model.Camera, error) {
	args := m.Called(ctx, warehouseID, camID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Camera), args.Error(1)
}

func (m *MockCameraRepository) UpdateStream(ctx context.Context, warehouseID, camID, hlsURL string) (int64, error) {
	args := m.Called(ctx, warehouseID, camID, hlsURL)
	return args.Get(0).(int64), args.Error(1)
}
