package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"warehouseapi/internal/model"
	"warehouseapi/internal/service"
)

type MockWarehouseService struct {
	mock.Mock
}

func (m *MockWarehouseService) List(ctx context.Context) (*service.WarehouseListResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WarehouseListResult), args.Error(1)
}

func (m *MockWarehouseService) Get(ctx context.Context, id string) (*service.WarehouseDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WarehouseDetail), args.Error(1)
}

type MockCameraStreamService struct {
	mock.Mock
}

func (m *MockCameraStreamService) StreamURL(ctx context.Context, warehouseID, camID string) (*service.StreamURLResult, error) {
	args := m.Called(ctx, warehouseID, camID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StreamURLResult), args.Error(1)
}

type MockChunkService struct {
	mock.Mock
}

func (m *MockChunkService) List(ctx context.Context, warehouseID, camID, date string) (*service.ChunkListResult, error) {
	args := m.Called(ctx, warehouseID, camID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChunkListResult), args.Error(1)
}

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) EmployeeLogs(ctx context.Context, warehouseID, camID, date string) (*service.EmployeeLogsResult, error) {
	args := m.Called(ctx, warehouseID, camID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EmployeeLogsResult), args.Error(1)
}

func (m *MockActivityService) GunnyLogs(ctx context.Context, warehouseID, camID, date string) (*service.GunnyLogsResult, error) {
	args := m.Called(ctx, warehouseID, camID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GunnyLogsResult), args.Error(1)
}

func (m *MockActivityService) VehicleLogs(ctx context.Context, warehouseID, camID, date string) (*service.VehicleLogsResult, error) {
	args := m.Called(ctx, warehouseID, camID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VehicleLogsResult), args.Error(1)
}

func (m *MockActivityService) Dashboard(ctx context.Context, warehouseID, date string) (*service.DashboardResult, error) {
	args := m.Called(ctx, warehouseID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DashboardResult), args.Error(1)
}

func (m *MockActivityService) VehicleGunnyCount(ctx context.Context, warehouseID, camID, date string) (*service.VehicleGunnyResult, error) {
	args := m.Called(ctx, warehouseID, camID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VehicleGunnyResult), args.Error(1)
}

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Chat(ctx context.Context, warehouseID, camID, chunkID string, req model.ChatRequest) (*model.ChatResponse, error) {
	args := m.Called(ctx, warehouseID, camID, chunkID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChatResponse), args.Error(1)
}
