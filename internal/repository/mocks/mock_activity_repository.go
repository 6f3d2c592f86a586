package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"warehouseapi/internal/model"
	"warehouseapi/internal/repository"
)

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) EmployeeLogs(ctx context.Context, f repository.ActivityFilter) ([]model.EmployeeLog, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EmployeeLog), args.Error(1)
}

func (m *MockActivityRepository) GunnyLogs(ctx context.Context, f repository.ActivityFilter) ([]model.GunnyLog, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GunnyLog), args.Error(1)
}

func (m *MockActivityRepository) VehicleLogs(ctx context.Context, f repository.ActivityFilter) ([]model.VehicleLog, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VehicleLog), args.Error(1)
}

func (m *MockActivityRepository) BagTotals(ctx context.Context, f repository.ActivityFilter) (model.BagTotals, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(model.BagTotals), args.Error(1)
}

func (m *MockActivityRepository) VehicleTotals(ctx context.Context, f repository.ActivityFilter) (model.VehicleTotals, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(model.VehicleTotals), args.Error(1)
}

func (m *MockActivityRepository) EmployeeTotals(ctx context.Context, f repository.ActivityFilter) (model.EmployeeTotals, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(model.EmployeeTotals), args.Error(1)
}

func (m *MockActivityRepository) VehicleChunks(ctx context.Context, f repository.ActivityFilter) ([]model.PlateChunk, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PlateChunk), args.Error(1)
}

func (m *MockActivityRepository) GunnyByVehicle(ctx context.Context, f repository.ActivityFilter) ([]model.VehicleActionTotal, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VehicleActionTotal), args.Error(1)
}
