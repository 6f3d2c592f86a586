package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"warehouseapi/internal/model"
	"warehouseapi/internal/repository"
	repoMocks "warehouseapi/internal/repository/mocks"
)

var (
	testDay    = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	testFilter = repository.ActivityFilter{WarehouseID: "WH001", CamID: "CAM1", Date: testDay}
)

func at(h, m int) *model.DateTime { return model.NewDateTime(testDay.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)) }

func TestActivityService_EmployeeLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("groups by hour", func(t *testing.T) {
		mRepo := new(repoMocks.MockActivityRepository)
		mRepo.On("EmployeeLogs", ctx, testFilter).Return([]model.EmployeeLog{
			{ID: 1, EmpID: strp("E1"), Time: at(14, 5)},
			{ID: 2, EmpID: strp("E1"), Time: at(9, 10)},
			{ID: 3, EmpID: strp("E2"), Time: at(9, 50)},
			{ID: 4, EmpID: nil, Time: at(9, 55)},
			{ID: 5, EmpID: strp("E3"), Time: nil},
		}, nil)

		res, err := NewActivityService(mRepo).EmployeeLogs(ctx, "WH001", "CAM1", "2025-03-01")

		require.NoError(t, err)
		assert.Equal(t, 5, res.TotalLogs)
		assert.Equal(t, 3, res.UniqueEmployees)
		require.Len(t, res.HourlyRanges, 2)

		nine := res.HourlyRanges[0]
		assert.Equal(t, "09:00 - 09:59", nine.HourRange)
		assert.Equal(t, "09:00", nine.StartTime)
		assert.Equal(t, "09:59", nine.EndTime)
		assert.Equal(t, 3, nine.TotalLogs)
		assert.Equal(t, 2, nine.UniqueEmployees)

		assert.Equal(t, "14:00 - 14:59", res.HourlyRanges[1].HourRange)
		assert.Equal(t, 1, res.HourlyRanges[1].TotalLogs)
	})

	t.Run("empty", func(t *testing.T) {
		mRepo := new(repoMocks.MockActivityRepository)
		mRepo.On("EmployeeLogs", ctx, testFilter).Return([]model.EmployeeLog{}, nil)

		res, err := NewActivityService(mRepo).EmployeeLogs(ctx, "WH001", "CAM1", "2025-03-01")

		require.NoError(t, err)
		assert.Equal(t, "No employee logs found for the given criteria", res.Message)
		assert.NotNil(t, res.HourlyRanges)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := NewActivityService(new(repoMocks.MockActivityRepository)).EmployeeLogs(ctx, "WH001", "CAM1", "bad")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestActivityService_GunnyLogs(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockActivityRepository)
	mRepo.On("GunnyLogs", ctx, testFilter).Return([]model.GunnyLog{
		{ID: 1, Count: 10, Action: strp("loading")},
		{ID: 2, Count: 5, Action: strp("loading")},
		{ID: 3, Count: 7, Action: strp("unloading")},
		{ID: 4, Count: 3, Action: nil},
		{ID: 5, Count: 0, Action: strp("loading")},
	}, nil)

	res, err := NewActivityService(mRepo).GunnyLogs(ctx, "WH001", "CAM1", "2025-03-01")

	require.NoError(t, err)
	assert.Equal(t, 5, res.TotalLogs)
	assert.Equal(t, int64(25), res.TotalBags)
	assert.Equal(t, map[string]ActionSummary{
		"loading":   {Count: 3, TotalBags: 15},
		"unloading": {Count: 1, TotalBags: 7},
	}, res.ActionSummary)
	assert.Empty(t, res.Message)
}

func TestActivityService_VehicleLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("summaries", func(t *testing.T) {
		mRepo := new(repoMocks.MockActivityRepository)
		mRepo.On("VehicleLogs", ctx, testFilter).Return([]model.VehicleLog{
			{ID: 1, NumberPlate: strp("KA01"), VehicleAccess: strp("authorised")},
			{ID: 2, NumberPlate: strp("KA01"), VehicleAccess: strp("authorised")},
			{ID: 3, NumberPlate: strp("KA02"), VehicleAccess: strp("unauthorised")},
			{ID: 4, NumberPlate: nil, VehicleAccess: nil},
		}, nil)

		res, err := NewActivityService(mRepo).VehicleLogs(ctx, "WH001", "CAM1", "2025-03-01")

		require.NoError(t, err)
		assert.Equal(t, 4, res.TotalLogs)
		assert.Equal(t, 2, res.UniqueVehicles)
		assert.Equal(t, map[string]int{"authorised": 2, "unauthorised": 1}, res.AccessSummary)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockActivityRepository)
		mRepo.On("VehicleLogs", ctx, testFilter).Return(nil, errors.New("db down"))

		_, err := NewActivityService(mRepo).VehicleLogs(ctx, "WH001", "CAM1", "2025-03-01")

		assert.EqualError(t, err, "vehicle logs: db down")
	})
}

func TestActivityService_Dashboard(t *testing.T) {
	ctx := context.Background()
	f := repository.ActivityFilter{WarehouseID: "WH001", Date: testDay}

	t.Run("aggregates", func(t *testing.T) {
		mRepo := new(repoMocks.MockActivityRepository)
		mRepo.On("BagTotals", mock.Anything, f).Return(model.BagTotals{Loaded: 100, Unloaded: 40}, nil)
		mRepo.On("VehicleTotals", mock.Anything, f).Return(model.VehicleTotals{Authorised: 3, Unauthorised: 1}, nil)
		mRepo.On("EmployeeTotals", mock.Anything, f).Return(model.EmployeeTotals{Logs: 50, UniqueAuthorised: 8, UnauthorisedEntries: 2}, nil)

		res, err := NewActivityService(mRepo).Dashboard(ctx, "WH001", "2025-03-01")

		require.NoError(t, err)
		assert.Equal(t, &DashboardResult{
			Status:                         StatusSuccess,
			WarehouseID:                    "WH001",
			Date:                           "2025-03-01",
			TotalLoadedBags:                100,
			TotalUnloadedBags:              40,
			TotalAuthorisedVehicles:        3,
			TotalUnauthorisedVehicles:      1,
			TotalEmployeeLogs:              50,
			TotalUniqueAuthorisedEmployees: 8,
			TotalUnauthorisedEntries:       2,
		}, res)
	})

	t.Run("one aggregate fails", func(t *testing.T) {
		mRepo := new(repoMocks.MockActivityRepository)
		mRepo.On("BagTotals", mock.Anything, f).Return(model.BagTotals{}, nil)
		mRepo.On("VehicleTotals", mock.Anything, f).Return(model.VehicleTotals{}, errors.New("boom"))
		mRepo.On("EmployeeTotals", mock.Anything, f).Return(model.EmployeeTotals{}, nil)

		res, err := NewActivityService(mRepo).Dashboard(ctx, "WH001", "2025-03-01")

		assert.Nil(t, res)
		assert.EqualError(t, err, "vehicle totals: boom")
	})
}

func TestActivityService_VehicleGunnyCount(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles per vehicle", func(t *testing.T) {
		first := model.NewClock(testDay.Add(10 * time.Hour))
		last := model.NewClock(testDay.Add(11 * time.Hour))

		mRepo := new(repoMocks.MockActivityRepository)
		mRepo.On("VehicleChunks", mock.Anything, testFilter).Return([]model.PlateChunk{
			{NumberPlate: "KA01", ChunkID: "CH1"},
			{NumberPlate: "KA01", ChunkID: "CH2"},
			{NumberPlate: "KA02", ChunkID: "CH3"},
		}, nil)
		mRepo.On("GunnyByVehicle", mock.Anything, testFilter).Return([]model.VehicleActionTotal{
			{NumberPlate: "KA01", Action: strp("loading"), TotalCount: 30, Entries: 3, FirstEntry: first, LastEntry: last},
			{NumberPlate: "KA01", Action: strp("unloading"), TotalCount: 5, Entries: 1},
		}, nil)

		res, err := NewActivityService(mRepo).VehicleGunnyCount(ctx, "WH001", "CAM1", "2025-03-01")

		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalVehicles)
		assert.Equal(t, int64(35), res.GrandTotalBags)

		ka01 := res.Vehicles[0]
		assert.Equal(t, "KA01", ka01.NumberPlate)
		assert.Equal(t, []string{"CH1", "CH2"}, ka01.ChunkIDs)
		assert.Equal(t, int64(35), ka01.TotalBagsAllActions)
		require.Len(t, ka01.ActionBreakdown, 2)
		assert.Equal(t, int64(3), ka01.ActionBreakdown[0].NumberOfEntries)
		assert.Equal(t, first, ka01.ActionBreakdown[0].FirstEntryTime)

		ka02 := res.Vehicles[1]
		assert.Equal(t, []string{"CH3"}, ka02.ChunkIDs)
		assert.Zero(t, ka02.TotalBagsAllActions)
		assert.NotNil(t, ka02.ActionBreakdown)
	})

	t.Run("no vehicles", func(t *testing.T) {
		mRepo := new(repoMocks.MockActivityRepository)
		mRepo.On("VehicleChunks", mock.Anything, testFilter).Return([]model.PlateChunk{}, nil)
		mRepo.On("GunnyByVehicle", mock.Anything, testFilter).Return([]model.VehicleActionTotal{}, nil)

		res, err := NewActivityService(mRepo).VehicleGunnyCount(ctx, "WH001", "CAM1", "2025-03-01")

		require.NoError(t, err)
		assert.Equal(t, "No vehicles found for the given criteria", res.Message)
		assert.Zero(t, res.TotalVehicles)
		assert.NotNil(t, res.Vehicles)
	})
}
