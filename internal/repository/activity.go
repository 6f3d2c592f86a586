package repository

import (
	"context"

	"warehouseapi/internal/model"
)

// ActivityRepository reads the activity logs produced by video analytics.
type ActivityRepository interface {
	EmployeeLogs(ctx context.Context, f ActivityFilter) ([]model.EmployeeLog, error)
	GunnyLogs(ctx context.Context, f ActivityFilter) ([]model.GunnyLog, error)
	VehicleLogs(ctx context.Context, f ActivityFilter) ([]model.VehicleLog, error)

	// Daily aggregates for a whole warehouse; CamID is ignored.
	BagTotals(ctx context.Context, f ActivityFilter) (model.BagTotals, error)
	VehicleTotals(ctx context.Context, f ActivityFilter) (model.VehicleTotals, error)
	EmployeeTotals(ctx context.Context, f ActivityFilter) (model.EmployeeTotals, error)

	// VehicleChunks returns distinct plate and chunk pairs ordered by plate then chunk.
	VehicleChunks(ctx context.Context, f ActivityFilter) ([]model.PlateChunk, error)

	// GunnyByVehicle totals gunny logs per plate and action, matching logs
	// to plates through the chunks the plate was seen in.
	GunnyByVehicle(ctx context.Context, f ActivityFilter) ([]model.VehicleActionTotal, error)
}
