// Package repository contains data access layer abstractions.
// Implementations live in subpackages such as postgres.
package repository

import (
	"context"
	"time"

	"warehouseapi/internal/model"
)

// WarehouseRepository reads warehouses and the entities attached to them.
// Lookups of a single row return sql.ErrNoRows when nothing matches.
type WarehouseRepository interface {
	// List returns every warehouse ordered by ID.
	List(ctx context.Context) ([]model.Warehouse, error)

	// FindByID returns a warehouse by its ID.
	FindByID(ctx context.Context, id string) (*model.Warehouse, error)

	// ListSupervisors returns supervisory staff of every warehouse ordered by
	// warehouse, role rank and name.
	ListSupervisors(ctx context.Context) ([]model.Employee, error)

	// ListEmployees returns all staff of a warehouse ordered by role and name.
	ListEmployees(ctx context.Context, warehouseID string) ([]model.Employee, error)

	ListCameras(ctx context.Context, warehouseID string) ([]model.Camera, error)

	ListVehicles(ctx context.Context, warehouseID string) ([]model.Vehicle, error)
}

// CameraRepository reads and updates individual cameras.
type CameraRepository interface {
	Find(ctx context.Context, warehouseID, camID string) (*model.Camera, error)

	// UpdateStream marks the camera active and stores its HLS URL.
	// It returns the number of rows updated.
	UpdateStream(ctx context.Context, warehouseID, camID, hlsURL string) (int64, error)
}

// ChunkRepository reads recorded video chunks.
type ChunkRepository interface {
	// ListByDate returns the chunks of a camera for a day ordered by time.
	ListByDate(ctx context.Context, f ActivityFilter) ([]model.Chunk, error)

	Find(ctx context.Context, warehouseID, camID, chunkID string) (*model.Chunk, error)
}

// ActivityFilter selects rows for one camera of a warehouse on one day.
// An empty CamID selects every camera.
type ActivityFilter struct {
	WarehouseID string
	CamID       string
	Date        time.Time
}
