package postgres

import (
	"context"
	"database/sql"

	"warehouseapi/internal/model"
	"warehouseapi/internal/repository"
)

// CameraPostgres is a PostgreSQL implementation of repository.CameraRepository.
type CameraPostgres struct {
	db *sql.DB
}

// NewCameraPostgres creates a new CameraPostgres repository.
func NewCameraPostgres(db *sql.DB) *CameraPostgres {
	return &CameraPostgres{db: db}
}

var _ repository.CameraRepository = (*CameraPostgres)(nil)

const cameraSelect = `
	SELECT
		cam_id,
		cam_direction,
		camera_status,
		warehouse_id,
		stream_arn,
		hls_url,
		camera_longitude,
		camera_latitude,
		services
	FROM public.cameras`

func scanCamera(s interface{ Scan(...any) error }) (model.Camera, error) {
	var (
		c                                         model.Camera
		direction, status, arn, hlsURL, services sql.NullString
		lon, lat                                 sql.NullFloat64
	)
	if err := s.Scan(&c.ID, &direction, &status, &c.WarehouseID, &arn, &hlsURL, &lon, &lat, &services); err != nil {
		return c, err
	}
	c.Direction = strPtr(direction)
	c.Status = strPtr(status)
	c.StreamARN = strPtr(arn)
	c.HLSURL = strPtr(hlsURL)
	c.Longitude = float64Ptr(lon)
	c.Latitude = float64Ptr(lat)
	c.Services = strPtr(services)
	return c, nil
}

// Find fetches a camera of a warehouse.
func (r *CameraPostgres) Find(ctx context.Context, warehouseID, camID string) (*model.Camera, error) {
	q := cameraSelect + `
		WHERE warehouse_id = $1 AND cam_id = $2`
	c, err := scanCamera(r.db.QueryRowContext(ctx, q, warehouseID, camID))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateStream marks the camera active and stores the HLS session URL.
func (r *CameraPostgres) UpdateStream(ctx context.Context, warehouseID, camID, hlsURL string) (int64, error) {
	const q = `
		UPDATE public.cameras
		SET camera_status = 'active', hls_url = $1
		WHERE warehouse_id = $2 AND cam_id = $3
	`
	res, err := r.db.ExecContext(ctx, q, hlsURL, warehouseID, camID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
