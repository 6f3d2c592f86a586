package postgres

import (
	"context"
	"database/sql"

	"warehouseapi/internal/model"
	"warehouseapi/internal/repository"
)

// WarehousePostgres is a PostgreSQL implementation of repository.WarehouseRepository.
type WarehousePostgres struct {
	db *sql.DB
}

// NewWarehousePostgres creates a new WarehousePostgres repository.
func NewWarehousePostgres(db *sql.DB) *WarehousePostgres {
	return &WarehousePostgres{db: db}
}

var _ repository.WarehouseRepository = (*WarehousePostgres)(nil)

const warehouseColumns = `
	warehouse_id,
	warehouse_name,
	warehouse_capacity,
	warehouse_longitude,
	warehouse_latitude,
	warehouse_location`

func scanWarehouse(s interface{ Scan(...any) error }) (model.Warehouse, error) {
	var (
		w        model.Warehouse
		name     sql.NullString
		capacity sql.NullInt64
		lon, lat sql.NullFloat64
		location sql.NullString
	)
	if err := s.Scan(&w.ID, &name, &capacity, &lon, &lat, &location); err != nil {
		return w, err
	}
	w.Name = strPtr(name)
	w.Capacity = int64Ptr(capacity)
	w.Longitude = float64Ptr(lon)
	w.Latitude = float64Ptr(lat)
	w.Location = strPtr(location)
	return w, nil
}

// List returns every warehouse ordered by ID.
func (r *WarehousePostgres) List(ctx context.Context) ([]model.Warehouse, error) {
	q := `SELECT` + warehouseColumns + `
		FROM public.warehouse
		ORDER BY warehouse_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Warehouse, 0)
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

// FindByID fetches a single warehouse by its ID.
func (r *WarehousePostgres) FindByID(ctx context.Context, id string) (*model.Warehouse, error) {
	q := `SELECT` + warehouseColumns + `
		FROM public.warehouse
		WHERE warehouse_id = $1`
	w, err := scanWarehouse(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	return &w, nil
}

const employeeSelect = `
	SELECT
		e.emp_id,
		e.warehouse_id,
		e.emp_name,
		e.emp_number,
		e.role_id,
		e.emp_facecrop,
		r.role_name
	FROM public.wh_emp_data e
	LEFT JOIN public.wh_emp_role r ON e.role_id = r.role_id`

// ListSupervisors returns supervisory staff of all warehouses in one query.
func (r *WarehousePostgres) ListSupervisors(ctx context.Context) ([]model.Employee, error) {
	q := employeeSelect + `
		WHERE e.role_id IN ($1, $2, $3)
		ORDER BY
			e.warehouse_id,
			CASE e.role_id
				WHEN $1 THEN 1
				WHEN $2 THEN 2
				WHEN $3 THEN 3
				ELSE 4
			END,
			e.emp_name`
	return r.queryEmployees(ctx, q, model.RoleSupervisor, model.RoleIncharge, model.RoleDataEntry)
}

// ListEmployees returns all staff of a warehouse.
func (r *WarehousePostgres) ListEmployees(ctx context.Context, warehouseID string) ([]model.Employee, error) {
	q := employeeSelect + `
		WHERE e.warehouse_id = $1
		ORDER BY e.role_id, e.emp_name`
	return r.queryEmployees(ctx, q, warehouseID)
}

func (r *WarehousePostgres) queryEmployees(ctx context.Context, q string, args ...any) ([]model.Employee, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Employee, 0)
	for rows.Next() {
		var (
			e                                    model.Employee
			name, number, roleID, crop, roleName sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.WarehouseID, &name, &number, &roleID, &crop, &roleName); err != nil {
			return nil, err
		}
		e.Name = strPtr(name)
		e.Number = strPtr(number)
		e.RoleID = strPtr(roleID)
		e.FaceCrop = strPtr(crop)
		e.RoleName = strPtr(roleName)
		items = append(items, e)
	}
	return items, rows.Err()
}

// ListCameras returns the cameras of a warehouse ordered by camera ID.
func (r *WarehousePostgres) ListCameras(ctx context.Context, warehouseID string) ([]model.Camera, error) {
	q := cameraSelect + `
		WHERE warehouse_id = $1
		ORDER BY cam_id`
	rows, err := r.db.QueryContext(ctx, q, warehouseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Camera, 0)
	for rows.Next() {
		c, err := scanCamera(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// ListVehicles returns the vehicles of a warehouse joined with their drivers.
func (r *WarehousePostgres) ListVehicles(ctx context.Context, warehouseID string) ([]model.Vehicle, error) {
	const q = `
		SELECT
			v.id,
			v.warehouse_id,
			v.number_plate,
			v.bags_capacity,
			v.vehicle_access,
			v.driver_id,
			v.created_at,
			d.driver_name,
			d.driver_phone,
			d.driver_crop
		FROM public.wh_vehicles v
		LEFT JOIN public.wh_drivers d ON v.driver_id = d.driver_id
		WHERE v.warehouse_id = $1
		ORDER BY v.id
	`
	rows, err := r.db.QueryContext(ctx, q, warehouseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Vehicle, 0)
	for rows.Next() {
		var (
			v                                            model.Vehicle
			plate, access, driverID, dName, dPhone, dCrop sql.NullString
			capacity                                     sql.NullInt64
			createdAt                                    sql.NullTime
		)
		if err := rows.Scan(
			&v.ID,
			&v.WarehouseID,
			&plate,
			&capacity,
			&access,
			&driverID,
			&createdAt,
			&dName,
			&dPhone,
			&dCrop,
		); err != nil {
			return nil, err
		}
		v.NumberPlate = strPtr(plate)
		v.BagsCapacity = int64Ptr(capacity)
		v.VehicleAccess = strPtr(access)
		v.DriverID = strPtr(driverID)
		v.CreatedAt = dateTimePtr(createdAt)
		v.DriverName = strPtr(dName)
		v.DriverPhone = strPtr(dPhone)
		v.DriverCrop = strPtr(dCrop)
		items = append(items, v)
	}
	return items, rows.Err()
}
