package postgres

import (
	"context"
	"database/sql"

	"warehouseapi/internal/model"
	"warehouseapi/internal/repository"
)

// ActivityPostgres is a PostgreSQL implementation of repository.ActivityRepository.
type ActivityPostgres struct {
	db *sql.DB
}

// NewActivityPostgres creates a new ActivityPostgres repository.
func NewActivityPostgres(db *sql.DB) *ActivityPostgres {
	return &ActivityPostgres{db: db}
}

var _ repository.ActivityRepository = (*ActivityPostgres)(nil)

// EmployeeLogs returns the sightings of one camera for a day ordered by time.
func (r *ActivityPostgres) EmployeeLogs(ctx context.Context, f repository.ActivityFilter) ([]model.EmployeeLog, error) {
	const q = `
		SELECT
			el.id,
			el.warehouse_id,
			el.emp_id,
			e.emp_name,
			e.emp_number,
			r.role_name,
			el.date,
			el.time,
			el.cam_id,
			el.crop_blob_url,
			el.chunk_id,
			el.emp_access
		FROM public.wh_emp_logs el
		LEFT JOIN public.wh_emp_data e ON el.emp_id = e.emp_id
		LEFT JOIN public.wh_emp_role r ON e.role_id = r.role_id
		WHERE el.warehouse_id = $1 AND el.cam_id = $2 AND el.date = $3
		ORDER BY el.time
	`
	rows, err := r.db.QueryContext(ctx, q, f.WarehouseID, f.CamID, f.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.EmployeeLog, 0)
	for rows.Next() {
		var (
			l                                                        model.EmployeeLog
			empID, name, number, roleName, camID, crop, chunk, access sql.NullString
			date, ts                                                 sql.NullTime
		)
		if err := rows.Scan(
			&l.ID,
			&l.WarehouseID,
			&empID,
			&name,
			&number,
			&roleName,
			&date,
			&ts,
			&camID,
			&crop,
			&chunk,
			&access,
		); err != nil {
			return nil, err
		}
		l.EmpID = strPtr(empID)
		l.EmpName = strPtr(name)
		l.EmpNumber = strPtr(number)
		l.RoleName = strPtr(roleName)
		l.Date = datePtr(date)
		l.Time = dateTimePtr(ts)
		l.CamID = strPtr(camID)
		l.CropBlobURL = strPtr(crop)
		l.ChunkID = strPtr(chunk)
		l.EmpAccess = strPtr(access)
		items = append(items, l)
	}
	return items, rows.Err()
}

// GunnyLogs returns the bag counts of one camera for a day ordered by creation time.
func (r *ActivityPostgres) GunnyLogs(ctx context.Context, f repository.ActivityFilter) ([]model.GunnyLog, error) {
	const q = `
		SELECT
			id,
			warehouse_id,
			cam_id,
			count,
			date,
			chunk_id,
			created_at,
			action
		FROM public.wh_gunny_logs
		WHERE warehouse_id = $1 AND cam_id = $2 AND date = $3
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, q, f.WarehouseID, f.CamID, f.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.GunnyLog, 0)
	for rows.Next() {
		var (
			l                     model.GunnyLog
			camID, chunk, action  sql.NullString
			count                 sql.NullInt64
			date, createdAt       sql.NullTime
		)
		if err := rows.Scan(&l.ID, &l.WarehouseID, &camID, &count, &date, &chunk, &createdAt, &action); err != nil {
			return nil, err
		}
		l.CamID = strPtr(camID)
		l.Count = count.Int64
		l.Date = datePtr(date)
		l.ChunkID = strPtr(chunk)
		l.CreatedAt = clockPtr(createdAt)
		l.Action = strPtr(action)
		items = append(items, l)
	}
	return items, rows.Err()
}

// VehicleLogs returns the plate sightings of one camera for a day ordered by creation time.
func (r *ActivityPostgres) VehicleLogs(ctx context.Context, f repository.ActivityFilter) ([]model.VehicleLog, error) {
	const q = `
		SELECT
			id,
			warehouse_id,
			cam_id,
			date,
			chunk_id,
			number_plate,
			vehicle_access,
			created_at
		FROM public.wh_vehicle_logs
		WHERE warehouse_id = $1 AND cam_id = $2 AND date = $3
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, q, f.WarehouseID, f.CamID, f.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.VehicleLog, 0)
	for rows.Next() {
		var (
			l                           model.VehicleLog
			camID, chunk, plate, access sql.NullString
			date, createdAt             sql.NullTime
		)
		if err := rows.Scan(&l.ID, &l.WarehouseID, &camID, &date, &chunk, &plate, &access, &createdAt); err != nil {
			return nil, err
		}
		l.CamID = strPtr(camID)
		l.Date = datePtr(date)
		l.ChunkID = strPtr(chunk)
		l.NumberPlate = strPtr(plate)
		l.VehicleAccess = strPtr(access)
		l.CreatedAt = clockPtr(createdAt)
		items = append(items, l)
	}
	return items, rows.Err()
}

// BagTotals sums loaded and unloaded bags across a warehouse for a day.
func (r *ActivityPostgres) BagTotals(ctx context.Context, f repository.ActivityFilter) (model.BagTotals, error) {
	const q = `
		SELECT
			COALESCE(SUM(CASE WHEN LOWER(action) = 'loading' THEN count ELSE 0 END), 0) AS loaded_bags,
			COALESCE(SUM(CASE WHEN LOWER(action) = 'unloading' THEN count ELSE 0 END), 0) AS unloaded_bags
		FROM public.wh_gunny_logs
		WHERE warehouse_id = $1 AND date = $2
	`
	var out model.BagTotals
	err := r.db.QueryRowContext(ctx, q, f.WarehouseID, f.Date).Scan(&out.Loaded, &out.Unloaded)
	return out, err
}

// VehicleTotals counts distinct plates by access decision across a warehouse for a day.
// Both spellings of (un)authorised are accepted.
func (r *ActivityPostgres) VehicleTotals(ctx context.Context, f repository.ActivityFilter) (model.VehicleTotals, error) {
	const q = `
		SELECT
			COUNT(DISTINCT CASE
				WHEN LOWER(vehicle_access) IN ('authorized', 'authorised')
				THEN number_plate
			END) AS authorised_vehicles,
			COUNT(DISTINCT CASE
				WHEN LOWER(vehicle_access) IN ('unauthorized', 'unauthorised')
				THEN number_plate
			END) AS unauthorised_vehicles
		FROM public.wh_vehicle_logs
		WHERE warehouse_id = $1 AND date = $2
	`
	var out model.VehicleTotals
	err := r.db.QueryRowContext(ctx, q, f.WarehouseID, f.Date).Scan(&out.Authorised, &out.Unauthorised)
	return out, err
}

// EmployeeTotals summarizes employee sightings across a warehouse for a day.
// A sighting without an employee ID is an unauthorised entry.
func (r *ActivityPostgres) EmployeeTotals(ctx context.Context, f repository.ActivityFilter) (model.EmployeeTotals, error) {
	const q = `
		SELECT
			COUNT(*) AS total_employee_logs,
			COUNT(DISTINCT emp_id) FILTER (WHERE emp_id IS NOT NULL) AS total_unique_authorised_employees,
			COUNT(*) FILTER (WHERE emp_id IS NULL) AS total_unauthorised_entries
		FROM public.wh_emp_logs
		WHERE warehouse_id = $1 AND date = $2
	`
	var out model.EmployeeTotals
	err := r.db.QueryRowContext(ctx, q, f.WarehouseID, f.Date).Scan(&out.Logs, &out.UniqueAuthorised, &out.UnauthorisedEntries)
	return out, err
}

const vehicleChunkPairs = `
	SELECT DISTINCT number_plate, chunk_id
	FROM public.wh_vehicle_logs
	WHERE warehouse_id = $1
		AND cam_id = $2
		AND date = $3
		AND number_plate IS NOT NULL
		AND chunk_id IS NOT NULL`

// VehicleChunks returns distinct plate and chunk pairs of one camera for a day.
func (r *ActivityPostgres) VehicleChunks(ctx context.Context, f repository.ActivityFilter) ([]model.PlateChunk, error) {
	q := vehicleChunkPairs + `
		ORDER BY number_plate, chunk_id`
	rows, err := r.db.QueryContext(ctx, q, f.WarehouseID, f.CamID, f.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PlateChunk, 0)
	for rows.Next() {
		var pc model.PlateChunk
		if err := rows.Scan(&pc.NumberPlate, &pc.ChunkID); err != nil {
			return nil, err
		}
		items = append(items, pc)
	}
	return items, rows.Err()
}

// GunnyByVehicle totals the gunny logs recorded in each plate's chunks, per action.
func (r *ActivityPostgres) GunnyByVehicle(ctx context.Context, f repository.ActivityFilter) ([]model.VehicleActionTotal, error) {
	q := `
		SELECT
			vc.number_plate,
			g.action,
			COALESCE(SUM(g.count), 0) AS total_count,
			COUNT(*) AS entry_count,
			MIN(g.created_at) AS first_entry_time,
			MAX(g.created_at) AS last_entry_time
		FROM (` + vehicleChunkPairs + `) vc
		JOIN public.wh_gunny_logs g
			ON g.chunk_id = vc.chunk_id
			AND g.warehouse_id = $1
			AND g.cam_id = $2
			AND g.date = $3
		GROUP BY vc.number_plate, g.action
		ORDER BY vc.number_plate, g.action`
	rows, err := r.db.QueryContext(ctx, q, f.WarehouseID, f.CamID, f.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.VehicleActionTotal, 0)
	for rows.Next() {
		var (
			t           model.VehicleActionTotal
			action      sql.NullString
			first, last sql.NullTime
		)
		if err := rows.Scan(&t.NumberPlate, &action, &t.TotalCount, &t.Entries, &first, &last); err != nil {
			return nil, err
		}
		t.Action = strPtr(action)
		t.FirstEntry = clockPtr(first)
		t.LastEntry = clockPtr(last)
		items = append(items, t)
	}
	return items, rows.Err()
}
