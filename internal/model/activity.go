package model

// EmployeeLog is a face sighting of a (possibly unknown) person by a camera.
type EmployeeLog struct {
	ID          int64     `json:"log_id"`
	WarehouseID string    `json:"warehouse_id"`
	EmpID       *string   `json:"emp_id"`
	EmpName     *string   `json:"emp_name"`
	EmpNumber   *string   `json:"emp_number"`
	RoleName    *string   `json:"role_name"`
	Date        *Date     `json:"date"`
	Time        *DateTime `json:"time"`
	CamID       *string   `json:"cam_id"`
	CropBlobURL *string   `json:"crop_blob_url"`
	ChunkID     *string   `json:"chunk_id"`
	EmpAccess   *string   `json:"emp_access"`
}

// GunnyLog is a counted batch of gunny bags being loaded or unloaded.
// A NULL count is stored as zero.
type GunnyLog struct {
	ID          int64   `json:"log_id"`
	WarehouseID string  `json:"warehouse_id"`
	CamID       *string `json:"cam_id"`
	Count       int64   `json:"count"`
	Date        *Date   `json:"date"`
	ChunkID     *string `json:"chunk_id"`
	CreatedAt   *Clock  `json:"created_at"`
	Action      *string `json:"action"`
}

// VehicleLog is a number plate sighting by a camera.
type VehicleLog struct {
	ID            int64   `json:"log_id"`
	WarehouseID   string  `json:"warehouse_id"`
	CamID         *string `json:"cam_id"`
	Date          *Date   `json:"date"`
	ChunkID       *string `json:"chunk_id"`
	NumberPlate   *string `json:"number_plate"`
	VehicleAccess *string `json:"vehicle_access"`
	CreatedAt     *Clock  `json:"created_at"`
}

// BagTotals aggregates gunny bag movements for a day.
type BagTotals struct {
	Loaded   int64
	Unloaded int64
}

// VehicleTotals counts distinct plates by access decision for a day.
type VehicleTotals struct {
	Authorised   int64
	Unauthorised int64
}

// EmployeeTotals summarizes employee sightings for a day.
type EmployeeTotals struct {
	Logs                int64
	UniqueAuthorised    int64
	UnauthorisedEntries int64
}

// PlateChunk pairs a number plate with a chunk it was seen in.
type PlateChunk struct {
	NumberPlate string
	ChunkID     string
}

// VehicleActionTotal is the gunny bag total for one plate and action.
type VehicleActionTotal struct {
	NumberPlate string
	Action      *string
	TotalCount  int64
	Entries     int64
	FirstEntry  *Clock
	LastEntry   *Clock
}
