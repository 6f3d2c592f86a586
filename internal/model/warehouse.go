// Package model contains the domain types shared across layers.
package model

// Warehouse is a storage site watched by cameras.
// Nullable columns are pointers so they render as JSON null.
type Warehouse struct {
	ID        string   `json:"warehouse_id"`
	Name      *string  `json:"warehouse_name"`
	Capacity  *int64   `json:"warehouse_capacity"`
	Longitude *float64 `json:"warehouse_longitude"`
	Latitude  *float64 `json:"warehouse_latitude"`
	Location  *string  `json:"warehouse_location"`
}

// Supervisory role identifiers, in display rank order.
const (
	RoleSupervisor = "ROLE_SUP"
	RoleIncharge   = "ROLE_INC"
	RoleDataEntry  = "ROLE_DEO"
)

// Employee is a warehouse staff member joined with its role name.
type Employee struct {
	ID          string  `json:"emp_id"`
	WarehouseID string  `json:"warehouse_id"`
	Name        *string `json:"emp_name"`
	Number      *string `json:"emp_number"`
	RoleID      *string `json:"role_id"`
	FaceCrop    *string `json:"emp_facecrop"`
	RoleName    *string `json:"role_name"`
}

// Camera is a video source installed at a warehouse.
type Camera struct {
	ID          string   `json:"cam_id"`
	Direction   *string  `json:"cam_direction"`
	Status      *string  `json:"camera_status"`
	WarehouseID string   `json:"warehouse_id"`
	StreamARN   *string  `json:"stream_arn"`
	HLSURL      *string  `json:"hls_url"`
	Longitude   *float64 `json:"camera_longitude"`
	Latitude    *float64 `json:"camera_latitude"`
	Services    *string  `json:"services"`
}

// Vehicle is a registered vehicle joined with its driver.
type Vehicle struct {
	ID            int64     `json:"id"`
	WarehouseID   string    `json:"warehouse_id"`
	NumberPlate   *string   `json:"number_plate"`
	BagsCapacity  *int64    `json:"bags_capacity"`
	VehicleAccess *string   `json:"vehicle_access"`
	DriverID      *string   `json:"driver_id"`
	CreatedAt     *DateTime `json:"created_at"`
	DriverName    *string   `json:"driver_name"`
	DriverPhone   *string   `json:"driver_phone"`
	DriverCrop    *string   `json:"driver_crop"`
}

// Chunk is a recorded video segment with its transcript location.
type Chunk struct {
	ID             string    `json:"chunk_id"`
	WarehouseID    string    `json:"warehouse_id"`
	CamID          string    `json:"cam_id"`
	ChunkBlobURL   *string   `json:"chunk_blob_url"`
	TranscriptsURL *string   `json:"transcripts_url"`
	Date           *Date     `json:"date"`
	Time           *DateTime `json:"time"`
}
