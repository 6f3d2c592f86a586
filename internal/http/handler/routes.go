package handler

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"warehouseapi/internal/service"
)

// Services bundles the service dependencies of the HTTP layer.
type Services struct {
	Warehouses service.WarehouseService
	Streams    service.CameraStreamService
	Chunks     service.ChunkService
	Activity   service.ActivityService
	Chat       service.ChatService

	// Cache, when set, is reported by /health.
	Cache Pinger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	app.Get("/", Home())
	app.Get("/health", HealthCheck(db, svc.Cache))
	app.Get("/healthz", LivenessProbe())

	v1 := app.Group("/api/v1")
	v1.Get("/warehouses", ListWarehouses(svc.Warehouses))
	v1.Get("/warehouses/:warehouse_id", GetWarehouse(svc.Warehouses))
	v1.Get("/warehouses/:warehouse_id/dashboard", Dashboard(svc.Activity))
	v1.Get("/cameras/stream-url", GetStreamURL(svc.Streams))

	cam := v1.Group("/warehouses/:warehouse_id/cameras/:cam_id")
	cam.Get("/chunks", ListChunks(svc.Chunks))
	cam.Post("/chunks/:chunk_id/chat", ChatWithChunk(svc.Chat, validate))
	cam.Get("/logs/employees", EmployeeLogs(svc.Activity))
	cam.Get("/logs/gunny-bags", GunnyLogs(svc.Activity))
	cam.Get("/logs/vehicles", VehicleLogs(svc.Activity))
	cam.Get("/analytics/vehicle-gunny-count", VehicleGunnyCount(svc.Activity))
}
