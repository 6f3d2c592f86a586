package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
)

const apiVersion = "1.0.0"

var endpointCatalogue = fiber.Map{
	"warehouses":              "GET /api/v1/warehouses - Get all warehouses with employees",
	"warehouse_by_id":         "GET /api/v1/warehouses/{warehouse_id} - Get specific warehouse details",
	"camera_stream":           "GET /api/v1/cameras/stream-url - Get HLS streaming URL for camera",
	"chunks":                  "GET /api/v1/warehouses/{warehouse_id}/cameras/{cam_id}/chunks - Get video chunks",
	"employee_logs":           "GET /api/v1/warehouses/{warehouse_id}/cameras/{cam_id}/logs/employees - Get employee logs",
	"gunny_logs":              "GET /api/v1/warehouses/{warehouse_id}/cameras/{cam_id}/logs/gunny-bags - Get gunny bag logs",
	"vehicle_logs":            "GET /api/v1/warehouses/{warehouse_id}/cameras/{cam_id}/logs/vehicles - Get vehicle logs",
	"dashboard":               "GET /api/v1/warehouses/{warehouse_id}/dashboard - Get dashboard analytics",
	"vehicle_gunny_analytics": "GET /api/v1/warehouses/{warehouse_id}/cameras/{cam_id}/analytics/vehicle-gunny-count - Get vehicle-wise gunny count",
	"chunk_chat":              "POST /api/v1/warehouses/{warehouse_id}/cameras/{cam_id}/chunks/{chunk_id}/chat - Ask about a video chunk",
}

func serviceInfo() fiber.Map {
	return fiber.Map{
		"status":    "healthy",
		"message":   "Warehouse API is running",
		"version":   apiVersion,
		"endpoints": endpointCatalogue,
	}
}

// Home godoc
// @Summary Service info
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func Home() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(serviceInfo())
	}
}

// Pinger is an optional dependency reported by /health.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports service info after checking database connectivity.
// @Description When a session cache is configured its state is reported as "cache".
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB, cache Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}

		info := serviceInfo()
		// cache loss is reported, never fatal
		if cache != nil {
			info["cache"] = "ok"
			if err := cache.HealthCheck(ctx); err != nil {
				info["cache"] = "unavailable"
			}
		}
		return c.Status(fiber.StatusOK).JSON(info)
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
