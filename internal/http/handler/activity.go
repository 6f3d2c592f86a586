package handler

import (
	"github.com/gofiber/fiber/v2"

	"warehouseapi/internal/service"
)

// ListChunks godoc
// @Summary List video chunks
// @Tags chunks
// @Produce json
// @Param warehouse_id path string true "Warehouse ID"
// @Param cam_id path string true "Camera ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} service.ChunkListResult
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v1/warehouses/{warehouse_id}/cameras/{cam_id}/chunks [get]
func ListChunks(svc service.ChunkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), c.Params("warehouse_id"), c.Params("cam_id"), c.Query("date"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// EmployeeLogs godoc
// @Summary Employee logs
// @Tags logs
// @Produce json
// @Param warehouse_id path string true "Warehouse ID"
// @Param cam_id path string true "Camera ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} service.EmployeeLogsResult
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v1/warehouses/{warehouse_id}/cameras/{cam_id}/logs/employees [get]
func EmployeeLogs(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.EmployeeLogs(c.UserContext(), c.Params("warehouse_id"), c.Params("cam_id"), c.Query("date"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GunnyLogs godoc
// @Summary Gunny bag logs
// @Tags logs
// @Produce json
// @Param warehouse_id path string true "Warehouse ID"
// @Param cam_id path string true "Camera ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} service.GunnyLogsResult
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v1/warehouses/{warehouse_id}/cameras/{cam_id}/logs/gunny-bags [get]
func GunnyLogs(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GunnyLogs(c.UserContext(), c.Params("warehouse_id"), c.Params("cam_id"), c.Query("date"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// VehicleLogs godoc
// @Summary Vehicle logs
// @Tags logs
// @Produce json
// @Param warehouse_id path string true "Warehouse ID"
// @Param cam_id path string true "Camera ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} service.VehicleLogsResult
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v1/warehouses/{warehouse_id}/cameras/{cam_id}/logs/vehicles [get]
func VehicleLogs(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.VehicleLogs(c.UserContext(), c.Params("warehouse_id"), c.Params("cam_id"), c.Query("date"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// Dashboard godoc
// @Summary Warehouse dashboard
// @Description Daily bag, vehicle and employee totals for a warehouse
// @Tags analytics
// @Produce json
// @Param warehouse_id path string true "Warehouse ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} service.DashboardResult
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v1/warehouses/{warehouse_id}/dashboard [get]
func Dashboard(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Dashboard(c.UserContext(), c.Params("warehouse_id"), c.Query("date"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// VehicleGunnyCount godoc
// @Summary Vehicle-wise gunny count
// @Tags analytics
// @Produce json
// @Param warehouse_id path string true "Warehouse ID"
// @Param cam_id path string true "Camera ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} service.VehicleGunnyResult
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v1/warehouses/{warehouse_id}/cameras/{cam_id}/analytics/vehicle-gunny-count [get]
func VehicleGunnyCount(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.VehicleGunnyCount(c.UserContext(), c.Params("warehouse_id"), c.Params("cam_id"), c.Query("date"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
