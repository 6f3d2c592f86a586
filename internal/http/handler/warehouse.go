package handler

import (
	"github.com/gofiber/fiber/v2"

	"warehouseapi/internal/service"
)

// ListWarehouses godoc
// @Summary List warehouses
// @Description Lists every warehouse with its supervisory staff
// @Tags warehouses
// @Produce json
// @Success 200 {object} service.WarehouseListResult
// @Failure 500 {object} errorPayload
// @Router /api/v1/warehouses [get]
func ListWarehouses(svc service.WarehouseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetWarehouse godoc
// @Summary Get warehouse
// @Description Returns a warehouse with its cameras, vehicles and employees
// @Tags warehouses
// @Produce json
// @Param warehouse_id path string true "Warehouse ID"
// @Success 200 {object} service.WarehouseDetail
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v1/warehouses/{warehouse_id} [get]
func GetWarehouse(svc service.WarehouseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Get(c.UserContext(), c.Params("warehouse_id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetStreamURL godoc
// @Summary Camera HLS stream URL
// @Description Creates (or reuses) a live HLS session for the camera's Kinesis video stream
// @Tags cameras
// @Produce json
// @Param warehouse_id query string true "Warehouse ID"
// @Param cam_id query string true "Camera ID"
// @Success 200 {object} service.StreamURLResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v1/cameras/stream-url [get]
func GetStreamURL(svc service.CameraStreamService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		warehouseID := c.Query("warehouse_id")
		camID := c.Query("cam_id")
		if warehouseID == "" || camID == "" {
			return writeError(c, fiber.StatusBadRequest, "MISSING_PARAMETER", "warehouse_id and cam_id are required")
		}

		res, err := svc.StreamURL(c.UserContext(), warehouseID, camID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
