package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"warehouseapi/internal/model"
	"warehouseapi/internal/service"
)

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// ChatWithChunk godoc
// @Summary Chat about a video chunk
// @Description Answers a question using the chunk's merged transcripts as context
// @Tags chat
// @Accept json
// @Produce json
// @Param warehouse_id path string true "Warehouse ID"
// @Param cam_id path string true "Camera ID"
// @Param chunk_id path string true "Chunk ID"
// @Param request body model.ChatRequest true "Chat request"
// @Success 200 {object} model.ChatResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /api/v1/warehouses/{warehouse_id}/cameras/{cam_id}/chunks/{chunk_id}/chat [post]
func ChatWithChunk(svc service.ChatService, validate *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.ChatRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}
		if err := validate.Struct(req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", validationMessage(err))
		}

		res, err := svc.Chat(c.UserContext(), c.Params("warehouse_id"), c.Params("cam_id"), c.Params("chunk_id"), req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
