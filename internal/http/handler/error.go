package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"warehouseapi/internal/http/middleware"
	"warehouseapi/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_DATE", "CAMERA_NOT_FOUND")
// - message: human-readable safe message
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.GetRequestID(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

const invalidDateMessage = "Invalid date format. Use YYYY-MM-DD"

type errorMapping struct {
	target error
	status int
	code   string
}

// Domain errors carry caller-supplied identifiers only, so their text is safe to return.
var domainErrors = []errorMapping{
	{service.ErrWarehouseNotFound, fiber.StatusNotFound, "WAREHOUSE_NOT_FOUND"},
	{service.ErrCameraNotFound, fiber.StatusNotFound, "CAMERA_NOT_FOUND"},
	{service.ErrChunkNotFound, fiber.StatusNotFound, "CHUNK_NOT_FOUND"},
	{service.ErrTranscriptsNotFound, fiber.StatusNotFound, "TRANSCRIPTS_NOT_FOUND"},
	{service.ErrStreamNotConfigured, fiber.StatusBadRequest, "STREAM_NOT_CONFIGURED"},
	{service.ErrInvalidStreamARN, fiber.StatusBadRequest, "INVALID_STREAM_ARN"},
	{service.ErrTranscriptURLMissing, fiber.StatusBadRequest, "TRANSCRIPT_URL_MISSING"},
	{service.ErrUnsupportedBlobURL, fiber.StatusBadRequest, "UNSUPPORTED_BLOB_URL"},
	{service.ErrEmptyVideoContext, fiber.StatusInternalServerError, "EMPTY_VIDEO_CONTEXT"},
	{service.ErrNoModelResponse, fiber.StatusInternalServerError, "NO_MODEL_RESPONSE"},
}

// writeServiceError translates a service error into the error envelope.
// Unknown errors become a 500 without leaking internal details.
func writeServiceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrInvalidDate) {
		return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", invalidDateMessage)
	}
	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			return writeError(c, m.status, m.code, err.Error())
		}
	}

	var upErr *service.UpstreamError
	if errors.As(err, &upErr) {
		if upErr.Service == "Kinesis" {
			return writeError(c, fiber.StatusBadRequest, "AWS_ERROR", upErr.Error())
		}
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", upErr.Error())
	}

	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
