package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/aws/smithy-go"

	"warehouseapi/internal/model"
)

// StatusSuccess is the status reported by every successful result.
const StatusSuccess = "success"

var (
	ErrInvalidDate          = errors.New("invalid date format, use YYYY-MM-DD")
	ErrWarehouseNotFound    = errors.New("warehouse not found")
	ErrCameraNotFound       = errors.New("camera not found")
	ErrChunkNotFound        = errors.New("chunk not found")
	ErrStreamNotConfigured  = errors.New("stream ARN not configured for camera")
	ErrInvalidStreamARN     = errors.New("invalid stream ARN format")
	ErrTranscriptURLMissing = errors.New("no transcript URL configured for chunk")
	ErrUnsupportedBlobURL   = errors.New("unsupported blob URL format")
	ErrTranscriptsNotFound  = errors.New("no transcript files found for chunk")
	ErrEmptyVideoContext    = errors.New("failed to build video context from transcripts")
	ErrNoModelResponse      = errors.New("no response from AI model")
)

// UpstreamError is an error reported by a remote AWS API.
type UpstreamError struct {
	Service string
	Code    string
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("AWS %s Error: %s - %s", e.Service, e.Code, e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// upstream converts smithy API errors into *UpstreamError and wraps the rest.
func upstream(svc, op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{
			Service: svc,
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
			Err:     err,
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ParseDate validates a YYYY-MM-DD query value.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}
