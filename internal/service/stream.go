package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"warehouseapi/internal/repository"
)

// Default lifetime of an HLS streaming session.
const DefaultHLSExpiry = time.Hour

// cached sessions are dropped this long before the upstream URL expires
const sessionExpiryMargin = time.Minute

// StreamResolver obtains live HLS playback sessions from Kinesis Video Streams.
type StreamResolver interface {
	// DataEndpoint returns the endpoint serving HLS sessions for a stream.
	DataEndpoint(ctx context.Context, streamARN string) (string, error)

	// HLSSessionURL creates a LIVE HLS session on the data endpoint.
	HLSSessionURL(ctx context.Context, endpoint, streamARN string, expires time.Duration) (string, error)
}

// Cache stores opaque values with a TTL. Misses and failures both report false.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// StreamURLResult is a live playback URL for a camera.
type StreamURLResult struct {
	Status           string `json:"status"`
	StreamARN        string `json:"stream_arn"`
	StreamName       string `json:"stream_name"`
	WarehouseID      string `json:"warehouse_id"`
	CamID            string `json:"cam_id"`
	HLSStreamingURL  string `json:"hls_streaming_url"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
	DataEndpoint     string `json:"data_endpoint"`
	DatabaseUpdate   string `json:"database_update"`
}

// CameraStreamService hands out HLS playback URLs for cameras.
type CameraStreamService interface {
	StreamURL(ctx context.Context, warehouseID, camID string) (*StreamURLResult, error)
}

type hlsSession struct {
	URL          string    `json:"hls_url"`
	DataEndpoint string    `json:"data_endpoint"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type cameraStreamService struct {
	cameras  repository.CameraRepository
	resolver StreamResolver
	cache    Cache
	expires  time.Duration
	log      zerolog.Logger
	group    singleflight.Group
	now      func() time.Time
}

// NewCameraStreamService constructs a new CameraStreamService.
// A nil cache disables session caching; a non-positive expiry uses DefaultHLSExpiry.
func NewCameraStreamService(cameras repository.CameraRepository, resolver StreamResolver, cache Cache, expires time.Duration, log zerolog.Logger) CameraStreamService {
	if expires <= 0 {
		expires = DefaultHLSExpiry
	}
	return &cameraStreamService{
		cameras:  cameras,
		resolver: resolver,
		cache:    cache,
		expires:  expires,
		log:      log,
		now:      time.Now,
	}
}

// StreamName extracts the stream name from a Kinesis Video stream ARN,
// arn:aws:kinesisvideo:<region>:<account>:stream/<name>/<creation-time>.
func StreamName(arn string) (string, error) {
	parts := strings.Split(arn, "/")
	if len(parts) < 2 || parts[1] == "" {
		return "", ErrInvalidStreamARN
	}
	return parts[1], nil
}

func (s *cameraStreamService) StreamURL(ctx context.Context, warehouseID, camID string) (*StreamURLResult, error) {
	cam, err := s.cameras.Find(ctx, warehouseID, camID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: cam_id=%s, warehouse_id=%s", ErrCameraNotFound, camID, warehouseID)
		}
		return nil, fmt.Errorf("find camera: %w", err)
	}
	if cam.StreamARN == nil || *cam.StreamARN == "" {
		return nil, fmt.Errorf("%w: %s", ErrStreamNotConfigured, camID)
	}
	arn := *cam.StreamARN
	name, err := StreamName(arn)
	if err != nil {
		return nil, err
	}

	// Waiting callers share this call, so one caller going away must not fail the rest.
	v, err, _ := s.group.Do(arn, func() (any, error) {
		return s.session(context.WithoutCancel(ctx), arn)
	})
	if err != nil {
		return nil, err
	}
	sess := v.(hlsSession)

	rows, err := s.cameras.UpdateStream(ctx, warehouseID, camID, sess.URL)
	if err != nil {
		return nil, fmt.Errorf("update camera stream: %w", err)
	}
	update := "Camera update failed"
	if rows > 0 {
		update = "Camera status updated to 'active' and HLS URL saved"
	}

	return &StreamURLResult{
		Status:           StatusSuccess,
		StreamARN:        arn,
		StreamName:       name,
		WarehouseID:      warehouseID,
		CamID:            camID,
		HLSStreamingURL:  sess.URL,
		ExpiresInSeconds: int(sess.ExpiresAt.Sub(s.now()).Round(time.Second).Seconds()),
		DataEndpoint:     sess.DataEndpoint,
		DatabaseUpdate:   update,
	}, nil
}

// session returns a cached HLS session for the stream or creates a new one.
func (s *cameraStreamService) session(ctx context.Context, arn string) (hlsSession, error) {
	key := "kvs:hls:" + arn
	if s.cache != nil {
		if b, ok := s.cache.Get(ctx, key); ok {
			var sess hlsSession
			if err := json.Unmarshal(b, &sess); err == nil && s.now().Add(sessionExpiryMargin).Before(sess.ExpiresAt) {
				return sess, nil
			}
		}
	}

	endpoint, err := s.resolver.DataEndpoint(ctx, arn)
	if err != nil {
		s.log.Error().Err(err).Str("stream_arn", arn).Msg("kvs get data endpoint failed")
		return hlsSession{}, upstream("Kinesis", "get data endpoint", err)
	}
	url, err := s.resolver.HLSSessionURL(ctx, endpoint, arn, s.expires)
	if err != nil {
		s.log.Error().Err(err).Str("stream_arn", arn).Msg("kvs get hls session failed")
		return hlsSession{}, upstream("Kinesis", "get hls session url", err)
	}
	sess := hlsSession{URL: url, DataEndpoint: endpoint, ExpiresAt: s.now().Add(s.expires)}

	if s.cache != nil && s.expires > sessionExpiryMargin {
		if b, err := json.Marshal(sess); err == nil {
			s.cache.Set(ctx, key, b, s.expires-sessionExpiryMargin)
		}
	}
	return sess, nil
}
