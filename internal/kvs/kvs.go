// Package kvs talks to Amazon Kinesis Video Streams to open HLS playback sessions.
package kvs

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesisvideo"
	kvtypes "github.com/aws/aws-sdk-go-v2/service/kinesisvideo/types"
	"github.com/aws/aws-sdk-go-v2/service/kinesisvideoarchivedmedia"
	amtypes "github.com/aws/aws-sdk-go-v2/service/kinesisvideoarchivedmedia/types"

	"warehouseapi/internal/service"
)

var errEmptyResponse = errors.New("kinesis video returned an empty response")

// Client resolves HLS sessions. It implements service.StreamResolver.
type Client struct {
	cfg   aws.Config
	video *kinesisvideo.Client
}

var _ service.StreamResolver = (*Client)(nil)

// New creates a Kinesis Video client from a loaded AWS configuration.
func New(cfg aws.Config) *Client {
	return &Client{cfg: cfg, video: kinesisvideo.NewFromConfig(cfg)}
}

// DataEndpoint returns the endpoint that serves GET_HLS_STREAMING_SESSION_URL for the stream.
func (c *Client) DataEndpoint(ctx context.Context, streamARN string) (string, error) {
	out, err := c.video.GetDataEndpoint(ctx, &kinesisvideo.GetDataEndpointInput{
		StreamARN: aws.String(streamARN),
		APIName:   kvtypes.APIName("GET_HLS_STREAMING_SESSION_URL"),
	})
	if err != nil {
		return "", err
	}
	if aws.ToString(out.DataEndpoint) == "" {
		return "", errEmptyResponse
	}
	return aws.ToString(out.DataEndpoint), nil
}

// HLSSessionURL opens a LIVE session ordered by server timestamps.
func (c *Client) HLSSessionURL(ctx context.Context, endpoint, streamARN string, expires time.Duration) (string, error) {
	media := kinesisvideoarchivedmedia.NewFromConfig(c.cfg, func(o *kinesisvideoarchivedmedia.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})
	out, err := media.GetHLSStreamingSessionURL(ctx, &kinesisvideoarchivedmedia.GetHLSStreamingSessionURLInput{
		StreamARN:    aws.String(streamARN),
		PlaybackMode: amtypes.HLSPlaybackMode("LIVE"),
		HLSFragmentSelector: &amtypes.HLSFragmentSelector{
			FragmentSelectorType: amtypes.HLSFragmentSelectorType("SERVER_TIMESTAMP"),
		},
		Expires: aws.Int32(int32(expires / time.Second)),
	})
	if err != nil {
		return "", err
	}
	if aws.ToString(out.HLSStreamingSessionURL) == "" {
		return "", errEmptyResponse
	}
	return aws.ToString(out.HLSStreamingSessionURL), nil
}
