package service

import (
	"errors"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2025-03-01", false},
		{"", true},
		{"01-03-2025", true},
		{"2025-02-30", true},
		{"2025-3-1", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, d.Format("2006-01-02"))
		})
	}
}

func TestUpstream(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		apiErr := &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "stream not found"}
		err := upstream("Kinesis", "get data endpoint", apiErr)

		var ue *UpstreamError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "ResourceNotFoundException", ue.Code)
		assert.Equal(t, "AWS Kinesis Error: ResourceNotFoundException - stream not found", err.Error())
		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("other error", func(t *testing.T) {
		base := errors.New("dial tcp: timeout")
		err := upstream("Kinesis", "get data endpoint", base)

		var ue *UpstreamError
		assert.False(t, errors.As(err, &ue))
		assert.ErrorIs(t, err, base)
		assert.Equal(t, "get data endpoint: dial tcp: timeout", err.Error())
	})
}
