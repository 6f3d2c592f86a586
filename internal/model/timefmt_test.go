package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeFormats(t *testing.T) {
	ts := time.Date(2025, 9, 22, 14, 5, 9, 0, time.UTC)

	out, err := json.Marshal(struct {
		D  *Date     `json:"d"`
		DT *DateTime `json:"dt"`
		C  *Clock    `json:"c"`
		N  *Clock    `json:"n"`
	}{NewDate(ts), NewDateTime(ts), NewClock(ts), NewClock(time.Time{})})

	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2025-09-22","dt":"2025-09-22 14:05:09","c":"14:05:09","n":null}`, string(out))
}

func TestTimeFormats_Unmarshal(t *testing.T) {
	var v struct {
		DT DateTime `json:"dt"`
		C  *Clock   `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"dt":"2025-09-22 14:05:09","c":null}`), &v))
	assert.Equal(t, 14, v.DT.Hour())
	assert.Nil(t, v.C)

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"22-09-2025"`), &d))
}
