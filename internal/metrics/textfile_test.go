package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-fetch/internal/weather"
)

func TestRecorderDone(t *testing.T) {
	r := NewRecorder()
	res := weather.Result{
		State: weather.StateDone,
		Raw:   weather.RawReading{Temperature: 15.9},
	}
	r.Observe(res, weather.Imperial, time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "weather.prom")
	require.NoError(t, r.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, `weather_temperature_degrees{units="imperial"} 15.9`)
	assert.Contains(t, text, "weather_last_run_success 1")
	assert.Contains(t, text, "weather_last_run_timestamp_seconds 1.7e+09")
	assert.Contains(t, text, `weather_run_state{state="done"} 1`)
	assert.Contains(t, text, `weather_run_state{state="reading_failed"} 0`)
}

func TestRecorderFailure(t *testing.T) {
	r := NewRecorder()
	r.Observe(weather.Result{State: weather.StateIconFailed}, weather.Metric, time.Now())

	path := filepath.Join(t.TempDir(), "weather.prom")
	require.NoError(t, r.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "weather_last_run_success 0")
	assert.Contains(t, text, `weather_run_state{state="icon_failed"} 1`)
	assert.NotContains(t, text, "weather_temperature_degrees{")
}
