package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		temp  float64
		units Units
		want  string
	}{
		{15.9, Imperial, "15°F"},
		{-0.4, Metric, "0°C"},
		{-7.8, Metric, "-7°C"},
		{15, Imperial, "15°F"},
		{0, Metric, "0°C"},
		{99.999, Imperial, "99°F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTemperature(tt.temp, tt.units), "%v %s", tt.temp, tt.units)
	}
}

func TestSummary(t *testing.T) {
	raw := RawReading{
		Place:       "London",
		Country:     "GB",
		Temperature: 5.6,
		Condition:   "Clouds",
		Description: "overcast clouds",
		IconCode:    "04n",
	}
	assert.Equal(t, "London, GB: 5°C - overcast clouds", raw.Summary(Metric))
}

func TestStateTerminal(t *testing.T) {
	terminal := map[State]bool{
		StateConfigMissing:    true,
		StateReadingFailed:    true,
		StateIconLookupFailed: true,
		StateIconFailed:       true,
		StatePersistFailed:    true,
		StateDone:             true,
	}
	for _, s := range States() {
		assert.Equal(t, terminal[s], s.Terminal(), s.String())
		assert.NotEqual(t, "unknown", s.String())
	}
	assert.Equal(t, "unknown", State(99).String())
}
