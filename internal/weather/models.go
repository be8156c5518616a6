package weather

import (
	"fmt"
	"math"

	"github.com/i474232898/weather-fetch/internal/icons"
)

// Units is the unit system readings are requested in.
type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

// Suffix returns the degree suffix shown after a temperature.
func (u Units) Suffix() string {
	if u == Metric {
		return "°C"
	}
	return "°F"
}

// FormatTemperature truncates t toward zero and appends the unit suffix,
// so 15.9 imperial is "15°F" and -0.4 metric is "0°C".
func FormatTemperature(t float64, u Units) string {
	return fmt.Sprintf("%d%s", int64(math.Trunc(t)), u.Suffix())
}

// Options is the resolved configuration for one cycle. It is built once and
// never modified.
type Options struct {
	Location  string
	APIKey    string
	Units     Units
	IconStyle icons.Style
	Debug     bool
	IconDir   string
	DataDir   string
}

// RawReading is a provider observation as decoded from the response.
type RawReading struct {
	Place       string
	Country     string
	Temperature float64 // in the requested units
	Condition   string  // e.g. "Snow"
	Description string  // e.g. "light snow"
	IconCode    string  // e.g. "13d"
}

// Reading is the normalized form written to the data file.
type Reading struct {
	Temp       string `json:"temp"`
	Conditions string `json:"conditions"`
	Icon       string `json:"icon"`
}

// Summary renders the one-line status printed after a successful cycle.
func (r RawReading) Summary(u Units) string {
	return fmt.Sprintf("%s, %s: %s - %s", r.Place, r.Country, FormatTemperature(r.Temperature, u), r.Description)
}
