// Package metrics records the outcome of a cycle for node_exporter's
// textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/i474232898/weather-fetch/internal/weather"
)

// Recorder holds the gauges of a single run.
type Recorder struct {
	registry    *prometheus.Registry
	temperature *prometheus.GaugeVec
	lastRun     prometheus.Gauge
	success     prometheus.Gauge
	state       *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		temperature: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "weather_temperature_degrees",
			Help: "Last observed temperature in the requested unit system.",
		}, []string{"units"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "weather_last_run_timestamp_seconds",
			Help: "Unix time the last cycle finished.",
		}),
		success: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "weather_last_run_success",
			Help: "1 if the last cycle wrote a reading, 0 otherwise.",
		}),
		state: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "weather_run_state",
			Help: "Terminal state of the last cycle, 1 for the state reached.",
		}, []string{"state"}),
	}
	r.registry.MustRegister(r.temperature, r.lastRun, r.success, r.state)
	return r
}

// Observe records the result of a finished cycle.
func (r *Recorder) Observe(res weather.Result, units weather.Units, at time.Time) {
	r.lastRun.Set(float64(at.Unix()))

	for _, s := range weather.States() {
		if !s.Terminal() {
			continue
		}
		v := 0.0
		if s == res.State {
			v = 1
		}
		r.state.WithLabelValues(s.String()).Set(v)
	}

	if res.State != weather.StateDone {
		r.success.Set(0)
		return
	}
	r.success.Set(1)
	r.temperature.WithLabelValues(string(units)).Set(res.Raw.Temperature)
}

// WriteFile writes the gauges in text exposition format. The file is
// replaced atomically.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
