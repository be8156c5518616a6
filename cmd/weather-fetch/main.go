package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-fetch/internal/config"
	"github.com/i474232898/weather-fetch/internal/icons"
	"github.com/i474232898/weather-fetch/internal/metrics"
	"github.com/i474232898/weather-fetch/internal/store"
	"github.com/i474232898/weather-fetch/internal/weather"
	"github.com/i474232898/weather-fetch/internal/weather/providers"
)

// Command weather-fetch polls OpenWeatherMap once, caches the matching icon and
// writes ~/.local/share/weather/data/data.json for panel widgets to read.
//
// It is meant to be re-run by an outer loop, for example:
//
//	while true; do weather-fetch -k KEY -l 80918; sleep 10m; done
func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := logrus.New()
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if cfg.Weather.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := cfg.Bootstrap(); err != nil {
		logger.WithError(err).Error("failed to prepare directories")
		return 1
	}

	// Shared HTTP client for outbound provider and icon calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	service := weather.NewService(
		providers.NewOpenWeatherProvider(httpClient, logger),
		icons.NewCache(httpClient, logger),
		store.NewFileStore(),
		os.Stdout,
		logger,
	)

	res, err := service.Run(context.Background(), &cfg.Weather)

	if cfg.MetricsFile != "" {
		rec := metrics.NewRecorder()
		rec.Observe(res, cfg.Weather.Units, time.Now())
		if werr := rec.WriteFile(cfg.MetricsFile); werr != nil {
			logger.WithError(werr).Warn("failed to write metrics file")
		}
	}

	if err != nil {
		logger.WithField("state", res.State.String()).Errorf("Failed to update weather: %v", err)
		return 1
	}
	return 0
}
