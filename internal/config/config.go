package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/i474232898/weather-fetch/internal/icons"
	"github.com/i474232898/weather-fetch/internal/weather"
)

// ErrHelp is returned by Load when -h or --help was given.
var ErrHelp = pflag.ErrHelp

var validate = validator.New()

type AppConfig struct {
	Weather weather.Options

	// HTTPTimeout bounds each outbound request.
	HTTPTimeout time.Duration

	// MetricsFile, when set, receives textfile metrics after every run.
	MetricsFile string

	LogFormat string
}

// settings is the flat, validated view of everything Load resolved.
type settings struct {
	Location    string        `validate:"required"`
	APIKey      string        `validate:"required"`
	Units       string        `validate:"oneof=metric imperial"`
	IconStyle   string        `validate:"oneof=classic alternate"`
	IconDir     string        `validate:"required"`
	DataDir     string        `validate:"required"`
	HTTPTimeout time.Duration `validate:"gt=0"`
	LogFormat   string        `validate:"oneof=text json"`
}

// Load resolves configuration from command line args, WEATHER_* environment
// variables and an optional .env file, in that order of precedence.
func Load(args []string) (*AppConfig, error) {
	// A missing .env is the normal case; a broken one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	fs := pflag.NewFlagSet("weather-fetch", pflag.ContinueOnError)
	fs.StringP("location", "l", "", "OpenWeatherMap location (place name or postal code)")
	fs.StringP("apikey", "k", "", "OpenWeatherMap API key")
	fs.BoolP("classic-icons", "c", false, "use OpenWeatherMap's own icons")
	fs.BoolP("metric", "m", false, "use metric units")
	fs.BoolP("debug", "d", false, "print the raw provider response")
	fs.Duration("timeout", 15*time.Second, "timeout for each HTTP request")
	fs.String("metrics-file", "", "write textfile metrics to this path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	base := filepath.Join(home, ".local", "share", "weather")

	v := viper.New()
	v.SetEnvPrefix("WEATHER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("icon-dir", filepath.Join(base, "icons"))
	v.SetDefault("data-dir", filepath.Join(base, "data"))
	v.SetDefault("log-format", "text")
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	s := settings{
		Location:    v.GetString("location"),
		APIKey:      v.GetString("apikey"),
		Units:       string(weather.Imperial),
		IconStyle:   string(icons.StyleAlternate),
		IconDir:     v.GetString("icon-dir"),
		DataDir:     v.GetString("data-dir"),
		HTTPTimeout: v.GetDuration("timeout"),
		LogFormat:   v.GetString("log-format"),
	}

	// data.json advertises the icon path, so both directories are absolute.
	for _, dir := range []*string{&s.IconDir, &s.DataDir} {
		if *dir == "" {
			continue
		}
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", *dir, err)
		}
		*dir = abs
	}

	if v.GetBool("metric") {
		s.Units = string(weather.Metric)
	}
	if v.GetBool("classic-icons") {
		s.IconStyle = string(icons.StyleClassic)
	}

	if err := check(s); err != nil {
		return nil, err
	}

	return &AppConfig{
		Weather: weather.Options{
			Location:  s.Location,
			APIKey:    s.APIKey,
			Units:     weather.Units(s.Units),
			IconStyle: icons.Style(s.IconStyle),
			Debug:     v.GetBool("debug"),
			IconDir:   s.IconDir,
			DataDir:   s.DataDir,
		},
		HTTPTimeout: s.HTTPTimeout,
		MetricsFile: v.GetString("metrics-file"),
		LogFormat:   s.LogFormat,
	}, nil
}

// check validates s, turning a missing location or key into
// weather.ErrConfigMissing with a directive message.
func check(s settings) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.Field()] = true
	}
	if failed["APIKey"] {
		return fmt.Errorf("%w: Provide OpenWeatherMap APIKEY with -k or --apikey", weather.ErrConfigMissing)
	}
	if failed["Location"] {
		return fmt.Errorf("%w: Provide OpenWeatherMap location with -l or --location", weather.ErrConfigMissing)
	}
	return fmt.Errorf("invalid configuration: %w", err)
}

// Bootstrap creates the icon and data directories if they are missing.
func (c *AppConfig) Bootstrap() error {
	for _, dir := range []string{c.Weather.IconDir, c.Weather.DataDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
