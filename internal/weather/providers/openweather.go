package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-fetch/internal/common"
	"github.com/i474232898/weather-fetch/internal/weather"
)

const openWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// maxBody bounds how much of a response is decoded.
const maxBody = 1 << 20

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewOpenWeatherProvider(client *http.Client, log *logrus.Logger) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:    "openweathermap",
		baseURL: openWeatherURL,
		client:  client,
		log:     log,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// openWeatherPayload lists the fields a reading cannot do without. Pointers
// let "required" tell a missing field apart from a zero value.
type openWeatherPayload struct {
	Name *string `json:"name" validate:"required"`
	Main *struct {
		Temp *float64 `json:"temp" validate:"required"`
	} `json:"main" validate:"required"`
	Sys *struct {
		Country *string `json:"country" validate:"required"`
	} `json:"sys" validate:"required"`
	Weather []openWeatherCondition `json:"weather" validate:"required,min=1"`
}

// openWeatherCondition is one entry of the weather array. Only the first
// entry describes the reading; later entries may be sparse.
type openWeatherCondition struct {
	Icon        *string `json:"icon" validate:"required"`
	Main        *string `json:"main" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

func (p *OpenWeatherProvider) Fetch(ctx context.Context, location, apiKey string, units weather.Units) (weather.RawReading, error) {
	if apiKey == "" {
		return weather.RawReading{}, fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("q", location)
	values.Set("units", string(units))
	values.Set("appid", apiKey)

	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return weather.RawReading{}, err
	}

	resp, err := common.Do(p.client, req)
	if err != nil {
		return weather.RawReading{}, describeError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return weather.RawReading{}, fmt.Errorf("read response: %w", err)
	}
	p.log.WithField("response", string(body)).Debug("provider response")

	var payload openWeatherPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.RawReading{}, fmt.Errorf("decode response: %w", err)
	}
	if err := validate.Struct(payload); err != nil {
		return weather.RawReading{}, fmt.Errorf("incomplete response: %w", err)
	}
	cond := payload.Weather[0]
	if err := validate.Struct(cond); err != nil {
		return weather.RawReading{}, fmt.Errorf("incomplete response: weather[0]: %w", err)
	}

	return weather.RawReading{
		Place:       *payload.Name,
		Country:     *payload.Sys.Country,
		Temperature: *payload.Main.Temp,
		Condition:   *cond.Main,
		Description: *cond.Description,
		IconCode:    *cond.Icon,
	}, nil
}
