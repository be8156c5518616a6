package icons

import (
	"errors"
	"fmt"
)

// Style selects which icon set a reading is rendered with.
type Style string

const (
	// StyleClassic uses OpenWeatherMap's own PNG icons.
	StyleClassic Style = "classic"
	// StyleAlternate uses AccuWeather's SVG icon set.
	StyleAlternate Style = "alternate"
)

const (
	classicBaseURL   = "https://openweathermap.org/img/wn/"
	alternateBaseURL = "https://www.accuweather.com/assets/images/weather-icons/v2a/"
)

// ErrUnknownCode is returned when an alternate icon is requested for a
// provider code that has no entry in the table.
var ErrUnknownCode = errors.New("no alternate icon for provider code")

// alternateID maps an OpenWeatherMap icon code to its AccuWeather icon number.
func alternateID(code string) (string, bool) {
	switch code {
	case "01d": // clear sky
		return "1", true
	case "01n":
		return "33", true
	case "02d": // few clouds
		return "2", true
	case "02n":
		return "34", true
	case "03d": // scattered clouds
		return "3", true
	case "03n":
		return "35", true
	case "04d": // broken clouds
		return "4", true
	case "04n":
		return "36", true
	case "09d": // shower rain
		return "14", true
	case "09n":
		return "39", true
	case "10d": // rain
		return "13", true
	case "10n":
		return "40", true
	case "11d": // thunderstorm
		return "16", true
	case "11n":
		return "42", true
	case "13d": // snow
		return "23", true
	case "13n":
		return "44", true
	case "50d": // mist
		return "5", true
	case "50n":
		return "37", true
	}
	return "", false
}

// Icon identifies a cache entry and where to download it from.
type Icon struct {
	Name string
	URL  string
}

// Translate resolves a provider icon code to the file name and source URL
// for the given style. Alternate style has no fallback: an unknown code is
// an error.
func Translate(code string, style Style) (Icon, error) {
	switch style {
	case StyleClassic:
		name := code + "@2x.png"
		return Icon{Name: name, URL: classicBaseURL + name}, nil
	case StyleAlternate:
		id, ok := alternateID(code)
		if !ok {
			return Icon{}, fmt.Errorf("%w: %q", ErrUnknownCode, code)
		}
		name := id + ".svg"
		return Icon{Name: name, URL: alternateBaseURL + name}, nil
	default:
		return Icon{}, fmt.Errorf("unknown icon style %q", style)
	}
}
