package providers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/weather-fetch/internal/common"
)

var validate = validator.New()

// apiError is the body OpenWeatherMap sends with non-2xx responses. cod is a
// number on some endpoints and a string on others.
type apiError struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
}

// describeError turns a failed response into an error that carries the
// provider's own message when one was sent.
func describeError(err error) error {
	var se *common.StatusError
	if !errors.As(err, &se) {
		return err
	}

	var body apiError
	if json.Unmarshal(se.Body, &body) != nil || body.Message == "" {
		return err
	}
	return fmt.Errorf("%w: %d: %s", se.Unwrap(), se.StatusCode, body.Message)
}
