package common

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrRateLimited      = errors.New("rate limited")
	ErrServerError      = errors.New("server error")
	ErrUnexpectedStatus = errors.New("unexpected status code")
	errNoHTTPClient     = errors.New("http client not configured")
)

// maxErrorBody caps how much of a failed response is kept for diagnostics.
const maxErrorBody = 4 << 10

// StatusError is returned by Do for any non-2xx response. Body holds the
// leading bytes of the response so callers can decode provider error payloads.
type StatusError struct {
	StatusCode int
	Body       []byte
	kind       error
}

func (e *StatusError) Error() string {
	msg := strings.TrimSpace(string(e.Body))
	if msg == "" {
		return fmt.Sprintf("%v: %d", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%v: %d: %s", e.kind, e.StatusCode, msg)
}

func (e *StatusError) Unwrap() error { return e.kind }

// Do executes req and returns the response only when the status is 2xx.
// On any other status the body is drained and closed and a *StatusError is
// returned. The caller owns the body of a successful response.
func Do(client *http.Client, req *http.Request) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	// Handle rate limiting and server errors explicitly.
	kind := ErrUnexpectedStatus
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		kind = ErrRateLimited
	case resp.StatusCode >= 500:
		kind = ErrServerError
	}

	return nil, &StatusError{StatusCode: resp.StatusCode, Body: body, kind: kind}
}
