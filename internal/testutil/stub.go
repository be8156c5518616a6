// Package testutil serves fake remote endpoints in-process for tests.
package testutil

import (
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// Stub routes every outbound request of its Client to a Fiber app, whatever
// the request host, and counts hits per path.
type Stub struct {
	App *fiber.App

	mu   sync.Mutex
	hits map[string]int
}

// NewStub returns a Stub with an empty Fiber app ready for route registration.
func NewStub() *Stub {
	s := &Stub{
		// Immutable so handlers may keep query and header values for assertions.
		App:  fiber.New(fiber.Config{DisableStartupMessage: true, Immutable: true}),
		hits: make(map[string]int),
	}
	s.App.Use(func(c *fiber.Ctx) error {
		s.mu.Lock()
		s.hits[c.Path()]++
		s.mu.Unlock()
		return c.Next()
	})
	return s
}

// Client returns an http.Client whose transport is the Fiber app.
func (s *Stub) Client() *http.Client {
	return &http.Client{Transport: roundTripper{app: s.App}}
}

// Hits returns how many requests reached path.
func (s *Stub) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// Total returns the number of requests across all paths.
func (s *Stub) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, v := range s.hits {
		n += v
	}
	return n
}

type roundTripper struct {
	app *fiber.App
}

func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// -1 disables the app.Test timeout; the client's own timeout still applies.
	return rt.app.Test(req, -1)
}
