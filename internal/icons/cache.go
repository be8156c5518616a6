package icons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-fetch/internal/common"
)

// Some icon CDNs reject Go's default client identifier.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"

// ErrInvalidName is returned for icon names that would resolve outside the
// cache directory.
var ErrInvalidName = errors.New("invalid icon file name")

// Cache keeps downloaded icons on disk. An icon file that exists is never
// fetched again.
type Cache struct {
	client *http.Client
	log    *logrus.Logger
}

// NewCache creates a Cache that downloads through client.
func NewCache(client *http.Client, log *logrus.Logger) *Cache {
	return &Cache{client: client, log: log}
}

// Ensure returns the local path of name inside dir, downloading it from
// sourceURL first if it is not there yet. A failed download leaves no file.
func (c *Cache) Ensure(ctx context.Context, name, sourceURL, dir string) (string, error) {
	// name is derived from the provider response and must stay inside dir.
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	path := filepath.Join(dir, name)
	c.log.Infof("Checking for icon %s", path)

	_, err := os.Stat(path)
	if err == nil {
		c.log.WithField("icon", path).Debug("icon cache hit")
		return path, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat icon: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"icon": path,
		"url":  sourceURL,
	}).Debug("icon cache miss, downloading")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := common.Do(c.client, req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", sourceURL, err)
	}
	defer resp.Body.Close()

	err = common.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		_, err := io.Copy(w, resp.Body)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("write icon: %w", err)
	}
	return path, nil
}
