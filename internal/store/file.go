package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/i474232898/weather-fetch/internal/common"
	"github.com/i474232898/weather-fetch/internal/weather"
)

// DataFile is the name of the file consumers read inside the data directory.
const DataFile = "data.json"

var (
	// ErrNotFound is returned when no data file has been written yet.
	ErrNotFound = errors.New("no weather data file")
	// ErrMalformed is returned when the data file lacks the members consumers need.
	ErrMalformed = errors.New("unexpected weather data")
)

// FileStore keeps the latest reading as a JSON file. Each Save fully
// replaces the previous content.
type FileStore struct{}

// NewFileStore creates a new FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Save writes reading to dataDir/data.json via a temp file and rename, so a
// concurrent reader never sees a half-written document.
func (s *FileStore) Save(reading weather.Reading, dataDir string) error {
	path := filepath.Join(dataDir, DataFile)
	return common.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(reading); err != nil {
			return fmt.Errorf("encode reading: %w", err)
		}
		return nil
	})
}

// Load reads back the data file the way a panel widget does: temp and icon
// must be present.
func Load(dataDir string) (weather.Reading, error) {
	path := filepath.Join(dataDir, DataFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return weather.Reading{}, ErrNotFound
		}
		return weather.Reading{}, err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return weather.Reading{}, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, key := range []string{"temp", "icon"} {
		if _, ok := members[key]; !ok {
			return weather.Reading{}, fmt.Errorf("%w in %s: missing %q", ErrMalformed, path, key)
		}
	}

	var reading weather.Reading
	if err := json.Unmarshal(data, &reading); err != nil {
		return weather.Reading{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return reading, nil
}
