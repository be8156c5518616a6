package weather

import (
	"context"
)

// Provider abstracts the remote current-weather source.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, location, apiKey string, units Units) (RawReading, error)
}

// IconCache guarantees an icon file exists locally and returns its path.
type IconCache interface {
	Ensure(ctx context.Context, name, sourceURL, dir string) (string, error)
}

// Store persists the normalized reading, replacing whatever was there.
type Store interface {
	Save(reading Reading, dataDir string) error
}
