package weather

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-fetch/internal/icons"
)

// Service runs one fetch-normalize-cache-persist cycle.
type Service struct {
	provider Provider
	cache    IconCache
	store    Store
	out      io.Writer
	log      *logrus.Logger
}

// NewService creates a new Service. The summary line of a successful cycle is
// written to out.
func NewService(provider Provider, cache IconCache, store Store, out io.Writer, log *logrus.Logger) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		store:    store,
		out:      out,
		log:      log,
	}
}

// Result describes how a cycle ended.
type Result struct {
	State   State
	Summary string
	Reading Reading
	Raw     RawReading
}

// Run executes a single cycle. No step is retried. On failure the returned
// error wraps the sentinel matching Result.State together with its cause.
func (s *Service) Run(ctx context.Context, opts *Options) (Result, error) {
	res := Result{State: StateIdle}

	if opts == nil || opts.Location == "" || opts.APIKey == "" {
		s.enter(&res, StateConfigMissing)
		return res, fmt.Errorf("%w: location and api key are required", ErrConfigMissing)
	}

	s.log.Info("Retrieving weather information..")
	s.enter(&res, StateFetchingReading)
	raw, err := s.provider.Fetch(ctx, opts.Location, opts.APIKey, opts.Units)
	if err != nil {
		s.enter(&res, StateReadingFailed)
		return res, fmt.Errorf("%w: %s: %w", ErrFetchFailed, s.provider.Name(), err)
	}
	res.Raw = raw

	s.enter(&res, StateTranslatingIcon)
	icon, err := icons.Translate(raw.IconCode, opts.IconStyle)
	if err != nil {
		s.enter(&res, StateIconLookupFailed)
		return res, fmt.Errorf("%w: %w", ErrIconLookupFailed, err)
	}

	s.enter(&res, StateCachingIcon)
	iconPath, err := s.cache.Ensure(ctx, icon.Name, icon.URL, opts.IconDir)
	if err != nil {
		s.enter(&res, StateIconFailed)
		return res, fmt.Errorf("%w: %w", ErrIconFetchFailed, err)
	}

	reading := Reading{
		Temp:       FormatTemperature(raw.Temperature, opts.Units),
		Conditions: raw.Condition,
		Icon:       iconPath,
	}

	s.enter(&res, StatePersisting)
	if err := s.store.Save(reading, opts.DataDir); err != nil {
		s.enter(&res, StatePersistFailed)
		return res, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	res.Reading = reading
	res.Summary = raw.Summary(opts.Units)
	s.enter(&res, StateDone)

	if _, err := fmt.Fprintln(s.out, res.Summary); err != nil {
		s.log.WithError(err).Warn("could not write summary")
	}
	return res, nil
}

func (s *Service) enter(res *Result, next State) {
	s.log.WithFields(logrus.Fields{
		"from": res.State.String(),
		"to":   next.String(),
	}).Debug("state transition")
	res.State = next
}
