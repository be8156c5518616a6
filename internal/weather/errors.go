package weather

import "errors"

// Each terminal failure of a cycle wraps exactly one of these.
var (
	ErrConfigMissing    = errors.New("configuration missing")
	ErrFetchFailed      = errors.New("fetch failed")
	ErrIconLookupFailed = errors.New("icon lookup failed")
	ErrIconFetchFailed  = errors.New("icon fetch failed")
	ErrPersistFailed    = errors.New("persist failed")
)
