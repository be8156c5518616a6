package weather

// State is a step of a cycle. Terminal states end the cycle.
type State int

const (
	StateIdle State = iota
	StateConfigMissing
	StateFetchingReading
	StateReadingFailed
	StateTranslatingIcon
	StateIconLookupFailed
	StateCachingIcon
	StateIconFailed
	StatePersisting
	StatePersistFailed
	StateDone
)

var stateNames = [...]string{
	StateIdle:             "idle",
	StateConfigMissing:    "config_missing",
	StateFetchingReading:  "fetching_reading",
	StateReadingFailed:    "reading_failed",
	StateTranslatingIcon:  "translating_icon",
	StateIconLookupFailed: "icon_lookup_failed",
	StateCachingIcon:      "caching_icon",
	StateIconFailed:       "icon_failed",
	StatePersisting:       "persisting",
	StatePersistFailed:    "persist_failed",
	StateDone:             "done",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool {
	switch s {
	case StateConfigMissing, StateReadingFailed, StateIconLookupFailed,
		StateIconFailed, StatePersistFailed, StateDone:
		return true
	}
	return false
}

// States lists every state in declaration order.
func States() []State {
	out := make([]State, len(stateNames))
	for i := range stateNames {
		out[i] = State(i)
	}
	return out
}
