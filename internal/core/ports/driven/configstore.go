package driven

// ConfigStore persists user overrides of the default configuration.
// Keys are dotted paths that mirror the TOML tables ("search.pause").
// Typed getters return the zero value when a key is absent or holds a
// different type.
type ConfigStore interface {
	// Get returns the raw value and whether key is present.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool

	// Keys returns every key present, sorted.
	Keys() []string

	// Set stores value under key and saves.
	Set(key string, value any) error

	// Unset removes key and saves. Removing an absent key is not an error.
	Unset(key string) error

	// Save writes the current overrides to storage.
	Save() error

	// Load replaces the in-memory overrides with what storage holds.
	Load() error

	// Path is where overrides are stored; in-memory stores report ":memory:".
	Path() string
}
