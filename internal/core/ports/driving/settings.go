package driving

import "github.com/custodia-labs/symptomlex/internal/core/domain"

// SettingsService manages the build configuration.
type SettingsService interface {
	// Get returns the defaults overlaid with every stored override.
	// Returns domain.ErrInvalidConfig if an override cannot be used.
	Get() (domain.Config, error)

	// Set parses value for key, checks the resulting configuration and
	// persists the override.
	Set(key, value string) error

	// Unset drops the stored override for key so its default applies again.
	Unset(key string) error

	// Tables returns the effective configuration shaped like the config
	// file: one table per section, durations in Go syntax.
	Tables() (map[string]map[string]any, error)

	// Overrides lists the keys that differ from the defaults, sorted.
	Overrides() []string

	// GetDefaults returns the default configuration.
	GetDefaults() domain.Config

	// Path returns where overrides are stored.
	Path() string
}
