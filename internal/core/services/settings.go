package services

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyDirectoryBaseURL        = "directory.base_url"
	KeyDirectoryAlphabet       = "directory.alphabet"
	KeyDirectoryContainerClass = "directory.container_class"
	KeyDirectoryDelayMin       = "directory.delay_min"
	KeyDirectoryDelayMax       = "directory.delay_max"
	KeySearchEndpoint          = "search.endpoint"
	KeySearchQualifier         = "search.qualifier"
	KeySearchResultLimit       = "search.result_limit"
	KeySearchPause             = "search.pause"
	KeyEncyclopediaDomain      = "encyclopedia.domain"
	KeyHTTPUserAgent           = "http.user_agent"
	KeyHTTPTimeout             = "http.timeout"
	KeyHTTPInsecureSkipVerify  = "http.insecure_skip_verify"
	KeyPathsArchive            = "paths.archive"
	KeyPathsOutput             = "paths.output"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindBool
	kindDuration
)

// setting binds a config key to the field it overrides.
type setting struct {
	key   string
	kind  valueKind
	field func(*domain.Config) any
}

var settings = []setting{
	{KeyDirectoryBaseURL, kindString, func(c *domain.Config) any { return &c.Directory.BaseURL }},
	{KeyDirectoryAlphabet, kindString, func(c *domain.Config) any { return &c.Directory.Alphabet }},
	{KeyDirectoryContainerClass, kindString, func(c *domain.Config) any { return &c.Directory.ContainerClass }},
	{KeyDirectoryDelayMin, kindDuration, func(c *domain.Config) any { return &c.Directory.DelayMin }},
	{KeyDirectoryDelayMax, kindDuration, func(c *domain.Config) any { return &c.Directory.DelayMax }},
	{KeySearchEndpoint, kindString, func(c *domain.Config) any { return &c.Search.Endpoint }},
	{KeySearchQualifier, kindString, func(c *domain.Config) any { return &c.Search.Qualifier }},
	{KeySearchResultLimit, kindInt, func(c *domain.Config) any { return &c.Search.ResultLimit }},
	{KeySearchPause, kindDuration, func(c *domain.Config) any { return &c.Search.Pause }},
	{KeyEncyclopediaDomain, kindString, func(c *domain.Config) any { return &c.Encyclopedia.Domain }},
	{KeyHTTPUserAgent, kindString, func(c *domain.Config) any { return &c.HTTP.UserAgent }},
	{KeyHTTPTimeout, kindDuration, func(c *domain.Config) any { return &c.HTTP.Timeout }},
	{KeyHTTPInsecureSkipVerify, kindBool, func(c *domain.Config) any { return &c.HTTP.InsecureSkipVerify }},
	{KeyPathsArchive, kindString, func(c *domain.Config) any { return &c.Paths.Archive }},
	{KeyPathsOutput, kindString, func(c *domain.Config) any { return &c.Paths.Output }},
}

// ConfigKeys returns every recognised key in table order.
func ConfigKeys() []string {
	keys := make([]string, len(settings))
	for i, s := range settings {
		keys[i] = s.key
	}
	return keys
}

func lookupSetting(key string) (setting, bool) {
	for _, s := range settings {
		if s.key == key {
			return s, true
		}
	}
	return setting{}, false
}

// SettingsService manages the build configuration.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the defaults overlaid with every stored override.
func (s *SettingsService) Get() (domain.Config, error) {
	cfg := domain.DefaultConfig()

	var errs []error
	for _, st := range settings {
		val, ok := s.configStore.Get(st.key)
		if !ok {
			continue
		}
		if err := assign(st, st.field(&cfg), val); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return cfg, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, errors.Join(errs...))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Set parses value for key, checks the resulting configuration and
// persists the override.
func (s *SettingsService) Set(key, value string) error {
	st, ok := lookupSetting(key)
	if !ok {
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidConfig, key)
	}

	parsed, err := parse(st, value)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	cfg, err := s.Get()
	if err != nil {
		return err
	}
	if err := assign(st, st.field(&cfg), parsed); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Unset removes the override for a known key.
func (s *SettingsService) Unset(key string) error {
	if _, ok := lookupSetting(key); !ok {
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidConfig, key)
	}
	if err := s.configStore.Unset(key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Tables returns the effective configuration as config file tables.
func (s *SettingsService) Tables() (map[string]map[string]any, error) {
	cfg, err := s.Get()
	if err != nil {
		return nil, err
	}
	return ConfigTables(cfg), nil
}

// Overrides lists the recognised keys present in the store, sorted.
func (s *SettingsService) Overrides() []string {
	var keys []string
	for _, key := range s.configStore.Keys() {
		if _, ok := lookupSetting(key); ok {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

// GetDefaults returns the default configuration.
func (s *SettingsService) GetDefaults() domain.Config {
	return domain.DefaultConfig()
}

// Path returns where overrides are stored.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// ConfigTables renders cfg as TOML-shaped tables keyed like the
// configuration file. Durations are written in Go syntax.
func ConfigTables(cfg domain.Config) map[string]map[string]any {
	tables := make(map[string]map[string]any)
	for _, st := range settings {
		table, name, _ := strings.Cut(st.key, ".")
		if tables[table] == nil {
			tables[table] = make(map[string]any)
		}
		switch v := st.field(&cfg).(type) {
		case *string:
			tables[table][name] = *v
		case *int:
			tables[table][name] = *v
		case *bool:
			tables[table][name] = *v
		case *time.Duration:
			tables[table][name] = v.String()
		}
	}
	return tables
}

// parse converts command-line text into the stored representation.
// Durations are stored as text so the file stays readable.
func parse(st setting, value string) (any, error) {
	switch st.kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an integer", st.key, value)
		}
		return n, nil
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a boolean", st.key, value)
		}
		return b, nil
	case kindDuration:
		if _, err := time.ParseDuration(value); err != nil {
			return nil, fmt.Errorf("%s: %q is not a duration", st.key, value)
		}
		return value, nil
	default:
		return value, nil
	}
}

// assign writes a stored value into field, converting TOML types.
func assign(st setting, field any, val any) error {
	switch dst := field.(type) {
	case *string:
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("%s: expected a string, got %T", st.key, val)
		}
		*dst = str
	case *int:
		switch n := val.(type) {
		case int:
			*dst = n
		case int64:
			*dst = int(n)
		default:
			return fmt.Errorf("%s: expected an integer, got %T", st.key, val)
		}
	case *bool:
		b, ok := val.(bool)
		if !ok {
			return fmt.Errorf("%s: expected a boolean, got %T", st.key, val)
		}
		*dst = b
	case *time.Duration:
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("%s: expected a duration string, got %T", st.key, val)
		}
		d, err := time.ParseDuration(str)
		if err != nil {
			return fmt.Errorf("%s: %w", st.key, err)
		}
		*dst = d
	}
	return nil
}
