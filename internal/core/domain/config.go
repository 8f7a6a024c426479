package domain

import (
	"fmt"
	"time"
)

// ResolutionPolicy names how the resolver chooses among candidate pages.
type ResolutionPolicy string

// ResolutionPolicyFirstMatch records the first candidate page that yields
// symptom text and stops. Candidates are never compared with each other.
const ResolutionPolicyFirstMatch ResolutionPolicy = "first_match"

// Default values mirror the constants the lexicon has always been built with.
const (
	DefaultDirectoryBaseURL   = "https://www.nhp.gov.in/disease-a-z/"
	DefaultAlphabet           = "abcdefghijklmnopqrstuvwxyz"
	DefaultContainerClass     = "all-disease"
	DefaultHarvestDelayMin    = 1 * time.Second
	DefaultHarvestDelayMax    = 3 * time.Second
	DefaultSearchEndpoint     = "https://html.duckduckgo.com/html/"
	DefaultSearchQualifier    = "wikipedia"
	DefaultSearchResultLimit  = 10
	DefaultSearchPause        = 1 * time.Second
	DefaultEncyclopediaDomain = "wikipedia.org"
	DefaultUserAgent          = "Mozilla/5.0 (compatible; symptomlex/1.0)"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultArchivePath        = "list_diseaseNames.json"
	DefaultOutputPath         = "final_dis_symp.json"
)

// DirectoryConfig configures the alphabetical disease directory harvest.
type DirectoryConfig struct {
	// BaseURL is prefixed to each letter to form a page address.
	BaseURL string

	// Alphabet lists the letters to visit, in order.
	Alphabet string

	// ContainerClass is the class token of the element holding the listing.
	ContainerClass string

	// DelayMin and DelayMax bound the random wait before each page request.
	DelayMin time.Duration
	DelayMax time.Duration
}

// SearchConfig configures the search provider queries.
type SearchConfig struct {
	// Endpoint is the search provider's HTML results address.
	Endpoint string

	// Qualifier is appended to each disease name to form the query.
	Qualifier string

	// ResultLimit bounds how many results are scanned per disease.
	ResultLimit int

	// Pause is the minimum interval between two search queries.
	Pause time.Duration

	// Policy selects among candidate pages.
	Policy ResolutionPolicy
}

// EncyclopediaConfig identifies encyclopedia pages among search results.
type EncyclopediaConfig struct {
	// Domain must appear in a result's host for it to be fetched.
	Domain string
}

// HTTPConfig configures the shared HTTP transport.
type HTTPConfig struct {
	UserAgent          string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// PathsConfig holds the local input and output locations.
type PathsConfig struct {
	Archive string
	Output  string
}

// Config is the complete set of build parameters.
// Every component receives the part it needs; nothing reads globals.
type Config struct {
	Directory    DirectoryConfig
	Search       SearchConfig
	Encyclopedia EncyclopediaConfig
	HTTP         HTTPConfig
	Paths        PathsConfig
}

// DefaultConfig returns the configuration the lexicon is normally built with.
func DefaultConfig() Config {
	return Config{
		Directory: DirectoryConfig{
			BaseURL:        DefaultDirectoryBaseURL,
			Alphabet:       DefaultAlphabet,
			ContainerClass: DefaultContainerClass,
			DelayMin:       DefaultHarvestDelayMin,
			DelayMax:       DefaultHarvestDelayMax,
		},
		Search: SearchConfig{
			Endpoint:    DefaultSearchEndpoint,
			Qualifier:   DefaultSearchQualifier,
			ResultLimit: DefaultSearchResultLimit,
			Pause:       DefaultSearchPause,
			Policy:      ResolutionPolicyFirstMatch,
		},
		Encyclopedia: EncyclopediaConfig{
			Domain: DefaultEncyclopediaDomain,
		},
		HTTP: HTTPConfig{
			UserAgent: DefaultUserAgent,
			Timeout:   DefaultRequestTimeout,
		},
		Paths: PathsConfig{
			Archive: DefaultArchivePath,
			Output:  DefaultOutputPath,
		},
	}
}

// Validate rejects configurations the pipeline cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Directory.BaseURL == "":
		return fmt.Errorf("%w: directory base URL is empty", ErrInvalidConfig)
	case c.Directory.DelayMin < 0 || c.Directory.DelayMax < 0:
		return fmt.Errorf("%w: harvest delays must not be negative", ErrInvalidConfig)
	case c.Directory.DelayMax < c.Directory.DelayMin:
		return fmt.Errorf("%w: harvest delay max %s is below min %s",
			ErrInvalidConfig, c.Directory.DelayMax, c.Directory.DelayMin)
	case c.Search.Endpoint == "":
		return fmt.Errorf("%w: search endpoint is empty", ErrInvalidConfig)
	case c.Search.ResultLimit <= 0:
		return fmt.Errorf("%w: search result limit must be positive", ErrInvalidConfig)
	case c.Search.Pause < 0:
		return fmt.Errorf("%w: search pause must not be negative", ErrInvalidConfig)
	case c.Search.Policy != ResolutionPolicyFirstMatch:
		return fmt.Errorf("%w: unknown resolution policy %q", ErrInvalidConfig, c.Search.Policy)
	case c.Encyclopedia.Domain == "":
		return fmt.Errorf("%w: encyclopedia domain is empty", ErrInvalidConfig)
	case c.HTTP.Timeout < 0:
		return fmt.Errorf("%w: HTTP timeout must not be negative", ErrInvalidConfig)
	case c.Paths.Output == "":
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	return nil
}

// Query builds the search query for a disease.
func (s SearchConfig) Query(disease string) string {
	if s.Qualifier == "" {
		return disease
	}
	return disease + " " + s.Qualifier
}
