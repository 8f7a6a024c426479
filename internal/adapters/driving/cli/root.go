// Package cli implements the symptomlex command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/symptomlex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driving"
	"github.com/custodia-labs/symptomlex/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services holds the driving ports the commands call into.
// Any field may be nil when the matching service could not be built.
type Services struct {
	Builder   driving.LexiconBuilder
	Catalogue driving.LexiconCatalogue
	Settings  driving.SettingsService
}

// ServiceFactory builds the services for the config file at configPath.
// An empty path selects the default location. A factory may return partial
// services together with an error; commands that only need the settings
// keep working so a broken configuration can be repaired.
type ServiceFactory func(configPath string) (*Services, error)

var (
	lexiconBuilder   driving.LexiconBuilder
	lexiconCatalogue driving.LexiconCatalogue
	settingsService  driving.SettingsService

	serviceFactory ServiceFactory
	servicesErr    error
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "symptomlex",
	Short: "Build a disease to symptom lexicon from public web pages",
	Long: `symptomlex harvests disease names from an alphabetical health directory,
merges them with a local archive, looks up each disease's symptoms in an
online encyclopedia and writes a de-duplicated disease to symptom lexicon.

The persisted lexicon can be inspected with show, browse and mcp serve.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.symptomlex/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress and debug output")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory registers how services are built once flags are parsed.
func SetServiceFactory(factory ServiceFactory) {
	serviceFactory = factory
}

// SetServices installs services directly, bypassing the factory.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	lexiconBuilder = s.Builder
	lexiconCatalogue = s.Catalogue
	settingsService = s.Settings
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, which is handed to every
// blocking service call.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if serviceFactory == nil {
		return nil
	}

	s, err := serviceFactory(configPath)
	servicesErr = err
	if s == nil && err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(s)
	return nil
}

func requireBuilder() (driving.LexiconBuilder, error) {
	if lexiconBuilder == nil {
		return nil, notConfigured("lexicon builder")
	}
	return lexiconBuilder, nil
}

func requireCatalogue() (driving.LexiconCatalogue, error) {
	if lexiconCatalogue == nil {
		return nil, notConfigured("lexicon catalogue")
	}
	return lexiconCatalogue, nil
}

func requireSettings() (driving.SettingsService, error) {
	if settingsService == nil {
		return nil, notConfigured("settings service")
	}
	return settingsService, nil
}

func notConfigured(what string) error {
	if servicesErr != nil {
		return fmt.Errorf("%s not configured: %w", what, servicesErr)
	}
	return errors.New(what + " not configured")
}

// outputStyles returns coloured styles when out is a terminal.
func outputStyles(cmd *cobra.Command) *styles.Styles {
	if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return styles.DefaultStyles()
	}
	return styles.PlainStyles()
}
