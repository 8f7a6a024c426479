// Command symptomlex builds and serves a disease to symptom lexicon.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/symptomlex/internal/adapters/driven/archive"
	"github.com/custodia-labs/symptomlex/internal/adapters/driven/config/file"
	"github.com/custodia-labs/symptomlex/internal/adapters/driven/storage"
	"github.com/custodia-labs/symptomlex/internal/adapters/driving/cli"
	"github.com/custodia-labs/symptomlex/internal/connectors/directory"
	"github.com/custodia-labs/symptomlex/internal/connectors/encyclopedia"
	"github.com/custodia-labs/symptomlex/internal/connectors/search/duckduckgo"
	"github.com/custodia-labs/symptomlex/internal/connectors/web"
	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/services"
	"github.com/custodia-labs/symptomlex/internal/normalisers/infobox"
	"github.com/custodia-labs/symptomlex/internal/pacing"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(newServices)

	if err := cli.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newServices wires every adapter from the configuration at configPath.
// When the configuration is invalid the settings service is still
// returned so it can be inspected and fixed from the command line.
func newServices(configPath string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settings := services.NewSettingsService(configStore)

	cfg, err := settings.Get()
	if err != nil {
		return &cli.Services{Settings: settings}, err
	}

	return &cli.Services{
		Builder:   newBuilder(cfg),
		Catalogue: services.NewCatalogueService(storage.NewOpener(), cfg.Paths.Output),
		Settings:  settings,
	}, nil
}

func newBuilder(cfg domain.Config) *services.LexiconService {
	client := web.NewClient(cfg.HTTP)

	harvester := directory.NewHarvester(
		client,
		pacing.ForRange(cfg.Directory.DelayMin, cfg.Directory.DelayMax),
		cfg.Directory,
	)

	resolver := services.NewSymptomResolver(
		duckduckgo.NewProvider(client, cfg.Search.Endpoint),
		encyclopedia.NewClient(client, cfg.Encyclopedia),
		infobox.New(),
		pacing.NewSteady(cfg.Search.Pause),
		cfg.Search,
	)

	return services.NewLexiconService(
		harvester,
		archive.New(),
		resolver,
		storage.NewOpener(),
		cfg.Paths,
	)
}
