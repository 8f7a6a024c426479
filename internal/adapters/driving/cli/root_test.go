package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/symptomlex/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driving"
	"github.com/custodia-labs/symptomlex/internal/core/services"
	"github.com/custodia-labs/symptomlex/internal/logger"
)

// fakeBuilder is a scripted driving.LexiconBuilder.
type fakeBuilder struct {
	result     *domain.BuildResult
	names      domain.NameCollection
	report     domain.BuildReport
	resolution domain.Resolution
	err        error
	exportErr  error

	lastOpts   driving.BuildOptions
	exportPath string
	exported   domain.NameCollection
}

func (f *fakeBuilder) Build(_ context.Context, opts driving.BuildOptions) (*domain.BuildResult, error) {
	f.lastOpts = opts
	return f.result, f.err
}

func (f *fakeBuilder) Names(
	_ context.Context,
	opts driving.BuildOptions,
) (domain.NameCollection, domain.BuildReport, error) {
	f.lastOpts = opts
	return f.names, f.report, f.err
}

func (f *fakeBuilder) ExportNames(_ context.Context, path string, names domain.NameCollection) error {
	f.exportPath, f.exported = path, names
	return f.exportErr
}

func (f *fakeBuilder) Lookup(_ context.Context, _ string) (domain.Resolution, error) {
	return f.resolution, f.err
}

// fakeCatalogue is an in-memory driving.LexiconCatalogue.
type fakeCatalogue struct {
	entries []domain.SymptomEntry
	runs    []domain.RunSummary
	err     error
}

func (f *fakeCatalogue) List(_ context.Context) ([]domain.SymptomEntry, error) {
	return f.entries, f.err
}

func (f *fakeCatalogue) Get(_ context.Context, disease string) (*domain.SymptomEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.entries {
		if e.Disease == disease {
			entry := e
			return &entry, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalogue) Search(_ context.Context, text string, limit int) ([]domain.SymptomEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return services.FilterEntries(f.entries, text, limit), nil
}

func (f *fakeCatalogue) Runs(_ context.Context, _ int) ([]domain.RunSummary, error) {
	return f.runs, f.err
}

type testServices struct {
	builder   *fakeBuilder
	catalogue *fakeCatalogue
	settings  *services.SettingsService
}

// setupTestServices installs fakes and resets flag state between runs.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	ts := &testServices{
		builder: &fakeBuilder{},
		catalogue: &fakeCatalogue{entries: []domain.SymptomEntry{
			{Disease: "Influenza", Symptoms: "Fever, cough"},
			{Disease: "Mumps", Symptoms: "Swollen salivary glands"},
		}},
		settings: services.NewSettingsService(memory.NewConfigStore(nil)),
	}
	SetServices(&Services{Builder: ts.builder, Catalogue: ts.catalogue, Settings: ts.settings})

	resetFlags()
	logger.SetOutput(new(bytes.Buffer))

	t.Cleanup(func() {
		SetServices(nil)
		SetServiceFactory(nil)
		servicesErr = nil
		resetFlags()
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
	})
	return ts
}

func resetFlags() {
	configPath, verbose = "", false
	buildArchive, buildOutput = "", ""
	namesArchive, namesExport, namesQuiet = "", "", false
	showSearch, showLimit, showJSON, showRuns = "", 0, false, false
}

// execute runs the root command with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "symptomlex", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	cfg := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, cfg)
	assert.Equal(t, "", cfg.DefValue)

	v := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Shorthand)
}

func TestRootCmd_FactoryReceivesConfigPath(t *testing.T) {
	setupTestServices(t)

	var got string
	SetServiceFactory(func(path string) (*Services, error) {
		got = path
		return &Services{Settings: services.NewSettingsService(memory.NewConfigStore(nil))}, nil
	})

	out, err := execute(t, "--config", "/tmp/custom.toml", "config", "path")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.toml", got)
	assert.Contains(t, out, ":memory:")
}

func TestRootCmd_VerboseFlagEnablesLogger(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "-v", "config", "path")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestRootCmd_FactoryErrorWithoutServices(t *testing.T) {
	setupTestServices(t)
	SetServiceFactory(func(string) (*Services, error) {
		return nil, errors.New("no home directory")
	})

	_, err := execute(t, "config", "path")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no home directory")
}

func TestRootCmd_PartialServicesKeepSettingsUsable(t *testing.T) {
	setupTestServices(t)
	SetServiceFactory(func(string) (*Services, error) {
		return &Services{Settings: services.NewSettingsService(memory.NewConfigStore(nil))},
			domain.ErrInvalidConfig
	})

	_, err := execute(t, "config", "path")
	require.NoError(t, err)

	_, err = execute(t, "build")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "lexicon builder not configured")
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}
