package mcp

import (
	"context"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driving"
	"github.com/custodia-labs/symptomlex/internal/core/services"
)

// mockCatalogue is a mock implementation of driving.LexiconCatalogue.
type mockCatalogue struct {
	entries   []domain.SymptomEntry
	runs      []domain.RunSummary
	err       error
	lastQuery string
	lastLimit int
}

func (m *mockCatalogue) List(_ context.Context) ([]domain.SymptomEntry, error) {
	return m.entries, m.err
}

func (m *mockCatalogue) Get(_ context.Context, disease string) (*domain.SymptomEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, e := range m.entries {
		if e.Disease == disease {
			entry := e
			return &entry, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalogue) Search(_ context.Context, text string, limit int) ([]domain.SymptomEntry, error) {
	m.lastQuery, m.lastLimit = text, limit
	if m.err != nil {
		return nil, m.err
	}
	return services.FilterEntries(m.entries, text, limit), nil
}

func (m *mockCatalogue) Runs(_ context.Context, limit int) ([]domain.RunSummary, error) {
	m.lastLimit = limit
	return m.runs, m.err
}

// mockBuilder is a mock implementation of driving.LexiconBuilder.
type mockBuilder struct {
	resolution domain.Resolution
	err        error
	looked     []string
}

func (m *mockBuilder) Build(_ context.Context, _ driving.BuildOptions) (*domain.BuildResult, error) {
	return nil, m.err
}

func (m *mockBuilder) Names(
	_ context.Context,
	_ driving.BuildOptions,
) (domain.NameCollection, domain.BuildReport, error) {
	return domain.NameCollection{}, domain.BuildReport{}, m.err
}

func (m *mockBuilder) ExportNames(_ context.Context, _ string, _ domain.NameCollection) error {
	return m.err
}

func (m *mockBuilder) Lookup(_ context.Context, disease string) (domain.Resolution, error) {
	m.looked = append(m.looked, disease)
	return m.resolution, m.err
}

func sampleEntries() []domain.SymptomEntry {
	return []domain.SymptomEntry{
		{Disease: "Influenza", Symptoms: "Fever, cough"},
		{Disease: "Mumps", Symptoms: "Swollen salivary glands, fever"},
		{Disease: "Tetanus", Symptoms: "Muscle spasms"},
	}
}
