package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
)

const (
	uriScheme = "symptomlex://"

	recentRunsLimit = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "lexicon",
		Name:        "lexicon",
		Description: "The complete disease to symptom lexicon",
		MIMEType:    "application/json",
	}, s.handleLexiconResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Summaries of recent lexicon builds",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "diseases/{name}",
		Name:        "disease-symptoms",
		Description: "Symptom text recorded for one disease",
		MIMEType:    "text/plain",
	}, s.handleDiseaseResource)
}

// handleLexiconResource returns every entry as a JSON object in saved order.
func (s *Server) handleLexiconResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.Catalogue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing lexicon: %w", err)
	}

	data, err := json.MarshalIndent(domain.SymptomRecordFromEntries(entries), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling lexicon: %w", err)
	}

	return jsonResult(req.Params.URI, data), nil
}

// handleRunsResource returns recent build summaries. Stores without a
// history yield an empty list.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	runs, err := s.ports.Catalogue.Runs(ctx, recentRunsLimit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	type runInfo struct {
		ID          string `json:"id"`
		StartedAt   string `json:"started_at"`
		FinishedAt  string `json:"finished_at,omitempty"`
		UniqueNames int    `json:"unique_names"`
		Resolved    int    `json:"resolved"`
		Kept        int    `json:"kept"`
		Failures    int    `json:"failures"`
	}

	infos := make([]runInfo, len(runs))
	for i, r := range runs {
		infos[i] = runInfo{
			ID:          r.ID,
			StartedAt:   r.StartedAt.UTC().Format("2006-01-02T15:04:05Z"),
			UniqueNames: r.UniqueNames,
			Resolved:    r.Resolved,
			Kept:        r.Kept,
			Failures:    r.Failures,
		}
		if !r.FinishedAt.IsZero() {
			infos[i].FinishedAt = r.FinishedAt.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling runs: %w", err)
	}

	return jsonResult(req.Params.URI, data), nil
}

// handleDiseaseResource returns the symptom text for one disease.
func (s *Server) handleDiseaseResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractDiseaseName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.Catalogue.Get(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting disease: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     entry.Symptoms,
		}},
	}, nil
}

func jsonResult(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}

// extractDiseaseName extracts the disease from a URI like
// symptomlex://diseases/{name}. The name may be percent-encoded.
func extractDiseaseName(uri string) string {
	const prefix = uriScheme + "diseases/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return name
}
