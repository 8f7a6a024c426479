package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
)

const defaultListLimit = 25

// ErrLiveLookupUnavailable is returned by resolve_symptoms when the server
// was started without a builder.
var ErrLiveLookupUnavailable = errors.New("mcp: live lookup is not available")

// LookupInput is the input schema for the lookup_symptoms tool.
type LookupInput struct {
	Disease string `json:"disease" jsonschema:"the exact disease name as stored in the lexicon"`
}

// LookupOutput is the output schema for the lookup_symptoms tool.
type LookupOutput struct {
	Disease  string `json:"disease"`
	Symptoms string `json:"symptoms,omitempty"`
	Found    bool   `json:"found"`
}

// ListInput is the input schema for the list_diseases tool.
type ListInput struct {
	Query string `json:"query,omitempty" jsonschema:"text to match against disease names and symptoms"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of entries to return (default 25)"`
}

// ListOutput is the output schema for the list_diseases tool.
type ListOutput struct {
	Entries []EntryOutput `json:"entries"`
	Count   int           `json:"count"`
}

// EntryOutput is one lexicon entry.
type EntryOutput struct {
	Disease  string `json:"disease"`
	Symptoms string `json:"symptoms"`
}

// ResolveInput is the input schema for the resolve_symptoms tool.
type ResolveInput struct {
	Disease string `json:"disease" jsonschema:"the disease to search the web for"`
}

// ResolveOutput is the output schema for the resolve_symptoms tool.
type ResolveOutput struct {
	Disease           string `json:"disease"`
	Symptoms          string `json:"symptoms,omitempty"`
	Source            string `json:"source,omitempty"`
	Found             bool   `json:"found"`
	CandidatesScanned int    `json:"candidates_scanned"`
	Status            string `json:"status"`
	Reason            string `json:"reason,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_symptoms",
		Description: "Return the symptoms recorded in the lexicon for a disease",
	}, s.handleLookup)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_diseases",
		Description: "List lexicon entries, optionally filtered by text",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_symptoms",
		Description: "Search the web for a disease and read symptoms from its encyclopedia infobox",
	}, s.handleResolve)
}

// handleLookup handles the lookup_symptoms tool invocation.
// An unknown disease is a normal answer, not an error.
func (s *Server) handleLookup(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	entry, err := s.ports.Catalogue.Get(ctx, input.Disease)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, LookupOutput{Disease: input.Disease}, nil
	}
	if err != nil {
		return nil, LookupOutput{}, err
	}

	return nil, LookupOutput{
		Disease:  entry.Disease,
		Symptoms: entry.Symptoms,
		Found:    true,
	}, nil
}

// handleList handles the list_diseases tool invocation.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	entries, err := s.ports.Catalogue.Search(ctx, input.Query, limit)
	if err != nil {
		return nil, ListOutput{}, err
	}

	output := ListOutput{
		Entries: make([]EntryOutput, len(entries)),
		Count:   len(entries),
	}
	for i, e := range entries {
		output.Entries[i] = EntryOutput{Disease: e.Disease, Symptoms: e.Symptoms}
	}

	return nil, output, nil
}

// handleResolve handles the resolve_symptoms tool invocation.
func (s *Server) handleResolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	if s.ports.Builder == nil {
		return nil, ResolveOutput{}, ErrLiveLookupUnavailable
	}

	res, err := s.ports.Builder.Lookup(ctx, input.Disease)
	if err != nil {
		return nil, ResolveOutput{}, err
	}

	return nil, ResolveOutput{
		Disease:           res.Disease,
		Symptoms:          res.Symptoms,
		Source:            res.Source,
		Found:             res.Found,
		CandidatesScanned: res.CandidatesScanned,
		Status:            string(res.Outcome.Status),
		Reason:            res.Outcome.Reason,
	}, nil
}
