// Package mcp exposes the symptom lexicon over the Model Context Protocol,
// so assistants can look up diseases and their symptoms.
package mcp

import "errors"

// ErrMissingCatalogue is returned when the lexicon catalogue is not provided.
var ErrMissingCatalogue = errors.New("mcp: lexicon catalogue is required")
