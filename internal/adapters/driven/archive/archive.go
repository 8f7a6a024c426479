// Package archive reads and writes local disease-name archives.
//
// The format follows the file extension: ".json" holds a JSON array of
// strings, ".toml" holds a top-level names array, and anything else is plain
// text with one name per line.
package archive

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
	"github.com/custodia-labs/symptomlex/internal/logger"
)

// Ensure Archive implements the interface.
var _ driven.NameArchive = (*Archive)(nil)

// Format identifies an archive encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatText Format = "text"
)

// FormatFor picks the archive format from the path's extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// tomlArchive is the document shape of a TOML archive.
type tomlArchive struct {
	Names []string `toml:"names"`
}

// Archive is a file-backed NameArchive.
type Archive struct{}

// New creates an archive adapter.
func New() *Archive {
	return &Archive{}
}

// Load reads the names stored at path.
// A missing file contributes no names and is reported as skipped. A file
// that cannot be decoded contributes no names and is reported as failed.
func (a *Archive) Load(_ context.Context, path string) ([]string, domain.ItemOutcome) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Archive %s not found, continuing without it", path)
			return []string{}, domain.Skipped(path, "archive not found")
		}
		logger.Error("Error loading disease archive %s: %v", path, err)
		return []string{}, domain.Failed(path, fmt.Errorf("read archive: %w", err))
	}

	raw, err := decode(FormatFor(path), data)
	if err != nil {
		err = fmt.Errorf("%w: %s: %v", domain.ErrArchiveFormat, path, err)
		logger.Error("Error loading disease archive: %v", err)
		return []string{}, domain.Failed(path, err)
	}

	names := make([]string, 0, len(raw))
	for _, r := range raw {
		if name, ok := domain.CleanName(r); ok {
			names = append(names, name)
		}
	}

	logger.Debug("Loaded %d names from %s", len(names), path)
	return names, domain.Succeeded(path, len(names), path)
}

// Save writes names to path in the format chosen by its extension,
// replacing any existing file.
func (a *Archive) Save(_ context.Context, path string, names []string) error {
	data, err := encode(FormatFor(path), names)
	if err != nil {
		return fmt.Errorf("encode archive: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create archive directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}
	return nil
}

func decode(format Format, data []byte) ([]string, error) {
	switch format {
	case FormatJSON:
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			return nil, err
		}
		return names, nil
	case FormatTOML:
		var doc tomlArchive
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return doc.Names, nil
	default:
		return decodeLines(data)
	}
}

// decodeLines reads one name per line, skipping blank lines and # comments.
func decodeLines(data []byte) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}

func encode(format Format, names []string) ([]byte, error) {
	if names == nil {
		names = []string{}
	}
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatTOML:
		return toml.Marshal(tomlArchive{Names: names})
	default:
		var buf bytes.Buffer
		for _, name := range names {
			buf.WriteString(name)
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	}
}
