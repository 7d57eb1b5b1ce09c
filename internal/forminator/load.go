package forminator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/forminator-backfill/internal/common"
)

// LoadFile reads a batch of entries from path. The format follows the file
// extension: .json holds a JSON array of entries, .yaml/.yml a YAML sequence.
// An empty batch is an error; generating nothing is never what the operator
// meant.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	var entries []Entry
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		entries, err = ParseJSON(data)
	case ".yaml", ".yml":
		entries, err = ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	if len(entries) == 0 {
		return nil, common.ErrNoEntries
	}
	return entries, nil
}

// ParseJSON parses a JSON array of entries.
func ParseJSON(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ParseYAML parses a YAML sequence of entries.
func ParseYAML(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
