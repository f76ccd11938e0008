package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"go.verdant.dev/verdant/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// ReadFile parses one dataset file. The extension selects the parser:
// .json, .yaml or .yml. No schema is enforced; the caller receives
// whatever mapping, sequence or scalar the file contains.
//
// A missing file is domain.ErrFileNotFound; undecodable content is
// domain.ErrParse carrying the parser message and the offending path.
func ReadFile(path string) (domain.Value, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Paths come from the configured search directories
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(zerr.Wrap(domain.ErrFileNotFound, "dataset file does not exist"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read dataset file"), "path", path)
	}

	var value any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &value); err != nil {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrParse, err.Error()), "path", path), "format", "yaml")
		}
		// An empty YAML document decodes to nil; treat it as an empty
		// dataset rather than a missing one.
		if value == nil {
			value = map[string]any{}
		}
	case ".json":
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrParse, err.Error()), "path", path), "format", "json")
		}
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "no parser for extension"), "path", path)
	}

	return value, nil
}
