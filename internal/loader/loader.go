// Package loader reads a data file into the raw nested mapping the model
// parser consumes. The decoder is picked by extension; files with an
// unknown extension are sniffed, where a first non-whitespace '{' means
// JSON and anything else means YAML. JSON files may carry comments and
// trailing commas.
package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/conkygen/conkygen/internal/errors"
)

// LoadRaw reads and decodes the data file at path.
func LoadRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Data file not found: "+path,
				"Check the path, or run 'conkygen init' to create one")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot read data file: "+path,
			"Check file permissions")
	}
	return decode(path, data)
}

// Decode decodes already-read data as if it came from a file at path. The
// path only steers format selection.
func Decode(path string, data []byte) (map[string]any, error) {
	return decode(path, data)
}

func decode(path string, data []byte) (map[string]any, error) {
	var raw map[string]any
	if useJSON(path, data) {
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Invalid JSON in "+path,
				"Check the syntax; comments and trailing commas are allowed")
		}
		return raw, nil
	}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid YAML in "+path,
			"Check the YAML syntax in the data file")
	}
	return raw, nil
}

// useJSON picks the decoder: known extensions win, then the content sniff.
func useJSON(path string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return false
	case ".json", ".jsonc":
		return true
	}
	return strings.HasPrefix(strings.TrimSpace(string(data)), "{")
}
