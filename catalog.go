package msgtool

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// Catalog maps message identifiers (or locale-qualified keys, depending
// on the pipeline) to translated pattern strings or nested mappings. It
// is loaded eagerly and lives for one invocation.
type Catalog map[string]interface{}

// MissingFileError reports a path that does not exist on disk.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("file %s doesn't exist", e.Path)
}

// ParseError reports a translation file whose contents could not be
// parsed. Error returns the parser's own message verbatim so validation
// reports carry it unmodified.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadCatalog reads and parses a translation file. JSON is the documented
// format; files named *.yaml or *.yml parse as YAML. Failures come back
// as *MissingFileError or *ParseError, never as raw parser faults.
func LoadCatalog(path string) (Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &MissingFileError{Path: path}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var raw map[interface{}]interface{}
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		return normalizeYamlMap(raw), nil
	default:
		var catalog Catalog
		if err := json.Unmarshal(content, &catalog); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		return catalog, nil
	}
}

// Lookup resolves key within the catalog, trying the locale-qualified
// nesting first and the flat form second. It returns the translated
// pattern string when one is present.
func (c Catalog) Lookup(locale string, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	if sub, ok := c[locale].(map[string]interface{}); ok {
		if s, ok := sub[key].(string); ok {
			return s, true
		}
	}
	if s, ok := c[key].(string); ok {
		return s, true
	}
	return "", false
}

// normalizeYamlMap rewrites yaml.v2's interface-keyed maps into
// string-keyed ones so YAML and JSON catalogs look identical downstream.
func normalizeYamlMap(raw map[interface{}]interface{}) Catalog {
	out := make(Catalog, len(raw))
	for k, v := range raw {
		out[fmt.Sprintf("%v", k)] = normalizeYamlValue(v)
	}
	return out
}

func normalizeYamlValue(v interface{}) interface{} {
	switch typed := v.(type) {
	case map[interface{}]interface{}:
		return map[string]interface{}(normalizeYamlMap(typed))
	case []interface{}:
		for i := range typed {
			typed[i] = normalizeYamlValue(typed[i])
		}
		return typed
	default:
		return v
	}
}
