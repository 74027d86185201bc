package msgtool

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCatalog_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "translations.json", `{"a":"b"}`)
	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	want := Catalog{"a": "b"}
	if !reflect.DeepEqual(catalog, want) {
		t.Errorf("catalog = %v, want %v", catalog, want)
	}
}

func TestLoadCatalog_invalidJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "translations.json", `{"a":`)
	_, err := LoadCatalog(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	// The report must carry the parser's own message verbatim.
	if err.Error() != parseErr.Err.Error() {
		t.Errorf("Error() = %q, want parser message %q", err.Error(), parseErr.Err.Error())
	}
	if err.Error() == "" {
		t.Error("parser message is empty")
	}
}

func TestLoadCatalog_missingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	_, err := LoadCatalog(path)
	var missing *MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want *MissingFileError", err)
	}
	if !strings.Contains(err.Error(), "doesn't exist") {
		t.Errorf("Error() = %q, want doesn't-exist form", err.Error())
	}
	if missing.Path != path {
		t.Errorf("Path = %q, want %q", missing.Path, path)
	}
}

func TestLoadCatalog_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "translations.yaml", "en:\n  greeting: Hello\nes:\n  greeting: Hola\n")
	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if got, ok := catalog.Lookup("es", "greeting"); !ok || got != "Hola" {
		t.Errorf("Lookup(es, greeting) = %q, %v", got, ok)
	}
}

func TestCatalog_Lookup(t *testing.T) {
	catalog := Catalog{
		"en":   map[string]interface{}{"hello": "Hello"},
		"flat": "Flat value",
	}
	tests := []struct {
		name   string
		locale string
		key    string
		want   string
		ok     bool
	}{
		{"locale_qualified", "en", "hello", "Hello", true},
		{"flat_fallback", "en", "flat", "Flat value", true},
		{"missing", "en", "nope", "", false},
		{"nil_safe", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := catalog
			if tt.name == "nil_safe" {
				c = nil
			}
			got, ok := c.Lookup(tt.locale, tt.key)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Lookup(%q, %q) = %q, %v, want %q, %v", tt.locale, tt.key, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if !errs.Empty() {
		t.Error("fresh list should be empty")
	}
	errs.Add("file %s doesn't exist", "a.go")
	errs.AddError(errors.New("unexpected end of JSON input"))
	if errs.Empty() {
		t.Error("list should not be empty")
	}
	want := "file a.go doesn't exist\nunexpected end of JSON input"
	if errs.Join() != want {
		t.Errorf("Join() = %q, want %q", errs.Join(), want)
	}
}
