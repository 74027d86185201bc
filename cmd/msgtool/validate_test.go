package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func existingFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "a.go")
	if err := os.WriteFile(path, []byte("package a\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateTransform_accumulatesIndependently(t *testing.T) {
	files := []string{"missing1.go", "missing2.go"}
	opts := transformOptions{missingTranslation: "bogus"}
	_, errs := validateTransform(files, opts)
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), errs)
	}
	// File errors come before option errors, in declaration order.
	if !strings.Contains(errs[0], "missing1.go") || !strings.Contains(errs[1], "missing2.go") {
		t.Errorf("file errors out of order: %v", errs)
	}
	if !strings.Contains(errs[2], "missing-translation") {
		t.Errorf("errs[2] = %q, want enum violation", errs[2])
	}
}

func TestValidateTransform_mutualExclusion(t *testing.T) {
	file := existingFile(t)
	opts := transformOptions{
		outFile:            "out.go",
		outDir:             "dist",
		missingTranslation: "error",
	}
	_, errs := validateTransform([]string{file}, opts)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0], "mutually exclusive") {
		t.Errorf("errs[0] = %q", errs[0])
	}
}

func TestValidateTransform_sourceMapsNeedTarget(t *testing.T) {
	file := existingFile(t)
	opts := transformOptions{
		sourceMaps:         true,
		missingTranslation: "error",
	}
	_, errs := validateTransform([]string{file}, opts)
	if len(errs) != 1 || !strings.Contains(errs[0], "--source-maps") {
		t.Fatalf("errs = %v", errs)
	}

	opts.outFile = "out.go"
	if _, errs := validateTransform([]string{file}, opts); !errs.Empty() {
		t.Errorf("out-file should satisfy --source-maps: %v", errs)
	}
}

func TestValidateTransform_outDirNeedsFiles(t *testing.T) {
	opts := transformOptions{
		outDir:             "dist",
		missingTranslation: "error",
	}
	_, errs := validateTransform(nil, opts)
	if len(errs) != 1 || !strings.Contains(errs[0], "--out-dir") {
		t.Fatalf("errs = %v", errs)
	}
}

func TestValidateTransform_loadsTranslations(t *testing.T) {
	file := existingFile(t)
	translations := filepath.Join(t.TempDir(), "es.json")
	if err := os.WriteFile(translations, []byte(`{"es":{"k":"v"}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	opts := transformOptions{
		translations:       translations,
		missingTranslation: "error",
	}
	catalog, errs := validateTransform([]string{file}, opts)
	if !errs.Empty() {
		t.Fatalf("errs = %v", errs)
	}
	if _, ok := catalog.Lookup("es", "k"); !ok {
		t.Error("catalog was not loaded into the options")
	}
}

func TestValidateLint(t *testing.T) {
	t.Run("missing_translations_file", func(t *testing.T) {
		_, errs := validateLint(nil, lintOptions{translations: "nope.json"})
		if len(errs) != 1 || !strings.Contains(errs[0], "doesn't exist") {
			t.Fatalf("errs = %v", errs)
		}
	})

	t.Run("malformed_translations", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, errs := validateLint(nil, lintOptions{translations: path})
		if len(errs) != 1 {
			t.Fatalf("errs = %v", errs)
		}
	})

	t.Run("clean", func(t *testing.T) {
		file := existingFile(t)
		_, errs := validateLint([]string{file}, lintOptions{})
		if !errs.Empty() {
			t.Errorf("errs = %v", errs)
		}
	})
}

func TestValidateExtract(t *testing.T) {
	errs := validateExtract([]string{"missing.go"})
	if len(errs) != 1 || !strings.Contains(errs[0], "doesn't exist") {
		t.Fatalf("errs = %v", errs)
	}
	if errs := validateExtract(nil); !errs.Empty() {
		t.Errorf("no files is not a validation error: %v", errs)
	}
}
