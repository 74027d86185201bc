// Package msgtool is the orchestration core of the message-pattern
// tooling suite. It owns input resolution, option validation, translation
// catalog loading, and dispatch; the lint, extract, and transform engines
// plug in behind the pipeline interfaces declared here.
package msgtool

import "context"

//go:generate mockgen -source=$GOFILE -package mock_msgtool -destination=test/mock/$GOFILE

// Key derivation strategies understood by the pipelines. The orchestration
// layer passes these through; only the engines interpret them.
const (
	KeyLiteral          = "literal"
	KeyNormalized       = "normalized"
	KeyUnderscored      = "underscored"
	KeyUnderscoredCRC32 = "underscored_crc32"
)

// Catalog output formats for extract. Passed through unvalidated.
const (
	FormatYAML     = "yaml"
	FormatES6      = "es6"
	FormatCommonJS = "commonjs"
	FormatJSON     = "json"
)

// Documented option defaults. These are part of the observable contract
// of the CLI and may be overridden by config file or environment.
const (
	DefaultFunctionName = "formatMessage"
	DefaultKeyType      = KeyUnderscoredCRC32
	DefaultLocale       = "en"
	DefaultStdinName    = "stdin"
)

// MissingBehavior controls how a transform reacts to a pattern with no
// translation in the catalog.
type MissingBehavior string

const (
	MissingError   MissingBehavior = "error"
	MissingWarning MissingBehavior = "warning"
	MissingIgnore  MissingBehavior = "ignore"
)

// Valid reports whether b is one of the enumerated behaviors.
func (b MissingBehavior) Valid() bool {
	switch b {
	case MissingError, MissingWarning, MissingIgnore:
		return true
	}
	return false
}

// SourceUnit is one unit of pipeline input: a file path, or a synthetic
// buffer captured from stdin under a virtual name.
type SourceUnit struct {
	Path           string
	SourceCode     string
	SourceFileName string
}

// FileUnit returns a SourceUnit backed by a file on disk.
func FileUnit(path string) SourceUnit {
	return SourceUnit{Path: path}
}

// SyntheticUnit returns an in-memory SourceUnit carrying captured source
// text under a caller-supplied virtual filename.
func SyntheticUnit(code string, name string) SourceUnit {
	return SourceUnit{SourceCode: code, SourceFileName: name}
}

// Synthetic reports whether the unit was captured rather than read from disk.
func (u SourceUnit) Synthetic() bool {
	return u.Path == ""
}

// Name returns the unit's display name: the file path, or the virtual name.
func (u SourceUnit) Name() string {
	if u.Synthetic() {
		return u.SourceFileName
	}
	return u.Path
}

// FileUnits wraps resolved paths as SourceUnits, preserving order.
func FileUnits(paths []string) []SourceUnit {
	units := make([]SourceUnit, 0, len(paths))
	for _, p := range paths {
		units = append(units, FileUnit(p))
	}
	return units
}

// LintRequest is the normalized configuration handed to the lint pipeline.
// Every field is defined once validation has passed; Translations is the
// parsed catalog, never a path, and nil when no catalog was given.
type LintRequest struct {
	Files        []SourceUnit
	FunctionName string
	AutoDetect   bool
	KeyType      string
	Translations Catalog
}

// ExtractRequest is the normalized configuration handed to the extract
// pipeline. OutFile and Format are empty when not supplied.
type ExtractRequest struct {
	Files      []SourceUnit
	GenerateID string
	Locale     string
	OutFile    string
	Format     string
}

// TransformRequest is the normalized configuration handed to the transform
// pipeline. Root is always set (defaults to the working directory).
type TransformRequest struct {
	Files              []SourceUnit
	GenerateID         string
	Inline             bool
	Locale             string
	Translations       Catalog
	MissingBehavior    MissingBehavior
	MissingReplacement string
	SourceMaps         bool
	SourceMapsInline   bool
	OutFile            string
	OutDir             string
	Root               string
}

// Linter is the lint pipeline entry point.
type Linter interface {
	Lint(ctx context.Context, req LintRequest) error
}

// Extractor is the extract pipeline entry point.
type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) error
}

// Transformer is the transform pipeline entry point.
type Transformer interface {
	Transform(ctx context.Context, req TransformRequest) error
}

// Pipelines bundles the three engines a CLI invocation dispatches to.
type Pipelines struct {
	Linter      Linter
	Extractor   Extractor
	Transformer Transformer
}
