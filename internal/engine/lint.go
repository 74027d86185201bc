package engine

import (
	"context"
	"fmt"
	"go/token"
	"io"

	"github.com/charmbracelet/log"
	"github.com/loopcontext/msgtool"
)

// Linter is the bundled lint engine. It scans translator call sites and
// reports patterns that cannot be analyzed statically, plus patterns
// with no entry in the supplied catalog.
type Linter struct {
	log *log.Logger
	out io.Writer
}

// NewLinter returns a Linter reporting findings to out.
func NewLinter(logger *log.Logger, out io.Writer) *Linter {
	return &Linter{log: logger, out: out}
}

// Lint runs the rules over every source unit and returns an error when
// any finding was reported, so the process exits non-zero.
func (l *Linter) Lint(ctx context.Context, req msgtool.LintRequest) error {
	scan := scanner{funcName: req.FunctionName, auto: req.AutoDetect}
	findings := 0
	for _, unit := range req.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		fset := token.NewFileSet()
		file, err := parseUnit(fset, unit)
		if err != nil {
			return err
		}
		for _, site := range scan.callSites(fset, file) {
			switch {
			case !site.literal:
				l.report(site.pos, "pattern is not a string literal")
				findings++
			case site.pattern == "":
				l.report(site.pos, "empty message pattern")
				findings++
			case req.Translations != nil:
				key := DeriveKey(req.KeyType, site.pattern)
				if !translationExists(req.Translations, key) {
					l.report(site.pos, fmt.Sprintf("no translation found for key %q", key))
					findings++
				}
			}
		}
	}
	l.log.Debug("lint finished", "files", len(req.Files), "findings", findings)
	if findings > 0 {
		return fmt.Errorf("%d lint finding(s)", findings)
	}
	return nil
}

func (l *Linter) report(pos token.Position, msg string) {
	fmt.Fprintf(l.out, "%s: %s\n", pos, msg)
}

// translationExists checks the flat form and every locale-qualified
// sub-mapping for key.
func translationExists(catalog msgtool.Catalog, key string) bool {
	if _, ok := catalog[key].(string); ok {
		return true
	}
	for _, v := range catalog {
		if sub, ok := v.(map[string]interface{}); ok {
			if _, ok := sub[key]; ok {
				return true
			}
		}
	}
	return false
}
