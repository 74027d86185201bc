package engine

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/loopcontext/msgtool"
)

// Transformer is the bundled transform engine. Without --inline it
// rewrites translator calls to the keyed two-argument form
// formatMessage(id, pattern, ...); with it, pattern literals are
// replaced by their catalog translations.
type Transformer struct {
	log *log.Logger
	out io.Writer
}

// NewTransformer returns a Transformer writing to out when no out-file
// or out-dir is requested.
func NewTransformer(logger *log.Logger, out io.Writer) *Transformer {
	return &Transformer{log: logger, out: out}
}

// Transform rewrites every source unit and writes the result to the
// requested target. Source map flags are accepted but this engine does
// not produce maps.
func (t *Transformer) Transform(ctx context.Context, req msgtool.TransformRequest) error {
	if req.SourceMaps || req.SourceMapsInline {
		t.log.Debug("source maps are not produced by the bundled transformer")
	}
	scan := scanner{funcName: msgtool.DefaultFunctionName, auto: true}
	var combined bytes.Buffer
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
			if !site.literal {
				continue
			}
			if err := t.rewrite(site, req); err != nil {
				return err
			}
		}
		var rendered bytes.Buffer
		if err := format.Node(&rendered, fset, file); err != nil {
			return fmt.Errorf("render %s: %w", unit.Name(), err)
		}
		switch {
		case req.OutDir != "":
			if err := writeUnderDir(req.OutDir, req.Root, unit.Path, rendered.Bytes()); err != nil {
				return err
			}
		case req.OutFile != "":
			combined.Write(rendered.Bytes())
		default:
			if _, err := t.out.Write(rendered.Bytes()); err != nil {
				return err
			}
		}
	}
	if req.OutFile != "" {
		if err := os.WriteFile(req.OutFile, combined.Bytes(), 0644); err != nil {
			return fmt.Errorf("write %s: %w", req.OutFile, err)
		}
	}
	t.log.Debug("transform finished", "files", len(req.Files), "inline", req.Inline)
	return nil
}

func (t *Transformer) rewrite(site callSite, req msgtool.TransformRequest) error {
	key := DeriveKey(req.GenerateID, site.pattern)
	if !req.Inline {
		site.call.Args = append([]ast.Expr{stringLit(key)}, site.call.Args...)
		return nil
	}
	translation, ok := req.Translations.Lookup(req.Locale, key)
	if !ok {
		switch req.MissingBehavior {
		case msgtool.MissingError:
			return fmt.Errorf("missing %s translation for key %q (pattern %q)", req.Locale, key, site.pattern)
		case msgtool.MissingWarning:
			t.log.Warn("missing translation", "locale", req.Locale, "key", key)
		}
		translation = site.pattern
		if req.MissingReplacement != "" {
			translation = req.MissingReplacement
		}
	}
	site.call.Args[0] = stringLit(translation)
	return nil
}

func stringLit(value string) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(value)}
}

// writeUnderDir mirrors the source path below root into outDir. Paths
// outside root fall back to their base name.
func writeUnderDir(outDir string, root string, srcPath string, content []byte) error {
	rel, err := filepath.Rel(root, srcPath)
	if err != nil || rel == "" || rel == "." || filepath.IsAbs(rel) || hasParentStep(rel) {
		rel = filepath.Base(srcPath)
	}
	target := filepath.Join(outDir, rel)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(target, content, 0644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

func hasParentStep(rel string) bool {
	return rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}
