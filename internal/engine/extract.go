package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"go/token"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/loopcontext/msgtool"
	"gopkg.in/yaml.v2"
)

// Extractor is the bundled extract engine: it collects literal message
// patterns from translator call sites and writes them as a catalog.
type Extractor struct {
	log *log.Logger
	out io.Writer
}

// NewExtractor returns an Extractor writing to out when no out-file is
// requested.
func NewExtractor(logger *log.Logger, out io.Writer) *Extractor {
	return &Extractor{log: logger, out: out}
}

// Extract scans every source unit and emits the derived key to pattern
// mapping under the request's locale. The first occurrence of a key
// wins; later duplicates are ignored.
func (e *Extractor) Extract(ctx context.Context, req msgtool.ExtractRequest) error {
	scan := scanner{funcName: msgtool.DefaultFunctionName, auto: true}
	messages := map[string]string{}
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
			if !site.literal || site.pattern == "" {
				continue
			}
			key := DeriveKey(req.GenerateID, site.pattern)
			if _, seen := messages[key]; !seen {
				messages[key] = site.pattern
			}
		}
	}

	rendered, err := renderCatalog(req.Format, req.Locale, messages)
	if err != nil {
		return err
	}
	e.log.Debug("extract finished", "files", len(req.Files), "patterns", len(messages))
	if req.OutFile != "" {
		if err := os.WriteFile(req.OutFile, rendered, 0644); err != nil {
			return fmt.Errorf("write %s: %w", req.OutFile, err)
		}
		return nil
	}
	_, err = e.out.Write(rendered)
	return err
}

// renderCatalog serializes {locale: {key: pattern}} in the requested
// format. JSON is the default when no format was supplied.
func renderCatalog(format string, locale string, messages map[string]string) ([]byte, error) {
	catalog := map[string]map[string]string{locale: messages}
	switch format {
	case msgtool.FormatYAML:
		return yaml.Marshal(catalog)
	case msgtool.FormatES6, msgtool.FormatCommonJS:
		body, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return nil, err
		}
		prefix := "module.exports = "
		if format == msgtool.FormatES6 {
			prefix = "export default "
		}
		return []byte(prefix + string(body) + ";\n"), nil
	default:
		// Unknown formats reach the pipeline unvalidated; this one
		// treats everything else as JSON.
		body, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(body, '\n'), nil
	}
}
