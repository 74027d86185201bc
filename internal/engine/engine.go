package engine

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/loopcontext/msgtool"
)

// Default assembles the bundled engines behind the pipeline interfaces.
func Default(logger *log.Logger, out io.Writer) msgtool.Pipelines {
	return msgtool.Pipelines{
		Linter:      NewLinter(logger, out),
		Extractor:   NewExtractor(logger, out),
		Transformer: NewTransformer(logger, out),
	}
}
