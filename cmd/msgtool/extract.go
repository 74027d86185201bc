package main

import (
	"context"

	"github.com/loopcontext/msgtool"
	"github.com/loopcontext/msgtool/internal/input"
	"github.com/spf13/cobra"
)

type extractOptions struct {
	generateID string
	locale     string
	filename   string
	outFile    string
	format     string
}

func newExtractCmd(a *app) *cobra.Command {
	var opts extractOptions
	c := &cobra.Command{
		Use:   "extract [files...]",
		Short: "Extract message patterns into a catalog",
		Long: `Extract collects message patterns from translator call sites in the
given files (or stdin when none are given) and writes them as a catalog
keyed by the generate-id strategy. Format values are passed through to
the extraction pipeline uninterpreted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd.Context(), args, opts)
		},
	}
	f := c.Flags()
	f.StringVarP(&opts.generateID, "generate-id", "g", a.defaults.GenerateID, "key derivation strategy (literal|normalized|underscored|underscored_crc32)")
	f.StringVarP(&opts.locale, "locale", "l", a.defaults.Locale, "locale tag the extracted patterns belong to")
	f.StringVarP(&opts.filename, "filename", "f", a.defaults.Filename, "virtual filename for stdin input")
	f.StringVarP(&opts.outFile, "out-file", "o", "", "write the catalog to this file instead of stdout")
	f.StringVar(&opts.format, "format", "", "catalog output format (yaml|es6|commonjs|json)")
	return c
}

func (a *app) runExtract(ctx context.Context, patterns []string, opts extractOptions) error {
	files, err := input.Resolve(patterns)
	if err != nil {
		return err
	}
	if errs := validateExtract(files); !errs.Empty() {
		return a.preflightFailure(errs)
	}
	units, err := input.CaptureIfEmpty(a.stdin, msgtool.FileUnits(files), opts.filename)
	if err != nil {
		return err
	}
	req := msgtool.ExtractRequest{
		Files:      units,
		GenerateID: opts.generateID,
		Locale:     opts.locale,
		OutFile:    opts.outFile,
		Format:     opts.format,
	}
	a.logger.Debug("dispatching extract", "files", len(units))
	return a.pipelines.Extractor.Extract(ctx, req)
}
