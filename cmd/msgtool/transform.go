package main

import (
	"context"
	"fmt"
	"os"

	"github.com/loopcontext/msgtool"
	"github.com/loopcontext/msgtool/internal/input"
	"github.com/spf13/cobra"
)

type transformOptions struct {
	generateID         string
	inline             bool
	locale             string
	translations       string
	missingTranslation string
	missingReplacement string
	sourceMapsInline   bool
	sourceMaps         bool
	filename           string
	outFile            string
	outDir             string
	root               string
}

func newTransformCmd(a *app) *cobra.Command {
	var opts transformOptions
	c := &cobra.Command{
		Use:   "transform [files...]",
		Short: "Transform message-pattern call sites",
		Long: `Transform rewrites translator call sites in the given files (or stdin
when none are given), either generating explicit message ids or, with
--inline, replacing patterns with their translations from the catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTransform(cmd.Context(), args, opts)
		},
	}
	f := c.Flags()
	f.StringVarP(&opts.generateID, "generate-id", "g", a.defaults.GenerateID, "key derivation strategy (literal|normalized|underscored|underscored_crc32)")
	f.BoolVarP(&opts.inline, "inline", "i", false, "inline translations instead of generating ids")
	f.StringVarP(&opts.locale, "locale", "l", a.defaults.Locale, "locale to inline translations for")
	f.StringVarP(&opts.translations, "translations", "t", "", "path to the translations file")
	f.StringVarP(&opts.missingTranslation, "missing-translation", "e", string(msgtool.MissingError), "behavior for missing translations (error|warning|ignore)")
	f.StringVarP(&opts.missingReplacement, "missing-replacement", "m", "", "replacement pattern for missing translations")
	f.BoolVar(&opts.sourceMapsInline, "source-maps-inline", false, "append inline source maps to the output")
	f.BoolVarP(&opts.sourceMaps, "source-maps", "s", false, "save source maps next to the output")
	f.StringVarP(&opts.filename, "filename", "f", a.defaults.Filename, "virtual filename for stdin input")
	f.StringVarP(&opts.outFile, "out-file", "o", "", "write transformed output to this file")
	f.StringVarP(&opts.outDir, "out-dir", "d", "", "write transformed files under this directory")
	f.StringVarP(&opts.root, "root", "r", "", "root path stripped from inputs below --out-dir (default: working directory)")
	return c
}

func (a *app) runTransform(ctx context.Context, patterns []string, opts transformOptions) error {
	files, err := input.Resolve(patterns)
	if err != nil {
		return err
	}
	catalog, errs := validateTransform(files, opts)
	if !errs.Empty() {
		return a.preflightFailure(errs)
	}
	units, err := input.CaptureIfEmpty(a.stdin, msgtool.FileUnits(files), opts.filename)
	if err != nil {
		return err
	}
	root := opts.root
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
	}
	req := msgtool.TransformRequest{
		Files:              units,
		GenerateID:         opts.generateID,
		Inline:             opts.inline,
		Locale:             opts.locale,
		Translations:       catalog,
		MissingBehavior:    msgtool.MissingBehavior(opts.missingTranslation),
		MissingReplacement: opts.missingReplacement,
		SourceMaps:         opts.sourceMaps,
		SourceMapsInline:   opts.sourceMapsInline,
		OutFile:            opts.outFile,
		OutDir:             opts.outDir,
		Root:               root,
	}
	a.logger.Debug("dispatching transform", "files", len(units), "inline", opts.inline)
	return a.pipelines.Transformer.Transform(ctx, req)
}
