package main

import (
	"context"

	"github.com/loopcontext/msgtool"
	"github.com/loopcontext/msgtool/internal/input"
	"github.com/spf13/cobra"
)

type lintOptions struct {
	functionName string
	noAuto       bool
	keyType      string
	translations string
	filename     string
}

func newLintCmd(a *app) *cobra.Command {
	var opts lintOptions
	c := &cobra.Command{
		Use:   "lint [files...]",
		Short: "Lint message-pattern call sites",
		Long: `Lint checks translator call sites in the given files (or stdin when
none are given) and reports patterns the suite cannot analyze. Key-type
and function-name values are passed through to the linter uninterpreted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLint(cmd.Context(), args, opts)
		},
	}
	f := c.Flags()
	f.StringVarP(&opts.functionName, "function-name", "n", a.defaults.FunctionName, "name of the translator function to look for")
	f.BoolVar(&opts.noAuto, "no-auto", false, "disable auto-detection of the translator function")
	f.StringVarP(&opts.keyType, "key-type", "k", a.defaults.GenerateID, "key derivation strategy (literal|normalized|underscored|underscored_crc32)")
	f.StringVarP(&opts.translations, "translations", "t", "", "path to a translations file to lint against")
	f.StringVarP(&opts.filename, "filename", "f", a.defaults.Filename, "virtual filename for stdin input")
	return c
}

func (a *app) runLint(ctx context.Context, patterns []string, opts lintOptions) error {
	files, err := input.Resolve(patterns)
	if err != nil {
		return err
	}
	catalog, errs := validateLint(files, opts)
	if !errs.Empty() {
		return a.preflightFailure(errs)
	}
	units, err := input.CaptureIfEmpty(a.stdin, msgtool.FileUnits(files), opts.filename)
	if err != nil {
		return err
	}
	req := msgtool.LintRequest{
		Files:        units,
		FunctionName: opts.functionName,
		AutoDetect:   !opts.noAuto,
		KeyType:      opts.keyType,
		Translations: catalog,
	}
	a.logger.Debug("dispatching lint", "files", len(units))
	return a.pipelines.Linter.Lint(ctx, req)
}
