package main

import (
	"errors"
	"os"

	"github.com/loopcontext/msgtool"
)

// Every validator runs all of its rules unconditionally and reports
// every violation, file errors before option errors. A non-empty result
// means the command must not dispatch.

func validateLint(files []string, opts lintOptions) (msgtool.Catalog, msgtool.ValidationErrors) {
	var errs msgtool.ValidationErrors
	checkFilesExist(files, &errs)
	catalog := loadTranslations(opts.translations, &errs)
	return catalog, errs
}

func validateExtract(files []string) msgtool.ValidationErrors {
	var errs msgtool.ValidationErrors
	checkFilesExist(files, &errs)
	return errs
}

func validateTransform(files []string, opts transformOptions) (msgtool.Catalog, msgtool.ValidationErrors) {
	var errs msgtool.ValidationErrors
	checkFilesExist(files, &errs)
	if opts.outDir != "" && len(files) == 0 {
		errs.Add("files must be provided when using the --out-dir option")
	}
	if opts.outFile != "" && opts.outDir != "" {
		errs.Add("the --out-file and --out-dir options are mutually exclusive")
	}
	if opts.sourceMaps && opts.outFile == "" && opts.outDir == "" {
		errs.Add("the --source-maps option requires either --out-file or --out-dir")
	}
	catalog := loadTranslations(opts.translations, &errs)
	if !msgtool.MissingBehavior(opts.missingTranslation).Valid() {
		errs.Add("%q is not a valid --missing-translation value, expected error, warning, or ignore", opts.missingTranslation)
	}
	return catalog, errs
}

func checkFilesExist(files []string, errs *msgtool.ValidationErrors) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			errs.AddError(&msgtool.MissingFileError{Path: f})
		}
	}
}

// loadTranslations resolves a translations path into a parsed catalog,
// recording missing-file and parse failures as validation errors so the
// user sees them alongside everything else.
func loadTranslations(path string, errs *msgtool.ValidationErrors) msgtool.Catalog {
	if path == "" {
		return nil
	}
	catalog, err := msgtool.LoadCatalog(path)
	if err != nil {
		errs.AddError(err)
		return nil
	}
	return catalog
}

// preflightFailure turns an accumulated report into the reserved
// validation exit status. The joined report becomes the process's error
// output.
func (a *app) preflightFailure(errs msgtool.ValidationErrors) error {
	a.logger.Debug("pre-flight validation failed", "violations", len(errs))
	return &exitError{code: exitValidation, err: errors.New(errs.Join())}
}
