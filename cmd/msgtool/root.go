package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/loopcontext/msgtool"
	"github.com/loopcontext/msgtool/internal/config"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// app carries everything a command invocation needs: the pipeline
// implementations, merged defaults, and the process streams. Tests
// substitute all of it.
type app struct {
	pipelines msgtool.Pipelines
	defaults  config.Defaults
	stdin     io.Reader
	logger    *log.Logger

	color   bool
	noColor bool
}

// newRootCmd builds the complete command table for one process start.
// Commands are attached here explicitly; nothing registers itself at
// package load time.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "msgtool",
		Short: "Message-pattern tooling for i18n workflows",
		Long: titleStyle.Render("msgtool") + subtitleStyle.Render(" - message-pattern tooling") + `

msgtool orchestrates the i18n tooling suite: it lints message-pattern
call sites, extracts patterns into translation catalogs, and transforms
call sites by generating ids or inlining translations.

File arguments accept shell glob patterns. When no files are given, the
source is read from standard input until end-of-input.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.applyColor()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&a.color, "color", false, "force colored output")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newLintCmd(a),
		newExtractCmd(a),
		newTransformCmd(a),
	)
	return root
}

func (a *app) applyColor() {
	switch {
	case a.noColor:
		a.logger.SetColorProfile(termenv.Ascii)
		lipgloss.SetColorProfile(termenv.Ascii)
	case a.color:
		a.logger.SetColorProfile(termenv.ANSI256)
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}
