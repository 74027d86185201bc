package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/loopcontext/msgtool/internal/config"
	"github.com/loopcontext/msgtool/internal/engine"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "msgtool"})
	if os.Getenv("MSGTOOL_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	defaults, err := config.Load()
	if err != nil {
		logger.Warn("defaults config ignored", "err", err)
	}

	a := &app{
		pipelines: engine.Default(logger, os.Stdout),
		defaults:  defaults,
		stdin:     os.Stdin,
		logger:    logger,
	}

	if err := fang.Execute(
		context.Background(),
		newRootCmd(a),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}
