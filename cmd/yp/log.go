package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

func newLogger(verbose bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return slog.New(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "yp",
	}))
}
