package main

import (
	"errors"

	"github.com/fcgreg/VIC-CatParser/internal/config"
	"github.com/fcgreg/VIC-CatParser/internal/sink"
	"github.com/fcgreg/VIC-CatParser/internal/vicfile"
)

// Process exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitNotFound = 3
	exitParse    = 4
	exitIO       = 5
)

// exitCode maps an error returned by the root command to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrUsage):
		return exitUsage
	case errors.Is(err, vicfile.ErrFileNotFound):
		return exitNotFound
	case errors.Is(err, vicfile.ErrParse):
		return exitParse
	case errors.Is(err, vicfile.ErrUnreadable), errors.Is(err, sink.ErrWrite):
		return exitIO
	default:
		return exitFailure
	}
}
