package main

import (
	"errors"

	"github.com/jsamuelsen11/project-collector/internal/domain"
)

// Exit codes reported by the collector CLI.
const (
	ExitSuccess         = 0 // Success
	ExitError           = 1 // General error (bad arguments, unknown resource, storage failure)
	ExitConfigError     = 2 // Configuration could not be loaded or is invalid
	ExitValidationError = 3 // Record rejected by validation
	ExitSubmissionError = 4 // Collector did not take the submission
)

// configError marks failures to load or validate configuration.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// exitCode maps a command error onto the CLI's exit codes.
func exitCode(err error) int {
	var cfgErr *configError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case errors.Is(err, domain.ErrValidation):
		return ExitValidationError
	case errors.Is(err, domain.ErrSubmissionTimeout),
		errors.Is(err, domain.ErrSubmissionTransport),
		errors.Is(err, domain.ErrSubmissionInProgress):
		return ExitSubmissionError
	default:
		return ExitError
	}
}
