package handlers

import (
	"errors"
	"fmt"

	"github.com/imamik/azdns/internal/config"
	"github.com/imamik/azdns/internal/orchestration"
	"github.com/imamik/azdns/internal/provisioning"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitConfig    = 2
	ExitProvision = 3
	ExitCleanup   = 4
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a handler to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		return ExitConfig
	}
	return ExitFailure
}

// resultError converts a run result into the error the command returns.
// Cleanup failures are only fatal when strict is set.
func resultError(result *orchestration.Result, strict bool) error {
	if result.Err != nil {
		return &ExitError{Code: ExitProvision, Err: result.Err}
	}
	if strict && result.Cleanup == provisioning.CleanupFailed {
		return &ExitError{Code: ExitCleanup, Err: fmt.Errorf("cleanup failed: %w", result.CleanupErr)}
	}
	return nil
}
