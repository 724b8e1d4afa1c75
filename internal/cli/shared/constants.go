// Package shared provides constants and types used across CLI subpackages.
// This package has no dependencies on other CLI packages to avoid circular imports.
package shared

import (
	stderrors "errors"
	"fmt"

	"github.com/wangnov/shnote/internal/errors"
)

// Command group IDs for organizing help output
const (
	GroupExecution     = "execution"
	GroupConfiguration = "configuration"
	GroupMaintenance   = "maintenance"
)

// Exit codes for CLI commands. A child's own exit code is passed through
// verbatim and may collide with these; scripts that need to tell them apart
// should rely on the wrapper-level bands only when the child cannot produce them.
const (
	ExitSuccess = 0
	// ExitFailure covers runtime failures: I/O, network, failed doctor checks.
	ExitFailure = 1
	// ExitUsage covers rationale, argument and config validation.
	ExitUsage = 2
	// ExitCorruptBlock is EX_DATAERR from sysexits.h.
	ExitCorruptBlock = 65
	// ExitFileNotFound is EX_NOINPUT from sysexits.h.
	ExitFileNotFound = 66
	// ExitCannotExecute means the tool was found but could not be started.
	ExitCannotExecute = 126
	// ExitToolNotFound means the tool could not be resolved.
	ExitToolNotFound = 127
	// ExitSignalBase is added to the number of the signal that killed the child.
	ExitSignalBase = 128
)

// ExitError carries an exit code. With a nil Err nothing is printed: the
// command already reported what happened, or the child did.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a silent exit error with the given code.
func NewExitError(code int) error {
	return &ExitError{Code: code}
}

// ExitCodeForKind maps an error kind to its exit band.
func ExitCodeForKind(kind errors.Kind) int {
	switch kind {
	case errors.KindMissingRationale, errors.KindUnexpectedRationale, errors.KindUnknownCommand,
		errors.KindInvalidArgument, errors.KindConfigInvalid:
		return ExitUsage
	case errors.KindFileNotFound:
		return ExitFileNotFound
	case errors.KindCorruptMarkedBlock:
		return ExitCorruptBlock
	case errors.KindChildSpawnFailed:
		return ExitCannotExecute
	case errors.KindToolNotFound:
		return ExitToolNotFound
	case errors.KindChildSignaled:
		return ExitSignalBase
	default:
		return ExitFailure
	}
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		if cliErr.Kind == errors.KindChildSignaled {
			return ExitSignalBase + cliErr.Signal
		}
		return ExitCodeForKind(cliErr.Kind)
	}
	return ExitFailure
}
