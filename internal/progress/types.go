// Package progress shows step progress for long-running management commands
// such as `shnote setup` and `shnote update`. Everything is written to stderr
// so stdout stays clean for scripts.
package progress

import apperrors "github.com/wangnov/shnote/internal/errors"

// StepInfo describes one step of a multi-step operation, e.g. downloading
// the second of two binaries.
type StepInfo struct {
	// Name is the human-readable step label (e.g., "Downloading pueue v4.0.1")
	Name string
	// Number is the current step number (1-based index)
	Number int
	// Total is the number of steps in the operation
	Total int
}

// Validate checks that all StepInfo fields meet validation requirements
func (s StepInfo) Validate() error {
	if s.Name == "" {
		return apperrors.NewArgumentError("step name cannot be empty")
	}
	if s.Number <= 0 {
		return apperrors.NewArgumentError("step number must be > 0")
	}
	if s.Total <= 0 {
		return apperrors.NewArgumentError("total steps must be > 0")
	}
	if s.Number > s.Total {
		return apperrors.NewArgumentError("step number cannot exceed total steps")
	}
	return nil
}

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether stderr is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
}

// Symbols defines the character set for visual indicators
type Symbols struct {
	// Checkmark is the success indicator ("✓" or "[OK]")
	Checkmark string
	// Failure is the failure indicator ("✗" or "[FAIL]")
	Failure string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
