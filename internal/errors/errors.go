// Package errors provides the structured CLI error type used across shnote.
// Every error carries a Kind (what went wrong, which decides the exit code) and
// a Category (how it is presented to the user).
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory groups errors for presentation.
type ErrorCategory int

const (
	// Argument errors come from invalid flags, arguments or rationale placement.
	Argument ErrorCategory = iota
	// Configuration errors come from invalid config keys, values or files.
	Configuration
	// Prerequisite errors mean a required file or tool is missing.
	Prerequisite
	// Runtime errors happen while running a child process or touching files.
	Runtime
)

// String returns the human-readable label for the category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// Kind identifies a failure in the shnote error taxonomy.
type Kind int

const (
	KindInternal Kind = iota
	KindMissingRationale
	KindUnexpectedRationale
	KindUnknownCommand
	KindInvalidArgument
	KindConfigInvalid
	KindFileNotFound
	KindToolNotFound
	KindCorruptMarkedBlock
	KindChildSpawnFailed
	KindChildSignaled
)

var kindNames = map[Kind]string{
	KindInternal:            "Internal",
	KindMissingRationale:    "MissingRationale",
	KindUnexpectedRationale: "UnexpectedRationale",
	KindUnknownCommand:      "UnknownCommand",
	KindInvalidArgument:     "InvalidArgument",
	KindConfigInvalid:       "ConfigInvalid",
	KindFileNotFound:        "FileNotFound",
	KindToolNotFound:        "ToolNotFound",
	KindCorruptMarkedBlock:  "CorruptMarkedBlock",
	KindChildSpawnFailed:    "ChildSpawnFailed",
	KindChildSignaled:       "ChildSignaled",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Category returns the default presentation category for the kind.
func (k Kind) Category() ErrorCategory {
	switch k {
	case KindMissingRationale, KindUnexpectedRationale, KindUnknownCommand, KindInvalidArgument:
		return Argument
	case KindConfigInvalid, KindCorruptMarkedBlock:
		return Configuration
	case KindFileNotFound, KindToolNotFound:
		return Prerequisite
	default:
		return Runtime
	}
}

// Sentinels for errors.Is matching by kind.
var (
	ErrMissingRationale    = &CLIError{Kind: KindMissingRationale}
	ErrUnexpectedRationale = &CLIError{Kind: KindUnexpectedRationale}
	ErrUnknownCommand      = &CLIError{Kind: KindUnknownCommand}
	ErrInvalidArgument     = &CLIError{Kind: KindInvalidArgument}
	ErrConfigInvalid       = &CLIError{Kind: KindConfigInvalid}
	ErrFileNotFound        = &CLIError{Kind: KindFileNotFound}
	ErrToolNotFound        = &CLIError{Kind: KindToolNotFound}
	ErrCorruptMarkedBlock  = &CLIError{Kind: KindCorruptMarkedBlock}
	ErrChildSpawnFailed    = &CLIError{Kind: KindChildSpawnFailed}
	ErrChildSignaled       = &CLIError{Kind: KindChildSignaled}
)

// CLIError is a structured error with category, usage and remediation steps.
type CLIError struct {
	Kind        Kind
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string

	// Subject names the command, flag, path or tool the error is about.
	Subject string
	// Signal is set for KindChildSignaled.
	Signal int
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// Is matches sentinel errors that carry only a Kind.
func (e *CLIError) Is(target error) bool {
	t, ok := target.(*CLIError)
	if !ok {
		return false
	}
	if t.Message == "" && t.Subject == "" {
		return e.Kind == t.Kind
	}
	return e == t
}

// New creates a CLIError of the given kind using the kind's default category.
func New(kind Kind, message string, remediation ...string) *CLIError {
	return &CLIError{
		Kind:        kind,
		Category:    kind.Category(),
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentError creates an argument error.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Kind:        KindInvalidArgument,
		Category:    Argument,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentErrorWithUsage creates an argument error with usage information.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	err := NewArgumentError(message, remediation...)
	err.Usage = usage
	return err
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Kind:        KindConfigInvalid,
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewPrerequisiteError creates a prerequisite error.
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Kind:        KindInternal,
		Category:    Prerequisite,
		Message:     message,
		Remediation: remediation,
	}
}

// NewRuntimeError creates a runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Kind:        KindInternal,
		Category:    Runtime,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap converts any error into a CLIError with the given category.
// An existing CLIError keeps its kind and message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return &CLIError{
			Kind:        cliErr.Kind,
			Category:    category,
			Message:     cliErr.Message,
			Usage:       cliErr.Usage,
			Remediation: append(append([]string{}, cliErr.Remediation...), remediation...),
			Subject:     cliErr.Subject,
			Signal:      cliErr.Signal,
			Err:         cliErr,
		}
	}
	return &CLIError{
		Kind:        KindInternal,
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}

// WrapWithMessage wraps err and prefixes its message.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	wrapped := Wrap(err, category, remediation...)
	if wrapped == nil {
		return nil
	}
	wrapped.Message = message + ": " + wrapped.Message
	return wrapped
}

// IsCLIError reports whether err is or wraps a CLIError.
func IsCLIError(err error) bool {
	return AsCLIError(err) != nil
}

// AsCLIError returns the first CLIError in err's chain, or nil.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}

// KindOf returns the kind of the first CLIError in err's chain.
// Errors outside the taxonomy report KindInternal.
func KindOf(err error) Kind {
	if cliErr := AsCLIError(err); cliErr != nil {
		return cliErr.Kind
	}
	return KindInternal
}
