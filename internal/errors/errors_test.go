// Package errors_test tests the CLI error type, kinds, sentinels and wrapping.
// Related: internal/errors/errors.go
// Tags: errors, cli-errors, kinds, categories, wrapping
package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorCategoryString(t *testing.T) {
	tests := map[string]struct {
		category ErrorCategory
		expected string
	}{
		"Argument":      {category: Argument, expected: "Argument Error"},
		"Configuration": {category: Configuration, expected: "Configuration Error"},
		"Prerequisite":  {category: Prerequisite, expected: "Prerequisite Error"},
		"Runtime":       {category: Runtime, expected: "Runtime Error"},
		"Unknown":       {category: ErrorCategory(99), expected: "Error"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			result := test.category.String()
			if result != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, result)
			}
		})
	}
}

func TestKindCategory(t *testing.T) {
	tests := map[string]struct {
		kind     Kind
		expected ErrorCategory
	}{
		"missing rationale":    {kind: KindMissingRationale, expected: Argument},
		"unexpected rationale": {kind: KindUnexpectedRationale, expected: Argument},
		"unknown command":      {kind: KindUnknownCommand, expected: Argument},
		"file not found":       {kind: KindFileNotFound, expected: Prerequisite},
		"tool not found":       {kind: KindToolNotFound, expected: Prerequisite},
		"corrupt block":        {kind: KindCorruptMarkedBlock, expected: Configuration},
		"spawn failed":         {kind: KindChildSpawnFailed, expected: Runtime},
		"signaled":             {kind: KindChildSignaled, expected: Runtime},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := test.kind.Category(); got != test.expected {
				t.Errorf("Expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindCorruptMarkedBlock.String() != "CorruptMarkedBlock" {
		t.Errorf("unexpected name %q", KindCorruptMarkedBlock.String())
	}
	if Kind(42).String() != "Kind(42)" {
		t.Errorf("unexpected name %q", Kind(42).String())
	}
}

func TestCLIErrorError(t *testing.T) {
	err := &CLIError{
		Category: Argument,
		Message:  "test error message",
	}

	if err.Error() != "test error message" {
		t.Errorf("Expected 'test error message', got %q", err.Error())
	}
}

func TestSentinelMatching(t *testing.T) {
	t.Run("matches by kind through wrapping", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("resolving python: %w", New(KindToolNotFound, "python3 not found"))
		if !stderrors.Is(err, ErrToolNotFound) {
			t.Error("Expected errors.Is to match ErrToolNotFound")
		}
		if stderrors.Is(err, ErrFileNotFound) {
			t.Error("Expected errors.Is not to match ErrFileNotFound")
		}
	})

	t.Run("non sentinel targets compare by identity", func(t *testing.T) {
		t.Parallel()
		a := New(KindToolNotFound, "a")
		b := New(KindToolNotFound, "b")
		if stderrors.Is(a, b) {
			t.Error("Expected distinct errors not to match")
		}
		if !stderrors.Is(a, a) {
			t.Error("Expected an error to match itself")
		}
	})

	t.Run("unwraps cause", func(t *testing.T) {
		t.Parallel()
		cause := stderrors.New("permission denied")
		err := &CLIError{Kind: KindChildSpawnFailed, Message: "spawn", Err: cause}
		if !stderrors.Is(err, cause) {
			t.Error("Expected cause to be reachable")
		}
	})
}

func TestKindOf(t *testing.T) {
	if KindOf(stderrors.New("plain")) != KindInternal {
		t.Error("Expected plain errors to be internal")
	}
	wrapped := fmt.Errorf("outer: %w", New(KindCorruptMarkedBlock, "bad"))
	if KindOf(wrapped) != KindCorruptMarkedBlock {
		t.Errorf("Expected CorruptMarkedBlock, got %v", KindOf(wrapped))
	}
}

func TestNewArgumentError(t *testing.T) {
	err := NewArgumentError("missing argument", "provide the argument", "see --help")

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if err.Kind != KindInvalidArgument {
		t.Errorf("Expected InvalidArgument kind, got %v", err.Kind)
	}
	if len(err.Remediation) != 2 {
		t.Errorf("Expected 2 remediation steps, got %d", len(err.Remediation))
	}
}

func TestNewArgumentErrorWithUsage(t *testing.T) {
	err := NewArgumentErrorWithUsage("invalid arg", "shnote py -c <code>", "use correct syntax")

	if err.Usage != "shnote py -c <code>" {
		t.Errorf("Expected usage, got %q", err.Usage)
	}
}

func TestCategoryConstructors(t *testing.T) {
	if NewConfigError("x").Category != Configuration {
		t.Error("Expected Configuration category")
	}
	if NewPrerequisiteError("x").Category != Prerequisite {
		t.Error("Expected Prerequisite category")
	}
	if NewRuntimeError("x").Category != Runtime {
		t.Error("Expected Runtime category")
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if Wrap(nil, Runtime) != nil {
			t.Error("Expected nil for nil input")
		}
	})

	t.Run("keeps kind of wrapped CLIError", func(t *testing.T) {
		t.Parallel()
		original := New(KindToolNotFound, "node not found")
		result := Wrap(original, Runtime, "fix it")

		if result.Category != Runtime {
			t.Errorf("Expected Runtime category, got %v", result.Category)
		}
		if result.Kind != KindToolNotFound {
			t.Errorf("Expected kind to survive, got %v", result.Kind)
		}
		if len(result.Remediation) != 1 {
			t.Errorf("Expected 1 remediation step, got %d", len(result.Remediation))
		}
	})

	t.Run("plain errors become internal", func(t *testing.T) {
		t.Parallel()
		result := Wrap(stderrors.New("disk full"), Runtime)
		if result.Kind != KindInternal || result.Message != "disk full" {
			t.Errorf("unexpected wrap result %+v", result)
		}
	})
}

func TestWrapWithMessage(t *testing.T) {
	if WrapWithMessage(nil, Runtime, "wrapper") != nil {
		t.Error("Expected nil for nil input")
	}

	result := WrapWithMessage(&CLIError{Message: "inner"}, Runtime, "outer")
	if result.Message != "outer: inner" {
		t.Errorf("Expected 'outer: inner', got %q", result.Message)
	}
}

func TestAsCLIError(t *testing.T) {
	original := NewArgumentError("test")
	if AsCLIError(original) != original {
		t.Error("Expected same CLIError")
	}
	if AsCLIError(&testError{}) != nil {
		t.Error("Expected nil for non-CLIError")
	}
	if !IsCLIError(fmt.Errorf("wrapped: %w", original)) {
		t.Error("Expected wrapped CLIError to be detected")
	}
}

// testError is a helper for testing non-CLIError errors
type testError struct{}

func (e *testError) Error() string { return "test error" }
