package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgRed, color.Bold)
	labelColor  = color.New(color.FgYellow)
	hintColor   = color.New(color.FgCyan)
)

// FormatError renders err with colors (when the terminal supports them).
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	return render(err, headerColor.Sprint, labelColor.Sprint, hintColor.Sprint)
}

// FormatErrorPlain renders err without ANSI escape codes.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return render(err, fmt.Sprint, fmt.Sprint, fmt.Sprint)
}

func render(err *CLIError, header, label, hint func(...any) string) string {
	var b strings.Builder
	b.WriteString(header(err.Category.String() + ":"))
	b.WriteString(" ")
	b.WriteString(err.Message)
	b.WriteString("\n")

	if err.Usage != "" {
		b.WriteString("\n")
		b.WriteString(label("Usage:"))
		b.WriteString(" ")
		b.WriteString(err.Usage)
		b.WriteString("\n")
	}

	if len(err.Remediation) > 0 {
		b.WriteString("\n")
		b.WriteString(label("To fix this:"))
		b.WriteString("\n")
		for _, step := range err.Remediation {
			b.WriteString("  - ")
			b.WriteString(hint(step))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// PrintError writes the formatted error to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError writes the formatted error to w.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}

// FormatSimpleError formats any error under the given category.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return FormatError(cliErr)
	}
	return FormatError(&CLIError{Category: category, Message: err.Error()})
}
