package progress

import (
	"fmt"

	"github.com/fatih/color"
)

// formatCounter returns the [N/Total] step counter string
func formatCounter(number, total int) string {
	return fmt.Sprintf("[%d/%d]", number, total)
}

// buildStepMessage prefixes the step name with its counter.
// A single-step operation has no counter.
func buildStepMessage(step StepInfo) string {
	if step.Total == 1 {
		return step.Name
	}
	return formatCounter(step.Number, step.Total) + " " + step.Name
}

// Mark returns the success or failure symbol, colored when supported.
func Mark(symbols Symbols, ok, supportsColor bool) string {
	mark, attr := symbols.Failure, color.FgRed
	if ok {
		mark, attr = symbols.Checkmark, color.FgGreen
	}
	if !supportsColor {
		return mark
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(mark)
}
