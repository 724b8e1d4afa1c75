package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Display renders step progress to a single writer.
type Display struct {
	out          io.Writer
	capabilities TerminalCapabilities
	spinner      *spinner.Spinner
	symbols      Symbols
}

// NewDisplay creates a display writing to out with the given terminal capabilities.
func NewDisplay(out io.Writer, caps TerminalCapabilities) *Display {
	return &Display{
		out:          out,
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// Start begins displaying progress for a step
func (d *Display) Start(step StepInfo) error {
	if err := step.Validate(); err != nil {
		return err
	}
	d.StopSpinner()

	msg := buildStepMessage(step)
	if d.capabilities.IsTTY {
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
			spinner.WithWriter(d.out),
		)
		d.spinner.Suffix = " " + msg
		d.spinner.Start()
		return nil
	}

	// Non-interactive mode: just print the message
	fmt.Fprintln(d.out, msg)
	return nil
}

// Complete stops the spinner and prints a success line.
func (d *Display) Complete(step StepInfo, detail string) {
	d.finish(step, true, detail)
}

// Fail stops the spinner and prints a failure line.
func (d *Display) Fail(step StepInfo, err error) {
	d.finish(step, false, err.Error())
}

func (d *Display) finish(step StepInfo, ok bool, detail string) {
	d.StopSpinner()
	line := Mark(d.symbols, ok, d.capabilities.SupportsColor) + " " + buildStepMessage(step)
	if detail != "" {
		line += ": " + detail
	}
	fmt.Fprintln(d.out, line)
}

// StopSpinner stops the spinner without printing a result
func (d *Display) StopSpinner() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
