// Package announce writes the WHAT/WHY preamble that precedes every
// execution-class command.
package announce

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/gate"
)

// Labels are written verbatim; only the label text is ever colored.
const (
	WhatLabel = "WHAT:"
	WhyLabel  = "WHY:"
)

var colorAttrs = map[string]color.Attribute{
	"black":      color.FgBlack,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"white":      color.FgWhite,
	"hi_black":   color.FgHiBlack,
	"hi_red":     color.FgHiRed,
	"hi_green":   color.FgHiGreen,
	"hi_yellow":  color.FgHiYellow,
	"hi_blue":    color.FgHiBlue,
	"hi_magenta": color.FgHiMagenta,
	"hi_cyan":    color.FgHiCyan,
	"hi_white":   color.FgHiWhite,
}

// Options controls how the preamble is rendered.
type Options struct {
	// Quiet suppresses the preamble entirely.
	Quiet bool
	// Color enables label colors; it still requires a color-capable terminal.
	Color     bool
	WhatColor string
	WhyColor  string
}

// OptionsFromConfig derives emitter options from the loaded configuration.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Quiet:     cfg.Quiet(),
		Color:     cfg.Color,
		WhatColor: cfg.WhatColor,
		WhyColor:  cfg.WhyColor,
	}
}

// Emitter renders the preamble to a single stream.
type Emitter struct {
	out      io.Writer
	opts     Options
	colorize bool
}

// New returns an emitter writing to out. Colors are used only when opts.Color
// is set, out is a terminal and NO_COLOR is unset.
func New(out io.Writer, opts Options) *Emitter {
	return &Emitter{
		out:      out,
		opts:     opts,
		colorize: opts.Color && SupportsColor(out, os.Getenv),
	}
}

// SupportsColor reports whether w is a terminal that should receive ANSI codes.
func SupportsColor(w io.Writer, getenv func(string) string) bool {
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Emit writes the two preamble lines for r in one write so nothing the child
// prints can land between them. Nothing is written when the emitter is quiet.
func (e *Emitter) Emit(r gate.Rationale) error {
	if e.opts.Quiet {
		return nil
	}
	_, err := io.WriteString(e.out, Render(r, e.colorize, e.opts.WhatColor, e.opts.WhyColor))
	return err
}

// Render returns the preamble text. With colorize false the output is exactly
// "WHAT: <what>\nWHY: <why>\n".
func Render(r gate.Rationale, colorize bool, whatColor, whyColor string) string {
	var b strings.Builder
	b.WriteString(label(WhatLabel, whatColor, colorize))
	b.WriteString(" ")
	b.WriteString(r.What)
	b.WriteString("\n")
	b.WriteString(label(WhyLabel, whyColor, colorize))
	b.WriteString(" ")
	b.WriteString(r.Why)
	b.WriteString("\n")
	return b.String()
}

func label(text, name string, colorize bool) string {
	if !colorize {
		return text
	}
	attr, ok := colorAttrs[name]
	if !ok {
		return text
	}
	c := color.New(attr, color.Bold)
	// fatih/color decides on its own whether stdout is a TTY; the decision
	// here has already been made against the real output stream.
	c.EnableColor()
	return c.Sprint(text)
}
