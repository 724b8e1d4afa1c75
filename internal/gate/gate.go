// Package gate enforces the rationale-before-subcommand rule and classifies
// execution requests into a closed set of variants.
package gate

import (
	"strings"

	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/i18n"
)

// Global flag names recognised before the subcommand.
const (
	FlagWhat = "--what"
	FlagWhy  = "--why"
	FlagLang = "--lang"
)

// ExecutionCommands spawn an external program and require a rationale.
var ExecutionCommands = []string{"run", "py", "node", "pip", "npm", "npx"}

// ManagementCommands never spawn user programs and reject a rationale.
var ManagementCommands = []string{
	"config", "init", "setup", "doctor", "completions", "info", "update", "uninstall",
}

// builtinCommands are provided by the CLI framework itself.
var builtinCommands = []string{"help", "__complete", "__completeNoDesc"}

// completionCommands are the hidden entry points shell completion scripts
// call with the words typed so far, rationale flags included.
var completionCommands = []string{"__complete", "__completeNoDesc"}

// IsExecution reports whether command is execution-class.
func IsExecution(command string) bool {
	return contains(ExecutionCommands, command)
}

// IsManagement reports whether command is a known non-execution command.
func IsManagement(command string) bool {
	return contains(ManagementCommands, command) || contains(builtinCommands, command)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Rationale is the WHAT/WHY pair announced before execution.
type Rationale struct {
	What string
	Why  string
}

// Invocation is the result of scanning the raw argument list.
type Invocation struct {
	// Rationale is set only for execution-class commands.
	Rationale *Rationale
	// Lang is the --lang value given before the subcommand, if any.
	Lang string
	// Command is the subcommand token, empty when none was given.
	Command string
	// Args are the tokens after the subcommand, untouched.
	Args []string
	// Forward is the argument list for the command parser: leading flags other
	// than --what/--why/--lang, then the subcommand and its arguments.
	Forward []string
}

// Execution reports whether the invocation runs an external program.
func (inv *Invocation) Execution() bool {
	return IsExecution(inv.Command)
}

type flagSeen struct {
	present bool
	value   string
}

// Inspect scans args (without the program name) for the global prefix and the
// subcommand token.
//
// For execution commands both --what and --why must appear, non-empty, before
// the subcommand; otherwise a MissingRationale error names each absent, empty
// or misplaced flag. Non-execution commands fail with UnexpectedRationale if
// either flag appears anywhere. Unknown subcommands fail with UnknownCommand.
func Inspect(cat *i18n.Catalog, args []string) (*Invocation, error) {
	inv := &Invocation{}
	var what, why flagSeen

	i := 0
scan:
	for i < len(args) {
		tok := args[i]
		switch {
		case tok == "--":
			i++
			break scan
		case strings.HasPrefix(tok, "-") && tok != "-":
			name, value, inline := strings.Cut(tok, "=")
			if name != FlagWhat && name != FlagWhy && name != FlagLang {
				inv.Forward = append(inv.Forward, tok)
				i++
				continue
			}
			if !inline && i+1 < len(args) {
				value = args[i+1]
				i++
			}
			i++
			switch name {
			case FlagWhat:
				what = flagSeen{present: true, value: value}
			case FlagWhy:
				why = flagSeen{present: true, value: value}
			case FlagLang:
				inv.Lang = value
			}
		default:
			break scan
		}
	}

	if i < len(args) {
		inv.Command = args[i]
		inv.Args = args[i+1:]
		inv.Forward = append(inv.Forward, args[i:]...)
	}

	switch {
	case contains(completionCommands, inv.Command):
		// completions see the partial command line as typed
	case IsExecution(inv.Command):
		if problems := rationaleProblems(cat, what, why, inv.Args); len(problems) > 0 {
			return nil, errors.MissingRationale(cat, inv.Command, problems...)
		}
		inv.Rationale = &Rationale{What: what.value, Why: why.value}
	case inv.Command == "" || IsManagement(inv.Command):
		if what.present || why.present || mentionsRationale(inv.Args) {
			name := inv.Command
			if name == "" {
				name = "shnote"
			}
			return nil, errors.UnexpectedRationale(cat, name)
		}
	default:
		return nil, errors.UnknownCommand(cat, inv.Command)
	}
	return inv, nil
}

func rationaleProblems(cat *i18n.Catalog, what, why flagSeen, after []string) []string {
	var problems []string
	check := func(flag string, seen flagSeen) {
		switch {
		case seen.present && strings.TrimSpace(seen.value) == "":
			problems = append(problems, cat.T(i18n.ErrRationaleEmpty, flag))
		case seen.present:
		case containsFlag(after, flag):
			problems = append(problems, cat.T(i18n.ErrRationaleMisplaced, flag))
		default:
			problems = append(problems, cat.T(i18n.ErrRationaleAbsent, flag))
		}
	}
	check(FlagWhat, what)
	check(FlagWhy, why)
	return problems
}

func mentionsRationale(args []string) bool {
	return containsFlag(args, FlagWhat) || containsFlag(args, FlagWhy)
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == flag || strings.HasPrefix(a, flag+"=") {
			return true
		}
	}
	return false
}

// LangFlag returns the last --lang value found before "--". Unlike Inspect it
// looks past the subcommand and never fails, so errors raised while
// inspecting can already be localized.
func LangFlag(args []string) string {
	lang := ""
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if tok == "--" {
			break
		}
		name, value, inline := strings.Cut(tok, "=")
		if name != FlagLang {
			continue
		}
		if !inline {
			if i+1 >= len(args) {
				break
			}
			value = args[i+1]
			i++
		}
		lang = value
	}
	return lang
}
