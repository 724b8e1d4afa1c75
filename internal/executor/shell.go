package executor

import (
	"path/filepath"
	"strings"

	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/errors"
)

// ShellKind is a shell family with its own command-line convention.
type ShellKind string

const (
	Sh   ShellKind = "sh"
	Bash ShellKind = "bash"
	Zsh  ShellKind = "zsh"
	Pwsh ShellKind = "pwsh"
	Cmd  ShellKind = "cmd"
)

// ParseShellKind maps an executable base name to a shell kind.
func ParseShellKind(name string) (ShellKind, bool) {
	name = strings.TrimSuffix(strings.ToLower(filepath.Base(name)), ".exe")
	switch name {
	case "sh":
		return Sh, true
	case "bash":
		return Bash, true
	case "zsh":
		return Zsh, true
	case "pwsh", "powershell":
		return Pwsh, true
	case "cmd":
		return Cmd, true
	}
	return "", false
}

// CommandArgs returns the arguments that make the shell run line.
func (k ShellKind) CommandArgs(line string) []string {
	switch k {
	case Pwsh:
		return []string{"-NoProfile", "-Command", line}
	case Cmd:
		return []string{"/C", line}
	default:
		return []string{"-c", line}
	}
}

// CommandLine turns the run arguments into one command line for the shell.
// A single argument is used verbatim so pipes and redirections written as one
// quoted string still work. With several arguments each one is quoted so the
// shell sees exactly the words it was given.
func (k ShellKind) CommandLine(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	quoted := make([]string, len(args))
	for i, arg := range args {
		switch k {
		case Pwsh:
			quoted[i] = quotePwsh(arg)
		case Cmd:
			quoted[i] = quoteCmd(arg)
		default:
			quoted[i] = quotePosix(arg)
		}
	}
	line := strings.Join(quoted, " ")
	// A quoted first word is a string literal to PowerShell; & invokes it.
	if k == Pwsh && len(args) > 0 && quoted[0] != args[0] {
		line = "& " + line
	}
	return line
}

// safeWord reports whether arg needs no quoting in any supported shell.
func safeWord(arg string) bool {
	if arg == "" {
		return false
	}
	for _, r := range arg {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("-_./:@+", r):
		default:
			return false
		}
	}
	return true
}

// quotePosix single-quotes arg; an embedded ' becomes '\''.
func quotePosix(arg string) string {
	if safeWord(arg) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

// quotePwsh single-quotes arg; an embedded ' is doubled.
func quotePwsh(arg string) string {
	if safeWord(arg) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", "''") + "'"
}

// quoteCmd double-quotes arg for cmd.exe; an embedded " is doubled. Inside
// quotes cmd treats & | < > ^ ( ) as literal text.
func quoteCmd(arg string) string {
	if safeWord(arg) {
		return arg
	}
	return `"` + strings.ReplaceAll(arg, `"`, `""`) + `"`
}

// Shell is a resolved shell executable.
type Shell struct {
	Kind ShellKind
	Path string
}

const windowsCmd = `C:\Windows\System32\cmd.exe`

// Shell resolves the configured shell; "auto" picks the platform default.
func (r *Resolver) Shell() (Shell, error) {
	if r.cfg.Shell != "" && r.cfg.Shell != config.ShellAuto {
		kind, _ := ParseShellKind(r.cfg.Shell)
		path, err := r.lookPath(r.cfg.Shell)
		if err != nil {
			return Shell{}, errors.ToolNotFound(r.cat, r.cfg.Shell, "shell")
		}
		return Shell{Kind: kind, Path: path}, nil
	}
	if r.goos == "windows" {
		return r.autoWindows()
	}
	return r.autoUnix()
}

func (r *Resolver) autoUnix() (Shell, error) {
	if env := r.getenv("SHELL"); env != "" && regularFile(env) {
		if kind, ok := ParseShellKind(env); ok && kind != Pwsh && kind != Cmd {
			return Shell{Kind: kind, Path: env}, nil
		}
	}
	for _, kind := range []ShellKind{Zsh, Bash, Sh} {
		if path, err := r.lookPath(string(kind)); err == nil {
			return Shell{Kind: kind, Path: path}, nil
		}
	}
	return Shell{}, errors.ToolNotFound(r.cat, "sh", "shell")
}

func (r *Resolver) autoWindows() (Shell, error) {
	for _, name := range []string{"pwsh", "powershell", "cmd"} {
		if path, err := r.lookPath(name); err == nil {
			kind, _ := ParseShellKind(name)
			return Shell{Kind: kind, Path: path}, nil
		}
	}
	if regularFile(windowsCmd) {
		return Shell{Kind: Cmd, Path: windowsCmd}, nil
	}
	return Shell{}, errors.ToolNotFound(r.cat, "cmd", "shell")
}
