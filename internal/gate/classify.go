package gate

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/i18n"
)

// ScriptSource holds the mutually exclusive py/node source flags.
type ScriptSource struct {
	Code    string
	HasCode bool
	File    string
	Stdin   bool
}

func (s ScriptSource) count() int {
	n := 0
	if s.HasCode {
		n++
	}
	if s.File != "" {
		n++
	}
	if s.Stdin {
		n++
	}
	return n
}

// Request is a subcommand with its own parsed flags and trailing arguments.
type Request struct {
	Command string
	Source  ScriptSource
	Args    []string
	// Input supplies program text for --stdin.
	Input io.Reader
}

// Classify maps a request to exactly one Variant. It reads Input for
// --stdin and checks that a script file exists, but never looks inside the
// command or script text.
func Classify(cat *i18n.Catalog, req Request) (Variant, error) {
	switch req.Command {
	case "run":
		return classifyRun(cat, req.Args)
	case "py":
		return classifyScript(cat, Python, req)
	case "node":
		return classifyScript(cat, Node, req)
	case "pip":
		return PipPassthrough{Args: req.Args}, nil
	case "npm":
		return NpmPassthrough{Args: req.Args}, nil
	case "npx":
		return NpxPassthrough{Args: req.Args}, nil
	}
	if IsManagement(req.Command) {
		return NonExecution{Command: req.Command}, nil
	}
	return nil, errors.UnknownCommand(cat, req.Command)
}

func classifyRun(cat *i18n.Catalog, args []string) (Variant, error) {
	if len(args) == 0 {
		return nil, errors.NewArgumentErrorWithUsage(
			cat.T(i18n.ErrRunEmpty),
			`shnote --what "<what>" --why "<why>" run <command> [args...]`)
	}
	switch args[0] {
	case "pueue", "pueued":
		return PueuePassthrough{Binary: args[0], Args: args[1:]}, nil
	}
	return Shell{Command: args}, nil
}

func classifyScript(cat *i18n.Catalog, interp Interpreter, req Request) (Variant, error) {
	name := scriptName(interp)
	if req.Source.count() != 1 {
		return nil, errors.NewArgumentErrorWithUsage(
			cat.T(i18n.ErrScriptSource, name),
			fmt.Sprintf(`shnote --what "<what>" --why "<why>" %s -c '<code>' | -f <file> | --stdin`, name))
	}

	switch {
	case req.Source.HasCode:
		return ScriptInline{Interpreter: interp, Code: req.Source.Code, Args: req.Args}, nil
	case req.Source.File != "":
		path, err := checkScriptFile(cat, req.Source.File)
		if err != nil {
			return nil, err
		}
		return ScriptFile{Interpreter: interp, Path: path, Args: req.Args}, nil
	default:
		script, err := readScript(cat, req.Input)
		if err != nil {
			return nil, err
		}
		return ScriptStdin{Interpreter: interp, Script: script, Args: req.Args}, nil
	}
}

// checkScriptFile verifies the file is a readable regular file. The path is
// returned as given so the child sees the same name the user typed.
func checkScriptFile(cat *i18n.Catalog, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.FileNotFound(cat, path, err)
	}
	if info.IsDir() {
		return "", errors.FileNotFound(cat, path, fmt.Errorf("%s is a directory", filepath.Clean(path)))
	}
	f, err := os.Open(path)
	if err != nil {
		return "", errors.FileNotFound(cat, path, err)
	}
	f.Close()
	return path, nil
}

func readScript(cat *i18n.Catalog, r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, errors.NewArgumentError(cat.T(i18n.ErrEmptyStdin))
	}
	script, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Runtime, cat.T(i18n.ErrEmptyStdin))
	}
	if len(bytes.TrimSpace(script)) == 0 {
		return nil, errors.NewArgumentError(cat.T(i18n.ErrEmptyStdin))
	}
	return script, nil
}
