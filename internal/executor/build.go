package executor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/gate"
)

// pythonEnv makes Python read and write UTF-8 regardless of the locale.
var pythonEnv = []string{"PYTHONUTF8=1", "PYTHONIOENCODING=utf-8"}

// Build resolves every tool the variant needs and returns the child to spawn.
// It never starts a process.
func (r *Resolver) Build(v gate.Variant) (ChildSpec, error) {
	switch v := v.(type) {
	case gate.Shell:
		return r.buildShell(v)
	case gate.ScriptInline:
		return r.buildScript(v.Interpreter, StdinInherit, nil, append([]string{inlineFlag(v.Interpreter), v.Code}, v.Args...))
	case gate.ScriptFile:
		return r.buildScript(v.Interpreter, StdinInherit, nil, append([]string{v.Path}, v.Args...))
	case gate.ScriptStdin:
		// "-" makes both interpreters read the program from stdin while keeping
		// the remaining arguments in sys.argv / process.argv.
		return r.buildScript(v.Interpreter, StdinPiped, v.Script, append([]string{"-"}, v.Args...))
	case gate.PipPassthrough:
		python, err := r.Python()
		if err != nil {
			return ChildSpec{}, err
		}
		return ChildSpec{
			Program: python,
			Args:    append([]string{"-m", "pip"}, v.Args...),
			Env:     pythonEnv,
			Tool:    "pip",
		}, nil
	case gate.NpmPassthrough:
		return r.buildNodeTool("npm", v.Args)
	case gate.NpxPassthrough:
		return r.buildNodeTool("npx", v.Args)
	case gate.PueuePassthrough:
		path, err := r.Pueue(v.Binary)
		if err != nil {
			return ChildSpec{}, err
		}
		return ChildSpec{Program: path, Args: v.Args, Tool: v.Binary}, nil
	case gate.NonExecution:
		return ChildSpec{}, errors.New(errors.KindInternal, fmt.Sprintf("%s does not run a child process", v.Command))
	default:
		return ChildSpec{}, errors.New(errors.KindInternal, fmt.Sprintf("unhandled variant %T", v))
	}
}

// buildShell hands the run arguments to the shell as one command line that
// keeps each argument intact.
func (r *Resolver) buildShell(v gate.Shell) (ChildSpec, error) {
	sh, err := r.Shell()
	if err != nil {
		return ChildSpec{}, err
	}
	line := sh.Kind.CommandLine(v.Command)
	return ChildSpec{Program: sh.Path, Args: sh.Kind.CommandArgs(line), Tool: string(sh.Kind)}, nil
}

func (r *Resolver) buildScript(interp gate.Interpreter, stdin StdinSource, input []byte, args []string) (ChildSpec, error) {
	spec := ChildSpec{Args: args, Stdin: stdin, Input: input}
	var err error
	switch interp {
	case gate.Python:
		spec.Program, err = r.Python()
		spec.Env = pythonEnv
		spec.Tool = "python"
	case gate.Node:
		spec.Program, err = r.Node()
		spec.Tool = "node"
	}
	if err != nil {
		return ChildSpec{}, err
	}
	return spec, nil
}

func (r *Resolver) buildNodeTool(tool string, args []string) (ChildSpec, error) {
	path, err := r.NodeTool(tool)
	if err != nil {
		return ChildSpec{}, err
	}
	if r.goos == "windows" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".cmd", ".bat":
			// Batch shims only run through cmd.exe.
			return ChildSpec{Program: r.cmdExe(), Args: append([]string{"/C", path}, args...), Tool: tool}, nil
		}
	}
	return ChildSpec{Program: path, Args: args, Tool: tool}, nil
}

func (r *Resolver) cmdExe() string {
	if path, err := r.lookPath("cmd"); err == nil {
		return path
	}
	return windowsCmd
}

func inlineFlag(interp gate.Interpreter) string {
	if interp == gate.Node {
		return "-e"
	}
	return "-c"
}
