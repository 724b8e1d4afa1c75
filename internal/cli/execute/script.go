package execute

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/cli/shared"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/gate"
)

// errHelp is returned by parseScriptArgs when -h/--help comes before any
// script argument.
var errHelp = stderrors.New("help requested")

func newScriptCmd(env *shared.Env, name string, interp gate.Interpreter) *cobra.Command {
	lang := "Python"
	code := `print("hello")`
	if interp == gate.Node {
		lang = "Node.js"
		code = `console.log("hello")`
	}

	cmd := &cobra.Command{
		Use:   name + " (-c <code> | -f <file> | --stdin) [args...]",
		Short: "Run " + lang + " code inline, from a file or from stdin",
		Long: fmt.Sprintf(`Run %s code with the configured interpreter.

Exactly one of -c/--code, -f/--file or --stdin is required and must come
first. Everything after it is passed to the script as arguments, including
arguments that look like flags.

--stdin reads the whole program from standard input (a quoted heredoc
works well) and runs it as "%s -".`, lang, interp),
		Example: fmt.Sprintf(`  shnote --what "Smoke test" --why "Verify fix" %[1]s -c '%[2]s'
  shnote --what "Run script" --why "Regenerate data" %[1]s -f build.%[3]s --verbose
  shnote --what "Inline script" --why "One-off check" %[1]s --stdin <<'EOF'
  %[2]s
  EOF`, name, code, extension(interp)),
		GroupID: shared.GroupExecution,
		// Script arguments may look like flags, so parsing stops at the
		// first token that is not a source flag. See parseScriptArgs.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, rest, err := parseScriptArgs(args)
			if stderrors.Is(err, errHelp) {
				return cmd.Help()
			}
			if err != nil {
				return errors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
			}
			return execute(cmd, env, gate.Request{Command: name, Source: src, Args: rest})
		},
	}
	cmd.Flags().StringP("code", "c", "", "program text")
	cmd.Flags().StringP("file", "f", "", "script file")
	cmd.Flags().Bool("stdin", false, "read the program from standard input")
	return cmd
}

func extension(interp gate.Interpreter) string {
	if interp == gate.Node {
		return "js"
	}
	return "py"
}

// parseScriptArgs consumes the leading source flags and returns the remaining
// arguments untouched. A "--" ends the source flags and is dropped.
func parseScriptArgs(args []string) (gate.ScriptSource, []string, error) {
	var src gate.ScriptSource
	i := 0
	for i < len(args) {
		tok := args[i]
		if tok == "--" {
			i++
			break
		}
		name, value, inline := strings.Cut(tok, "=")
		if attached, ok := attachedShortValue(tok); ok {
			name, value, inline = tok[:2], attached, true
		}
		takeValue := func() (string, error) {
			if inline {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("flag needs an argument: %s", name)
			}
			i++
			return args[i], nil
		}

		switch name {
		case "-c", "--code":
			v, err := takeValue()
			if err != nil {
				return src, nil, err
			}
			src.Code, src.HasCode = v, true
		case "-f", "--file":
			v, err := takeValue()
			if err != nil {
				return src, nil, err
			}
			src.File = v
		case "--stdin":
			if inline {
				return src, nil, fmt.Errorf("--stdin does not take a value")
			}
			src.Stdin = true
		case "-h", "--help":
			return src, nil, errHelp
		default:
			return src, args[i:], nil
		}
		i++
	}
	return src, args[i:], nil
}

// attachedShortValue splits the -c<code> and -f<path> forms.
func attachedShortValue(tok string) (string, bool) {
	if len(tok) <= 2 || tok[2] == '=' {
		return "", false
	}
	switch tok[:2] {
	case "-c", "-f":
		return tok[2:], true
	}
	return "", false
}
