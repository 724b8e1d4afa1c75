package execute

import (
	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/cli/shared"
	"github.com/wangnov/shnote/internal/gate"
)

type passthrough struct {
	name    string
	short   string
	long    string
	example string
}

var passthroughs = []passthrough{
	{
		name:  "pip",
		short: "Run pip for the configured Python",
		long: `Run "python -m pip" with the configured Python interpreter, so packages
land in the environment that "shnote py" uses. All arguments are passed on
untouched.`,
		example: `  shnote --what "Install requests" --why "HTTP client needed" pip install requests`,
	},
	{
		name:  "npm",
		short: "Run npm next to the configured Node.js",
		long: `Run npm from the directory of the configured node binary, falling back to
PATH. All arguments are passed on untouched.`,
		example: `  shnote --what "Install deps" --why "Project bootstrap" npm install`,
	},
	{
		name:  "npx",
		short: "Run npx next to the configured Node.js",
		long: `Run npx from the directory of the configured node binary, falling back to
PATH. All arguments are passed on untouched.`,
		example: `  shnote --what "Lint sources" --why "Catch errors early" npx eslint src/`,
	},
}

func newPassthroughCmd(env *shared.Env, p passthrough) *cobra.Command {
	return &cobra.Command{
		Use:                p.name + " [args...]",
		Short:              p.short,
		Long:               p.long,
		Example:            p.example,
		GroupID:            shared.GroupExecution,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, env, gate.Request{Command: p.name, Args: args})
		},
	}
}
