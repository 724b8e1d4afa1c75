// Package execute provides the execution-class commands: run, py, node, pip,
// npm and npx. Each one announces the rationale and then hands the terminal
// to a child process whose exit status becomes shnote's own.
package execute

import (
	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/cli/shared"
	"github.com/wangnov/shnote/internal/gate"
)

// Register adds the execution commands to the root command.
func Register(rootCmd *cobra.Command, env *shared.Env) {
	rootCmd.AddCommand(newRunCmd(env))
	rootCmd.AddCommand(newScriptCmd(env, "py", gate.Python))
	rootCmd.AddCommand(newScriptCmd(env, "node", gate.Node))
	for _, p := range passthroughs {
		rootCmd.AddCommand(newPassthroughCmd(env, p))
	}
}
