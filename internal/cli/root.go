// Package cli provides the Cobra-based command tree for shnote.
//
// Arguments pass through the rationale gate before Cobra sees them: the gate
// checks that --what/--why precede execution-class subcommands, strips them,
// and hands the rest to the command tree.
package cli

import (
	"context"
	stderrors "errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wangnov/shnote/internal/build"
	"github.com/wangnov/shnote/internal/cli/admin"
	cliconfig "github.com/wangnov/shnote/internal/cli/config"
	"github.com/wangnov/shnote/internal/cli/execute"
	"github.com/wangnov/shnote/internal/cli/shared"
	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/executor"
	"github.com/wangnov/shnote/internal/gate"
	"github.com/wangnov/shnote/internal/i18n"
	"github.com/wangnov/shnote/internal/logging"
)

// NewRootCmd builds the command tree bound to env.
func NewRootCmd(env *shared.Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shnote",
		Short: "Run commands with a stated WHAT and WHY",
		Long: `shnote wraps shell, Python, Node.js and package-manager commands and
prints a WHAT/WHY preamble before running them, so every command an AI
agent composes carries a short, human-readable rationale.

--what and --why are required for run/py/node/pip/npm/npx and must come
before the subcommand. Other commands reject them.

Source: https://github.com/wangnov/shnote`,
		Example: `  # Run a shell command
  shnote --what "List files" --why "Inspect layout" run ls -la

  # Run inline Python
  shnote --what "Smoke test" --why "Verify fix" py -c 'print(1)'

  # Install agent rules for Claude Code in the current project
  shnote init claude --scope project`,
		Version:       build.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env.Log = logging.FromEnv()
			cmd.SetContext(logging.WithLogger(cmd.Context(), env.Log))
			env.Log.Debug("command",
				zap.String("name", cmd.CommandPath()),
				zap.String("lang", string(env.Lang)),
				zap.Bool("rationale", env.Rationale != nil))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			env.Sync()
		},
	}
	rootCmd.SetVersionTemplate("shnote {{.Version}}\n")

	shared.AddGroups(rootCmd)
	rootCmd.SetHelpCommandGroupID(shared.GroupMaintenance)

	// The gate removes these before parsing; they are declared so help and
	// shell completion know about them.
	rootCmd.PersistentFlags().String("what", "", "What the command does (before the subcommand)")
	rootCmd.PersistentFlags().String("why", "", "Why the command is run (before the subcommand)")
	rootCmd.PersistentFlags().String("lang", "", "Message language: zh or en")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine(), env.Cat.T(i18n.HintSeeHelp))
	})

	rootCmd.SetIn(env.Streams.Stdin)
	rootCmd.SetOut(env.Streams.Stdout)
	rootCmd.SetErr(env.Streams.Stderr)

	execute.Register(rootCmd, env)
	cliconfig.Register(rootCmd, env)
	admin.Register(rootCmd, env)
	return rootCmd
}

// Execute runs shnote with the process arguments and standard streams and
// reports any error on stderr.
func Execute() error {
	env := shared.NewEnv(executor.StdStreams())
	env.SystemLocale = i18n.SystemLocale
	err := Run(context.Background(), env, os.Args[1:], os.Getenv)
	Report(env, err)
	env.Sync()
	return err
}

// Run loads configuration, selects the message language, passes args through
// the rationale gate and executes the resulting command.
func Run(ctx context.Context, env *shared.Env, args []string, getenv func(string) string) error {
	env.LoadStore(config.DefaultPath())
	env.Lang = i18n.Detect(gate.LangFlag(args), env.ConfiguredLanguage(), getenv, env.SystemLocale)
	env.Cat = i18n.New(env.Lang)

	inv, err := gate.Inspect(env.Cat, args)
	if err != nil {
		return err
	}
	env.Rationale = inv.Rationale

	rootCmd := NewRootCmd(env)
	rootCmd.SetArgs(inv.Forward)
	return rootCmd.ExecuteContext(ctx)
}

// Report prints err to stderr unless it is a silent exit.
func Report(env *shared.Env, err error) {
	if err == nil {
		return
	}
	var exitErr *shared.ExitError
	if stderrors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	cliErr := errors.AsCLIError(err)
	if cliErr == nil {
		cliErr = errors.Wrap(err, errors.Runtime)
	}
	errors.FprintError(env.Streams.Stderr, cliErr)
}
