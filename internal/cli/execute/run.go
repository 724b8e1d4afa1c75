package execute

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wangnov/shnote/internal/announce"
	"github.com/wangnov/shnote/internal/cli/shared"
	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/executor"
	"github.com/wangnov/shnote/internal/gate"
	"github.com/wangnov/shnote/internal/logging"
)

func newRunCmd(env *shared.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run a command through the configured shell",
		Long: `Run a command through the configured shell.

A single argument is used as the command line itself, so pipes, redirections
and && work when the whole command is quoted as one argument. Several
arguments are each quoted for the shell and reach the program exactly as
given. Everything after "run" is passed on, including arguments that look
like flags.

"run pueue ..." and "run pueued ..." start the binaries installed by
"shnote setup" directly, without a shell.`,
		Example: `  shnote --what "List files" --why "Inspect layout" run ls -la
  shnote --what "Count files" --why "Size check" run 'ls | wc -l'
  shnote --what "Find usages" --why "Before rename" run grep -rn "old name" src
  shnote --what "Queue server" --why "Keep it running" run pueue add -- npm run dev`,
		GroupID:            shared.GroupExecution,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, env, gate.Request{Command: "run", Args: args})
		},
	}
}

// execute classifies req, resolves the tool, prints the preamble and runs the
// child. Every validation and resolution error surfaces before the preamble.
func execute(cmd *cobra.Command, env *shared.Env, req gate.Request) error {
	log := logging.FromContext(cmd.Context())

	cfg, err := env.Config()
	if err != nil {
		return err
	}
	if req.Input == nil {
		req.Input = cmd.InOrStdin()
	}
	variant, err := gate.Classify(env.Cat, req)
	if err != nil {
		return err
	}

	binDir, err := config.BinDir()
	if err != nil {
		log.Debug("no shnote bin directory", zap.Error(err))
		binDir = ""
	}
	spec, err := executor.NewResolver(env.Cat, cfg, binDir).Build(variant)
	if err != nil {
		return err
	}

	if env.Rationale != nil {
		if err := announce.New(env.Streams.Stdout, announce.OptionsFromConfig(cfg)).Emit(*env.Rationale); err != nil {
			return errors.Wrap(err, errors.Runtime)
		}
	}

	log.Debug("executing",
		zap.String("variant", variant.Name()),
		zap.String("program", spec.Program))
	res, err := executor.NewRunner(env.Cat, log, env.Streams).Run(spec)
	if err != nil {
		return err
	}
	return exitError(env, spec, res)
}

// exitError mirrors the child's exit. Ctrl-C stays silent: the user already
// knows, and the shell prints its own newline.
func exitError(env *shared.Env, spec executor.ChildSpec, res executor.Result) error {
	switch {
	case res.Signaled && !res.Interrupted:
		name := spec.Tool
		if name == "" {
			name = spec.Program
		}
		return errors.ChildSignaled(env.Cat, name, res.Signal, res.SignalName)
	case res.ExitCode != 0:
		return shared.NewExitError(res.ExitCode)
	default:
		return nil
	}
}
