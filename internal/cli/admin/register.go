// Package admin provides maintenance commands for shnote.
// Includes: setup, doctor, info, update, uninstall, completions
package admin

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/cli/shared"
	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/progress"
	"github.com/wangnov/shnote/internal/update"
)

// deps are the outside-world hooks of the maintenance commands.
type deps struct {
	// source returns the release source for shnote and pueue downloads.
	source func() *update.Source
	// installer returns the installer replacing the running binary.
	installer func() (*update.Installer, error)
	// home returns the directory holding user-scope rules and rc files.
	home func() (string, error)
	// reinit re-runs `init` for a target through the installed binary, so
	// the rules come from the version that was just installed.
	reinit func(ctx context.Context, exe, lang, target string, out io.Writer) error
}

func defaultDeps() deps {
	return deps{
		source: func() *update.Source {
			return update.NewSource(nil, os.Getenv(update.EnvProxy))
		},
		installer: update.NewInstaller,
		home:      config.HomeDir,
		reinit:    reinitRules,
	}
}

func reinitRules(ctx context.Context, exe, lang, target string, out io.Writer) error {
	cmd := exec.CommandContext(ctx, exe, "--lang", lang, "init", target)
	cmd.Stdout = out
	cmd.Stderr = out
	return cmd.Run()
}

// Register adds all maintenance commands to the root command.
func Register(rootCmd *cobra.Command, env *shared.Env) {
	register(rootCmd, env, defaultDeps())
}

func register(rootCmd *cobra.Command, env *shared.Env, d deps) {
	// Cobra's default completion command is replaced by `completions`.
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newSetupCmd(env, d))
	rootCmd.AddCommand(newDoctorCmd(env))
	rootCmd.AddCommand(newInfoCmd(env))
	rootCmd.AddCommand(newUpdateCmd(env, d))
	rootCmd.AddCommand(newUninstallCmd(env, d))
	rootCmd.AddCommand(newCompletionsCmd(env, d))
}

// newDisplay returns a progress display on w, animated only when w is a terminal.
func newDisplay(w io.Writer) *progress.Display {
	var caps progress.TerminalCapabilities
	if f, ok := w.(*os.File); ok {
		caps = progress.DetectTerminalCapabilities(f)
	}
	return progress.NewDisplay(w, caps)
}
