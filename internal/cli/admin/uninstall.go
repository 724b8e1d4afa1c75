package admin

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/cli/shared"
	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/i18n"
	"github.com/wangnov/shnote/internal/rules"
	"github.com/wangnov/shnote/internal/uninstall"
)

func newUninstallCmd(env *shared.Env, d deps) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove shnote, its config and the pueue binaries it installed",
		Long: `Remove the ~/.shnote data directory (config and setup binaries) and then
the shnote binary itself.

Rules written by 'shnote init' and the PATH entry for the shnote bin
directory are listed but left in place; remove them by hand.`,
		Example: `  shnote uninstall
  shnote uninstall --yes`,
		GroupID: shared.GroupMaintenance,
		Args:    shared.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			binary, err := uninstall.DetectBinaryLocation()
			if err != nil {
				return errors.Wrap(err, errors.Runtime)
			}
			dataDir, err := config.DataDir()
			if err != nil {
				return errors.Wrap(err, errors.Runtime)
			}
			home, err := d.home()
			if err != nil {
				return errors.Wrap(err, errors.Runtime)
			}
			return runUninstall(cmd, env, uninstall.GetUninstallTargets(binary, dataDir), rules.Mentions(home), yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func runUninstall(cmd *cobra.Command, env *shared.Env, targets []uninstall.UninstallTarget, mentions []string, yes bool) error {
	cat := env.Cat
	out := cmd.OutOrStdout()

	var existing []uninstall.UninstallTarget
	for _, t := range targets {
		if t.Exists {
			existing = append(existing, t)
		}
	}
	if len(existing) == 0 {
		fmt.Fprintln(out, cat.T(i18n.UninstallNothing))
		return nil
	}

	fmt.Fprintln(out, cat.T(i18n.UninstallWillRemove))
	for _, t := range existing {
		if t.Type == uninstall.TypeDataDir {
			fmt.Fprintf(out, "  - %s (%s)\n", t.Path, cat.T(i18n.UninstallConfigData))
		} else {
			fmt.Fprintf(out, "  - %s\n", t.Path)
		}
	}
	writeManualSteps(out, cat, mentions)

	if !yes && !shared.PromptYesNo(cmd.InOrStdin(), out, cat.T(i18n.UninstallConfirm)) {
		fmt.Fprintln(out, cat.T(i18n.UninstallCancelled))
		return nil
	}

	for _, t := range existing {
		fmt.Fprintln(out, cat.T(i18n.UninstallRemoving, t.Path))
	}
	failed := 0
	for _, res := range uninstall.RemoveTargets(existing) {
		switch {
		case !res.Success():
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %v\n", res.Target.Path, res.Error)
		case res.Deferred:
			fmt.Fprintln(out, cat.T(i18n.UninstallDeferred, res.Target.Path))
		}
	}
	if failed > 0 {
		return errors.NewRuntimeError(cat.T(i18n.ErrUninstallFailed, failed))
	}

	fmt.Fprintln(out, cat.T(i18n.UninstallSuccess))
	return nil
}

func writeManualSteps(out io.Writer, cat *i18n.Catalog, mentions []string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, cat.T(i18n.UninstallManual))
	if binDir, err := config.BinDir(); err == nil {
		fmt.Fprintf(out, "  - %s (%s)\n", cat.T(i18n.UninstallPathEntry), binDir)
	}
	if len(mentions) > 0 {
		fmt.Fprintf(out, "  - %s:\n", cat.T(i18n.UninstallRulesFiles))
		for _, path := range mentions {
			fmt.Fprintf(out, "      %s\n", path)
		}
	}
	fmt.Fprintln(out)
}
