package admin

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/build"
	"github.com/wangnov/shnote/internal/cli/shared"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/i18n"
	"github.com/wangnov/shnote/internal/progress"
	"github.com/wangnov/shnote/internal/rules"
	"github.com/wangnov/shnote/internal/update"
)

func newUpdateCmd(env *shared.Env, d deps) *cobra.Command {
	var check, force bool

	cmd := &cobra.Command{
		Use:     "update",
		Aliases: []string{"upgrade"},
		Short:   "Update shnote to the latest release",
		Long: `Check GitHub for the latest shnote release and install it in place.

The download is verified against the published SHA-256 checksum. The
previous binary is kept as <binary>.old until the next update.

Afterwards the shnote rules installed for your agents are checked: copies
from an older release can be refreshed, and hand-edited copies are shown
as a diff before anything is overwritten.`,
		Example: `  shnote update --check
  shnote update
  shnote update --force`,
		GroupID: shared.GroupMaintenance,
		Args:    shared.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, env, d, check, force)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Only check whether an update is available")
	cmd.Flags().BoolVar(&force, "force", false, "Install even when up to date or running a development build")
	return cmd
}

func runUpdate(cmd *cobra.Command, env *shared.Env, d deps, check, force bool) error {
	cat := env.Cat
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	src := d.source()

	fmt.Fprintln(out, cat.T(i18n.UpdateChecking))
	if proxy := src.Proxy(); proxy != "" {
		fmt.Fprintf(out, "  %s: %s\n", cat.T(i18n.UpdateUsingProxy), proxy)
	}

	result, err := src.Check(ctx, build.Version)
	if err != nil {
		return downloadError(cat, err)
	}
	fmt.Fprintf(out, "  %s: %s\n", cat.T(i18n.UpdateCurrentVersion), result.Current)
	fmt.Fprintf(out, "  %s: %s\n", cat.T(i18n.UpdateLatestVersion), result.Latest)

	if !result.UpdateAvailable && !force {
		fmt.Fprintln(out, cat.T(i18n.UpdateAlreadyLatest))
		if check {
			return nil
		}
		exe, err := os.Executable()
		if err != nil {
			return errors.Wrap(err, errors.Runtime)
		}
		return checkRules(cmd, env, d, exe, false)
	}
	if check {
		fmt.Fprintln(out, cat.T(i18n.UpdateAvailable, result.Latest))
		return nil
	}
	if build.IsDevBuild() && !force {
		return errors.NewRuntimeError(cat.T(i18n.ErrDevBuild))
	}

	installer, err := d.installer()
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	if err := installer.CheckWritePermission(); err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	if err := installRelease(cmd, env, src, installer, result.Latest); err != nil {
		return err
	}
	fmt.Fprintln(out, cat.T(i18n.UpdateSuccess, result.Latest))

	return checkRules(cmd, env, d, installer.ExecutablePath(), true)
}

// installRelease downloads, verifies and installs release v.
func installRelease(cmd *cobra.Command, env *shared.Env, src *update.Source, installer *update.Installer, v *update.Version) error {
	cat := env.Cat
	ctx := cmd.Context()

	asset, err := src.AssetName()
	if err != nil {
		return downloadError(cat, update.ErrUnsupportedPlatform)
	}
	binaryURL, err := src.BinaryURL(v)
	if err != nil {
		return downloadError(cat, err)
	}
	checksumURL, err := src.ChecksumURL(v)
	if err != nil {
		return downloadError(cat, err)
	}

	display := newDisplay(cmd.ErrOrStderr())
	steps := []progress.StepInfo{
		{Name: cat.T(i18n.UpdateDownloading, asset), Number: 1, Total: 3},
		{Name: cat.T(i18n.UpdateVerifying), Number: 2, Total: 3},
		{Name: cat.T(i18n.UpdateInstalling), Number: 3, Total: 3},
	}

	// The download is staged next to the binary so the final rename stays
	// on one filesystem.
	var tmp string
	run := []func() error{
		func() (err error) {
			tmp, err = src.Download(ctx, binaryURL, installer.Dir(), nil)
			return err
		},
		func() error {
			expected, err := src.FetchChecksum(ctx, checksumURL)
			if err != nil {
				return err
			}
			return update.VerifyChecksum(tmp, asset, expected)
		},
		func() error {
			if err := os.Chmod(tmp, 0o755); err != nil {
				return err
			}
			return installer.Install(tmp)
		},
	}
	defer func() {
		if tmp != "" {
			os.Remove(tmp)
		}
	}()

	for i, step := range steps {
		if err := display.Start(step); err != nil {
			return err
		}
		if err := run[i](); err != nil {
			display.Fail(step, err)
			return downloadError(cat, err)
		}
		display.Complete(step, "")
	}
	return nil
}

// checkRules compares the rules installed under the user's home with the
// templates and offers to refresh them through exe. updated reports whether
// exe was just replaced by a newer release: its templates may differ from
// the ones compiled into this process, so pristine copies are offered a
// refresh instead of being reported current.
func checkRules(cmd *cobra.Command, env *shared.Env, d deps, exe string, updated bool) error {
	cat := env.Cat
	out := cmd.OutOrStdout()

	home, err := d.home()
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	installed, err := rules.FindInstalled(home)
	if err != nil {
		return shared.FileError(cat, err)
	}
	if len(installed) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cat.T(i18n.UpdateRulesChecking))

	done := make(map[string]bool)
	for _, inst := range installed {
		if done[inst.Target.Name] {
			continue
		}

		drift := rules.Compare(inst.Body)
		var question string
		switch {
		case drift.Status == rules.Modified:
			fmt.Fprintln(out, cat.T(i18n.UpdateRulesModified, inst.Path))
			diff, err := rules.Diff(drift.Base.Body, inst.Body,
				cat.T(i18n.UpdateRulesDiffBase), cat.T(i18n.UpdateRulesDiffCurrent)+" "+filepath.Base(inst.Path))
			if err != nil {
				return errors.Wrap(err, errors.Runtime)
			}
			fmt.Fprint(out, diff)
			question = cat.T(i18n.UpdateRulesConfirmOverwrite)
		case updated:
			fmt.Fprintln(out, cat.T(i18n.UpdateRulesOutdated, inst.Path))
			question = cat.T(i18n.UpdateRulesConfirmUpdate)
		default:
			fmt.Fprintln(out, cat.T(i18n.UpdateRulesCurrent, inst.Path))
			continue
		}

		done[inst.Target.Name] = true
		if !shared.PromptYesNo(cmd.InOrStdin(), out, question) {
			fmt.Fprintln(out, cat.T(i18n.UpdateRulesSkipped))
			continue
		}
		if err := d.reinit(cmd.Context(), exe, string(drift.Base.Lang), inst.Target.Name, out); err != nil {
			return errors.Wrap(err, errors.Runtime)
		}
	}
	return nil
}
