package admin

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/build"
	"github.com/wangnov/shnote/internal/cli/shared"
	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/i18n"
	"github.com/wangnov/shnote/internal/progress"
	"github.com/wangnov/shnote/internal/update"
)

func newSetupCmd(env *shared.Env, d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Install pueue and pueued into the shnote bin directory",
		Long: fmt.Sprintf(`Download the pinned pueue v%s release into ~/.shnote/bin.

Each binary is verified against its SHA-256 checksum before it is installed.
Binaries that are already present with the expected checksum are skipped.
Set %s to download through a GitHub mirror.`, update.PueueVersion, update.EnvProxy),
		Example: `  shnote setup
  GITHUB_PROXY=https://ghproxy.example shnote setup`,
		GroupID: shared.GroupMaintenance,
		Args:    shared.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			binDir, err := config.BinDir()
			if err != nil {
				return errors.Wrap(err, errors.Runtime)
			}
			return runSetup(cmd, env, d.source(), binDir)
		},
	}
}

func runSetup(cmd *cobra.Command, env *shared.Env, src *update.Source, binDir string) error {
	cat := env.Cat
	out := cmd.OutOrStdout()

	assets, err := src.PueueAssets()
	if err != nil {
		return downloadError(cat, err)
	}

	if proxy := src.Proxy(); proxy != "" {
		fmt.Fprintln(out, cat.T(i18n.SetupUsingProxy, proxy))
	}
	fmt.Fprintln(out, cat.T(i18n.SetupInstalling, update.PueueVersion, binDir))

	display := newDisplay(cmd.ErrOrStderr())
	for i, asset := range assets {
		step := progress.StepInfo{Name: cat.T(i18n.SetupDownloading, asset.Name), Number: i + 1, Total: len(assets)}
		if err := display.Start(step); err != nil {
			return err
		}
		path, skipped, err := src.InstallPueue(cmd.Context(), binDir, asset)
		if err != nil {
			display.Fail(step, err)
			return downloadError(cat, err)
		}
		display.StopSpinner()
		if skipped {
			fmt.Fprintln(out, cat.T(i18n.SetupUpToDate, asset.Binary, path))
		} else {
			fmt.Fprintln(out, cat.T(i18n.SetupInstalled, asset.Binary, path))
		}
	}

	if !inPath(binDir, os.Getenv("PATH")) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cat.T(i18n.SetupPathHint))
		writePathHint(out, binDir, runtime.GOOS)
	}
	fmt.Fprintln(out, cat.T(i18n.SetupComplete))
	return nil
}

// inPath reports whether dir is one of the entries of pathList.
func inPath(dir, pathList string) bool {
	want := filepath.Clean(dir)
	for _, entry := range filepath.SplitList(pathList) {
		if entry != "" && filepath.Clean(entry) == want {
			return true
		}
	}
	return false
}

func writePathHint(w io.Writer, dir, goos string) {
	if goos == "windows" {
		fmt.Fprintf(w, "  setx PATH \"%%PATH%%;%s\"\n", dir)
		return
	}
	fmt.Fprintf(w, "  export PATH=\"%s:$PATH\"\n", dir)
}

// downloadError localizes the failures of release downloads.
func downloadError(cat *i18n.Catalog, err error) error {
	var mismatch *update.ChecksumMismatchError
	switch {
	case stderrors.As(err, &mismatch):
		wrapped := errors.Wrap(err, errors.Runtime)
		wrapped.Message = cat.T(i18n.ErrChecksumMismatch, mismatch.Name, mismatch.Expected, mismatch.Actual)
		return wrapped
	case stderrors.Is(err, update.ErrUnsupportedPlatform):
		wrapped := errors.Wrap(err, errors.Prerequisite)
		wrapped.Message = cat.T(i18n.ErrUnsupportedPlatform, build.Platform())
		return wrapped
	default:
		return errors.Wrap(err, errors.Runtime)
	}
}
