package admin

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/build"
	"github.com/wangnov/shnote/internal/cli/shared"
	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/executor"
	"github.com/wangnov/shnote/internal/i18n"
	"github.com/wangnov/shnote/internal/uninstall"
)

func newInfoCmd(env *shared.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show version, paths and installed components",
		Example: `  shnote info
  shnote --lang zh info`,
		GroupID: shared.GroupMaintenance,
		Args:    shared.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			writeInfo(cmd.OutOrStdout(), env)
			return nil
		},
	}
}

// writeInfo never fails: anything it cannot determine is shown as unknown.
func writeInfo(out io.Writer, env *shared.Env) {
	cat := env.Cat
	unknown := cat.T(i18n.InfoUnknown)
	orUnknown := func(s string, err error) string {
		if err != nil || s == "" {
			return unknown
		}
		return s
	}

	fmt.Fprintf(out, "shnote %s (%s)\n", build.Version, build.Platform())
	if build.Commit != "unknown" {
		fmt.Fprintf(out, "commit %s, built %s\n", build.Commit, build.BuildDate)
	}

	fmt.Fprintf(out, "\n%s:\n", cat.T(i18n.InfoPaths))
	fmt.Fprintf(out, "  %s: %s\n", cat.T(i18n.InfoInstallPath), orUnknown(uninstall.DetectBinaryLocation()))
	fmt.Fprintf(out, "  %s: %s\n", cat.T(i18n.InfoConfigPath), orUnknown(config.DefaultPath()))
	fmt.Fprintf(out, "  %s: %s\n", cat.T(i18n.InfoDataPath), orUnknown(config.DataDir()))

	// A broken config file must not hide the components.
	cfg, err := env.Config()
	if err != nil {
		cfg = config.Default()
	}
	binDir, err := config.BinDir()
	if err != nil {
		binDir = ""
	}
	resolver := executor.NewResolver(cat, cfg, binDir)

	fmt.Fprintf(out, "\n%s:\n", cat.T(i18n.InfoComponents))
	for _, bin := range []string{"pueue", "pueued"} {
		if path, err := resolver.Pueue(bin); err == nil {
			fmt.Fprintf(out, "  %s: %s (%s)\n", bin, cat.T(i18n.InfoInstalled), path)
		} else {
			fmt.Fprintf(out, "  %s: %s %s\n", bin, cat.T(i18n.InfoNotInstalled), cat.T(i18n.InfoRunSetup))
		}
	}
}
