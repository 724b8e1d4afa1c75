package admin

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/cli/shared"
	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/executor"
	"github.com/wangnov/shnote/internal/health"
	"github.com/wangnov/shnote/internal/i18n"
)

func newDoctorCmd(env *shared.Env) *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Aliases: []string{"doc"},
		Short:   "Check the tools shnote runs (doc)",
		Long: `Resolve every tool shnote can launch and print its path and version:
python, node, the shell used by run, pueue and pueued.

Exits with status 1 if any check fails.`,
		Example: `  shnote doctor
  shnote doctor && shnote init claude`,
		GroupID: shared.GroupMaintenance,
		Args:    shared.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.Config()
			if err != nil {
				return err
			}
			binDir, err := config.BinDir()
			if err != nil {
				binDir = ""
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, env.Cat.T(i18n.DoctorHeader))
			report := health.RunHealthChecks(cmd.Context(), executor.NewResolver(env.Cat, cfg, binDir))
			fmt.Fprint(out, health.FormatReport(report))

			if failed := report.Failed(); failed > 0 {
				fmt.Fprintln(out, env.Cat.T(i18n.DoctorFailed, failed))
				return shared.NewExitError(shared.ExitFailure)
			}
			fmt.Fprintln(out, env.Cat.T(i18n.DoctorAllOK))
			return nil
		},
	}
}
