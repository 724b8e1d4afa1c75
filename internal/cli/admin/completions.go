package admin

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/blockmerge"
	"github.com/wangnov/shnote/internal/cli/shared"
	"github.com/wangnov/shnote/internal/completion"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/i18n"
)

func newCompletionsCmd(env *shared.Env, d deps) *cobra.Command {
	var install bool

	cmd := &cobra.Command{
		Use:     "completions <" + strings.Join(completion.ShellNames(), "|") + ">",
		Aliases: []string{"completion"},
		Short:   "Generate or install shell completions",
		Long: `Print the completion script for a shell, or with --install wire it into
the shell's startup file.

bash, zsh, powershell and elvish get a marked block in their rc file that
sources 'shnote completions <shell>'; the file is backed up before it is
changed and re-running is a no-op. fish gets its own completions file.`,
		Example: `  shnote completions zsh > "${fpath[1]}/_shnote"
  shnote completions bash --install
  shnote completions fish --install`,
		GroupID:   shared.GroupMaintenance,
		ValidArgs: completion.ShellNames(),
		Args:      shared.UsageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := completion.ParseShell(args[0])
			if err != nil {
				return errors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
			}
			root := cmd.Root()
			if !install {
				return completion.Generate(root, shell, cmd.OutOrStdout())
			}

			home, err := d.home()
			if err != nil {
				return errors.Wrap(err, errors.Runtime)
			}
			res, err := completion.Install(root, shell, home)
			if err != nil {
				return shared.FileError(env.Cat, err)
			}

			out := cmd.OutOrStdout()
			if res.Action == blockmerge.Unchanged {
				fmt.Fprintln(out, env.Cat.T(i18n.CompletionUnchanged, res.ConfigPath))
				return nil
			}
			fmt.Fprintln(out, env.Cat.T(i18n.CompletionInstalled, res.ConfigPath))
			if res.BackupPath != "" {
				fmt.Fprintln(out, env.Cat.T(i18n.CompletionBackup, res.BackupPath))
			}
			fmt.Fprintln(out, env.Cat.T(i18n.CompletionRestart))
			return nil
		},
	}

	cmd.Flags().BoolVar(&install, "install", false, "Add the completion hook to the shell's startup file")
	return cmd
}
