package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wangnov/shnote/internal/blockmerge"
	"github.com/wangnov/shnote/internal/cli/shared"
	cfgpkg "github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/executor"
	"github.com/wangnov/shnote/internal/i18n"
	"github.com/wangnov/shnote/internal/logging"
	"github.com/wangnov/shnote/internal/rules"
)

func newInitCmd(env *shared.Env) *cobra.Command {
	var scopeFlag string

	targetNames := make([]string, 0, len(rules.Targets()))
	for _, t := range rules.Targets() {
		targetNames = append(targetNames, t.Name)
	}

	cmd := &cobra.Command{
		Use:   "init <" + strings.Join(targetNames, "|") + ">",
		Short: "Install shnote rules for an AI coding agent",
		Long: `Install the shnote usage rules for an AI coding agent.

  claude  Claude Code >= ` + rules.MinClaudeVersion + ` gets .claude/rules/shnote.md (replaced
          in full); older or undetected versions get a marked block in
          .claude/CLAUDE.md
  codex   marked block in .codex/AGENTS.md
  gemini  marked block in .gemini/GEMINI.md

Marked blocks are replaced in place on every run; text outside them is kept.
The rules include the pueue section only when pueue and pueued are available.`,
		Example: `  # User scope (~/.claude, ~/.codex, ~/.gemini)
  shnote init claude

  # Current project only
  shnote init codex --scope project
  shnote init gemini -s p`,
		GroupID:   shared.GroupConfiguration,
		Args:      shared.UsageArgs(cobra.ExactArgs(1)),
		ValidArgs: targetNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := rules.ParseTarget(args[0])
			if err != nil {
				return errors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
			}
			scope, err := rules.ParseScope(scopeFlag)
			if err != nil {
				return errors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
			}
			root, err := scope.Root()
			if err != nil {
				return errors.Wrap(err, errors.Runtime)
			}
			cfg, err := env.Config()
			if err != nil {
				return err
			}

			installer := &rules.Installer{
				Root:      root,
				Lang:      env.Lang,
				WithPueue: pueueAvailable(env.Cat, cfg),
			}
			logging.FromContext(cmd.Context()).Debug("installing rules",
				zap.String("target", target.Name),
				zap.String("scope", string(scope)),
				zap.String("root", root),
				zap.Bool("pueue", installer.WithPueue))

			outcome, err := installer.Install(cmd.Context(), target)
			if err != nil {
				return shared.FileError(env.Cat, err)
			}
			printOutcome(cmd.OutOrStdout(), env.Cat, target, root, outcome)
			return nil
		},
	}
	cmd.Flags().StringVarP(&scopeFlag, "scope", "s", string(rules.ScopeUser),
		"Where to install: "+strings.Join(rules.ScopeNames, ", "))
	_ = cmd.RegisterFlagCompletionFunc("scope", cobra.FixedCompletions(rules.ScopeNames, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

// pueueAvailable reports whether both pueue binaries resolve.
func pueueAvailable(cat *i18n.Catalog, cfg cfgpkg.Config) bool {
	binDir, err := cfgpkg.BinDir()
	if err != nil {
		binDir = ""
	}
	r := executor.NewResolver(cat, cfg, binDir)
	for _, bin := range []string{"pueue", "pueued"} {
		if _, err := r.Pueue(bin); err != nil {
			return false
		}
	}
	return true
}

func printOutcome(out io.Writer, cat *i18n.Catalog, target rules.Target, root string, o rules.Outcome) {
	if target.Name == rules.Claude.Name {
		if o.ClaudeVersion != nil {
			fmt.Fprintln(out, cat.T(i18n.InitClaudeVersion, o.ClaudeVersion.String()))
		}
		if o.Legacy {
			fmt.Fprintln(out, cat.T(i18n.InitClaudeLegacy, rules.MinClaudeVersion, target.MemoryFile(root)))
		}
	}

	if o.Target.Action == blockmerge.Unchanged {
		fmt.Fprintln(out, cat.T(i18n.InitUnchanged, o.Target.Path))
	} else {
		fmt.Fprintln(out, cat.T(i18n.InitWritten, o.Target.Path))
	}

	if o.LegacyCleanup != nil {
		fmt.Fprintln(out, cat.T(i18n.InitLegacyRemoved, o.LegacyCleanup.Path))
	}
}
