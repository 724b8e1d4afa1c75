package config

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/cli/shared"
	cfgpkg "github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/i18n"
)

func newConfigCmd(env *shared.Env) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View and change shnote settings",
		Long: `View and change shnote settings.

Settings live in ~/.shnote/config.yaml inside a marked block that "config set"
and "config reset" rewrite. Anything outside the block is left alone.
SHNOTE_CFG_<KEY> environment variables override the file, e.g.
SHNOTE_CFG_PYTHON=/usr/bin/python3.11.`,
		Example: `  shnote config list
  shnote config get python
  shnote config set shell bash
  shnote config set output quiet
  shnote config reset`,
		GroupID: shared.GroupConfiguration,
	}

	configCmd.AddCommand(newListCmd(env))
	configCmd.AddCommand(newGetCmd(env))
	configCmd.AddCommand(newSetCmd(env))
	configCmd.AddCommand(newResetCmd(env))
	configCmd.AddCommand(newPathCmd(env))
	return configCmd
}

func newListCmd(env *shared.Env) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every setting with its effective value",
		Args:  shared.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := env.Store()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := store.JSON()
				if err != nil {
					return errors.Wrap(err, errors.Runtime)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			printEntries(out, store.List())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the settings as a JSON object")
	return cmd
}

// printEntries prints "key = value" lines with the values aligned.
func printEntries(out io.Writer, entries []cfgpkg.Entry) {
	width := 0
	for _, e := range entries {
		if len(e.Key) > width {
			width = len(e.Key)
		}
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%-*s = %s\n", width, e.Key, e.Value)
	}
}

func newGetCmd(env *shared.Env) *cobra.Command {
	return &cobra.Command{
		Use:       "get <key>",
		Short:     "Print the effective value of a setting",
		Args:      shared.UsageArgs(cobra.ExactArgs(1)),
		ValidArgs: cfgpkg.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := env.Store()
			if err != nil {
				return err
			}
			value, err := store.Get(args[0])
			if err != nil {
				return settingError(env.Cat, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newSetCmd(env *shared.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting in the config file",
		Long: `Change a setting in the config file.

The value is checked against the key's type before anything is written.
Run "shnote config list" for the keys.`,
		Example: `  shnote config set python /opt/homebrew/bin/python3
  shnote config set what_color hi_green
  shnote config set color false`,
		Args:      shared.UsageArgs(cobra.ExactArgs(2)),
		ValidArgs: cfgpkg.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := env.Store()
			if err != nil {
				return err
			}
			parsed, err := store.Set(args[0], args[1])
			if err != nil {
				return settingError(env.Cat, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), env.Cat.T(i18n.ConfigSetDone, args[0], fmt.Sprint(parsed.Parsed)))
			return nil
		},
	}
}

func newResetCmd(env *shared.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore every setting to its default",
		Args:  shared.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, movedTo, err := env.ResetStore()
			if err != nil {
				return shared.FileError(env.Cat, err)
			}
			if movedTo != "" {
				fmt.Fprintln(cmd.OutOrStdout(), env.Cat.T(i18n.ConfigMovedAside, movedTo))
			}
			fmt.Fprintln(cmd.OutOrStdout(), env.Cat.T(i18n.ConfigResetDone, store.Path()))
			return nil
		},
	}
}

func newPathCmd(env *shared.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  shared.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cfgpkg.DefaultPath()
			if err != nil {
				return errors.Wrap(err, errors.Configuration)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// settingError maps config schema errors to localized CLI errors.
func settingError(cat *i18n.Catalog, err error) error {
	var unknown cfgpkg.ErrUnknownKey
	if stderrors.As(err, &unknown) {
		return errors.UnknownConfigKey(cat, unknown.Key)
	}
	var invalid cfgpkg.ErrInvalidValue
	if stderrors.As(err, &invalid) {
		return errors.InvalidConfigValue(cat, invalid.Key, invalid.Value, invalid.Allowed)
	}
	return shared.FileError(cat, err)
}
