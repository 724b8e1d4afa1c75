// Package config provides CLI commands for shnote configuration management.
// Includes: config, init
package config

import (
	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/cli/shared"
)

// Register adds all configuration commands to the root command.
func Register(rootCmd *cobra.Command, env *shared.Env) {
	rootCmd.AddCommand(newConfigCmd(env))
	rootCmd.AddCommand(newInitCmd(env))
}
