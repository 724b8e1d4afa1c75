// Package completion generates shell completion scripts for shnote and can
// wire them into a shell's startup file.
package completion

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// Shell represents a supported shell type
type Shell string

const (
	Bash       Shell = "bash"
	Zsh        Shell = "zsh"
	Fish       Shell = "fish"
	PowerShell Shell = "powershell"
	Elvish     Shell = "elvish"
)

// SupportedShells returns the list of all supported shell types
func SupportedShells() []Shell {
	return []Shell{Bash, Zsh, Fish, PowerShell, Elvish}
}

// ShellNames returns SupportedShells as strings, for cobra ValidArgs.
func ShellNames() []string {
	names := make([]string, 0, len(SupportedShells()))
	for _, s := range SupportedShells() {
		names = append(names, string(s))
	}
	return names
}

// ParseShell validates a shell name.
func ParseShell(s string) (Shell, error) {
	shell := Shell(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SupportedShells() {
		if shell == known {
			return shell, nil
		}
	}
	return "", fmt.Errorf("unsupported shell %q; supported shells are: %s", s, strings.Join(ShellNames(), ", "))
}

// Generate writes the completion script for shell to w. bash, zsh, fish and
// powershell come from cobra; elvish is a small script around cobra's hidden
// __complete command.
func Generate(root *cobra.Command, shell Shell, w io.Writer) error {
	switch shell {
	case Bash:
		return root.GenBashCompletionV2(w, true)
	case Zsh:
		return root.GenZshCompletion(w)
	case Fish:
		return root.GenFishCompletion(w, true)
	case PowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	case Elvish:
		_, err := io.WriteString(w, elvishScript(root.Name()))
		return err
	}
	return fmt.Errorf("unsupported shell %q", shell)
}

// elvishScript registers an arg-completer that forwards the words typed so
// far to `<name> __complete` and turns each "value\tdescription" line into a
// candidate. The trailing ":<directive>" line is dropped.
func elvishScript(name string) string {
	return strings.ReplaceAll(`use os
use str

set edit:completion:arg-completer[NAME] = {|@words|
    var lines = [(e:NAME __complete $@words[1..] 2>$os:dev-null)]
    if (== (count $lines) 0) {
        return
    }
    for line $lines[0..-1] {
        var parts = [(str:split "\t" $line)]
        if (> (count $parts) 1) {
            edit:complex-candidate $parts[0] &display=$parts[0]' ('$parts[1]')'
        } else {
            edit:complex-candidate $parts[0]
        }
    }
}
`, "NAME", name)
}

// ShellConfig contains configuration for a specific shell's completion setup
type ShellConfig struct {
	// Shell is the shell type
	Shell Shell
	// RCPath is the path to the rc file (empty for fish)
	RCPath string
	// CompletionDir is the path to the completion directory (fish only)
	CompletionDir string
	// RequiresRCModification indicates whether the shell needs rc file modification
	RequiresRCModification bool
}

// GetShellConfig returns the configuration for the specified shell type.
// The homeDir parameter is used as the base for user-specific paths.
func GetShellConfig(shell Shell, homeDir string) ShellConfig {
	switch shell {
	case Bash:
		return ShellConfig{Shell: Bash, RCPath: filepath.Join(homeDir, ".bashrc"), RequiresRCModification: true}
	case Zsh:
		return ShellConfig{Shell: Zsh, RCPath: filepath.Join(homeDir, ".zshrc"), RequiresRCModification: true}
	case Fish:
		return ShellConfig{Shell: Fish, CompletionDir: filepath.Join(homeDir, ".config", "fish", "completions")}
	case PowerShell:
		return ShellConfig{Shell: PowerShell, RCPath: powerShellProfilePath(homeDir), RequiresRCModification: true}
	case Elvish:
		return ShellConfig{Shell: Elvish, RCPath: filepath.Join(homeDir, ".config", "elvish", "rc.elv"), RequiresRCModification: true}
	default:
		return ShellConfig{}
	}
}

// powerShellProfilePath returns the PowerShell profile path for the current OS
func powerShellProfilePath(homeDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(homeDir, "Documents", "PowerShell", "Microsoft.PowerShell_profile.ps1")
	}
	return filepath.Join(homeDir, ".config", "powershell", "Microsoft.PowerShell_profile.ps1")
}

// SourceLine returns the rc-file snippet that loads completions at startup.
// Fish has none: it loads files from its completions directory.
func SourceLine(shell Shell, name string) string {
	switch shell {
	case Bash:
		return fmt.Sprintf("source <(%s completions bash)", name)
	case Zsh:
		return fmt.Sprintf("autoload -U compinit && compinit\nsource <(%s completions zsh)", name)
	case PowerShell:
		return fmt.Sprintf("%s completions powershell | Out-String | Invoke-Expression", name)
	case Elvish:
		return fmt.Sprintf("eval (%s completions elvish | slurp)", name)
	}
	return ""
}
