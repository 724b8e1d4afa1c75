package completion

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/blockmerge"
)

// Markers frame the completion block in rc files.
var Markers = blockmerge.HashMarkers("completion")

// InstallResult represents the outcome of an installation operation
type InstallResult struct {
	Shell Shell
	// ConfigPath is the rc file or, for fish, the completion file written.
	ConfigPath string
	// BackupPath is the copy of the rc file taken before it was modified.
	BackupPath string
	Action     blockmerge.Action
}

// PermissionError indicates a permission-related failure during installation
type PermissionError struct {
	Path      string
	Operation string
	Err       error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: cannot %s %s: %v", e.Operation, e.Path, e.Err)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}

// IsPermissionError checks if an error is a PermissionError
func IsPermissionError(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}

func classify(err error, path, op string) error {
	if errors.Is(err, fs.ErrPermission) {
		return &PermissionError{Path: path, Operation: op, Err: err}
	}
	return err
}

// CreateBackup creates a timestamped backup of the specified file.
// Returns the backup path on success, or empty string if the original file doesn't exist.
// The backup format is: original.shnote-backup-YYYYMMDD-HHMMSS
func CreateBackup(filePath string, now time.Time) (string, error) {
	content, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", classify(err, filePath, "read")
	}

	backupPath := fmt.Sprintf("%s.shnote-backup-%s", filePath, now.Format("20060102-150405"))
	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", classify(err, backupPath, "write")
	}
	return backupPath, nil
}

// Install wires completions for shell into homeDir.
//
// Fish gets a standalone completions/<name>.fish file. Every other shell gets a
// marked block in its rc file that sources `<name> completions <shell>`; the
// rc file is backed up first and re-running is a no-op.
func Install(root *cobra.Command, shell Shell, homeDir string) (*InstallResult, error) {
	cfg := GetShellConfig(shell, homeDir)
	if cfg.Shell == "" {
		return nil, fmt.Errorf("unsupported shell %q", shell)
	}
	if shell == Fish {
		return installFish(root, cfg)
	}
	return installRCFile(root, cfg)
}

func installFish(root *cobra.Command, cfg ShellConfig) (*InstallResult, error) {
	var script bytes.Buffer
	if err := Generate(root, Fish, &script); err != nil {
		return nil, fmt.Errorf("generating fish completion script: %w", err)
	}

	path := filepath.Join(cfg.CompletionDir, root.Name()+".fish")
	res, err := blockmerge.Overwrite(path, script.Bytes())
	if err != nil {
		return nil, classify(err, path, "write")
	}
	return &InstallResult{Shell: Fish, ConfigPath: path, Action: res.Action}, nil
}

func installRCFile(root *cobra.Command, cfg ShellConfig) (*InstallResult, error) {
	block := blockmerge.Block{Path: cfg.RCPath, Markers: Markers, Body: SourceLine(cfg.Shell, root.Name())}

	current, err := os.ReadFile(cfg.RCPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, classify(err, cfg.RCPath, "read")
	}
	if _, action, err := blockmerge.Apply(string(current), block.Markers, block.Body); err != nil {
		var corrupt *blockmerge.CorruptBlockError
		if errors.As(err, &corrupt) {
			corrupt.Path = cfg.RCPath
		}
		return nil, err
	} else if action == blockmerge.Unchanged {
		return &InstallResult{Shell: cfg.Shell, ConfigPath: cfg.RCPath, Action: blockmerge.Unchanged}, nil
	}

	backup, err := CreateBackup(cfg.RCPath, time.Now())
	if err != nil {
		return nil, err
	}

	res, err := blockmerge.Merge(block)
	if err != nil {
		return nil, classify(err, cfg.RCPath, "write")
	}
	return &InstallResult{Shell: cfg.Shell, ConfigPath: cfg.RCPath, BackupPath: backup, Action: res.Action}, nil
}
