// Package uninstall removes shnote's binary and data directory.
package uninstall

import (
	"os"
	"path/filepath"
)

// TargetType represents the type of an uninstall target
type TargetType string

const (
	// TypeBinary indicates the shnote binary
	TypeBinary TargetType = "binary"
	// TypeDataDir indicates ~/.shnote: config, setup binaries and anything else shnote wrote
	TypeDataDir TargetType = "data_dir"
)

// UninstallTarget represents a file or directory to be removed during uninstall
type UninstallTarget struct {
	Path         string     // Absolute path to the target
	Type         TargetType // Type of target: binary or data_dir
	Exists       bool       // Whether the target currently exists
	RequiresSudo bool       // Whether elevated privileges are needed
}

// UninstallResult represents the result of attempting to remove a target
type UninstallResult struct {
	Target UninstallTarget // The target that was processed
	// Deferred is set on Windows when the running binary could not be deleted
	// and was renamed to DeferredPath instead.
	Deferred     bool
	DeferredPath string
	Error        error // Error if removal failed
}

// Success reports whether the target is gone or scheduled for deletion.
func (r UninstallResult) Success() bool {
	return r.Error == nil
}

// DetectBinaryLocation returns the absolute path to the current shnote executable.
// It resolves symlinks to get the actual binary location.
func DetectBinaryLocation() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(exePath)
	if err != nil {
		return exePath, nil
	}

	return resolved, nil
}

// GetUninstallTargets returns the targets in removal order: the data
// directory first, then the binary.
func GetUninstallTargets(binaryPath, dataDir string) []UninstallTarget {
	binaryExists := fileExists(binaryPath)
	return []UninstallTarget{
		{
			Path:   dataDir,
			Type:   TypeDataDir,
			Exists: dirExists(dataDir),
		},
		{
			Path:         binaryPath,
			Type:         TypeBinary,
			Exists:       binaryExists,
			RequiresSudo: binaryExists && RequiresSudo(binaryPath),
		},
	}
}

// RemoveTargets removes the specified targets and returns the results.
// It continues after individual failures and reports all results.
// Missing files are handled gracefully (not considered an error).
func RemoveTargets(targets []UninstallTarget) []UninstallResult {
	results := make([]UninstallResult, 0, len(targets))

	for _, target := range targets {
		if !target.Exists {
			results = append(results, UninstallResult{Target: target})
			continue
		}

		res := UninstallResult{Target: target}
		if target.Type == TypeBinary {
			res.DeferredPath, res.Error = removeBinary(target.Path)
			res.Deferred = res.DeferredPath != ""
		} else {
			res.Error = os.RemoveAll(target.Path)
		}
		results = append(results, res)
	}

	return results
}

// fileExists checks if a file exists at the given path
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// dirExists checks if a directory exists at the given path
func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
