//go:build !windows

package uninstall

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// RequiresSudo checks if removing a file at the given path requires elevated privileges.
// It returns true if the file is in a system directory where the current user
// doesn't have write permission.
func RequiresSudo(path string) bool {
	return unix.Access(filepath.Dir(path), unix.W_OK) != nil
}

// removeBinary deletes the binary. Unix lets a running executable be unlinked.
func removeBinary(path string) (string, error) {
	return "", os.Remove(path)
}
