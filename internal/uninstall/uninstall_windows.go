//go:build windows

package uninstall

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// RequiresSudo reports whether the binary's directory is not writable by the
// current user, e.g. under Program Files without elevation.
func RequiresSudo(path string) bool {
	probe, err := os.CreateTemp(filepath.Dir(path), ".shnote-write-test-*")
	if err != nil {
		return true
	}
	probe.Close()
	os.Remove(probe.Name())
	return false
}

// removeBinary deletes the binary. Windows refuses to delete a running
// executable, so on failure it is renamed aside and marked for deletion at
// the next reboot.
func removeBinary(path string) (string, error) {
	if err := os.Remove(path); err == nil {
		return "", nil
	}
	deferred := path + ".old.delete"
	if err := os.Rename(path, deferred); err != nil {
		return "", err
	}
	if p, err := windows.UTF16PtrFromString(deferred); err == nil {
		_ = windows.MoveFileEx(p, nil, windows.MOVEFILE_DELAY_UNTIL_REBOOT)
	}
	return deferred, nil
}
