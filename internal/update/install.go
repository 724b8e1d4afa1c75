package update

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Installer replaces an installed binary, keeping a backup until the new
// one is in place.
type Installer struct {
	executablePath string
	backupPath     string
}

// NewInstaller creates a new installer for the current executable.
func NewInstaller() (*Installer, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("determining executable path: %w", err)
	}

	// Resolve any symlinks to get the real path
	realPath, err := filepath.EvalSymlinks(execPath)
	if err != nil {
		realPath = execPath
	}

	return NewInstallerFor(realPath), nil
}

// NewInstallerFor creates an installer that replaces the binary at path.
// The backup sits next to it as "<path>.old" (shnote.exe.old on Windows).
func NewInstallerFor(path string) *Installer {
	return &Installer{
		executablePath: path,
		backupPath:     path + ".old",
	}
}

// ExecutablePath returns the path of the binary being replaced.
func (i *Installer) ExecutablePath() string {
	return i.executablePath
}

// BackupPath returns the path where the backup will be stored.
func (i *Installer) BackupPath() string {
	return i.backupPath
}

// Dir returns the directory holding the binary. Downloads staged there can
// be renamed into place without crossing filesystems.
func (i *Installer) Dir() string {
	return filepath.Dir(i.executablePath)
}

// Install moves newBinaryPath over the executable. The running binary is
// renamed aside first, which Windows permits for an open executable. On any
// failure the backup is restored.
func (i *Installer) Install(newBinaryPath string) error {
	if err := i.CreateBackup(); err != nil {
		return err
	}

	if err := i.place(newBinaryPath); err != nil {
		if rbErr := i.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	// Windows keeps the old image locked while it runs; the leftover is
	// removed by the next update.
	_ = i.CleanupBackup()
	return nil
}

// CreateBackup renames the current binary to the backup path.
func (i *Installer) CreateBackup() error {
	if err := os.Remove(i.backupPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing old backup: %w", err)
	}

	if err := os.Rename(i.executablePath, i.backupPath); err != nil {
		return fmt.Errorf("creating backup: %w", err)
	}

	return nil
}

func (i *Installer) place(newBinaryPath string) error {
	if err := os.Chmod(newBinaryPath, 0o755); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(newBinaryPath, i.executablePath); err == nil {
		return nil
	}
	// Different filesystem: fall back to a copy.
	if err := copyFile(newBinaryPath, i.executablePath, 0o755); err != nil {
		return fmt.Errorf("installing new binary: %w", err)
	}
	os.Remove(newBinaryPath)
	return nil
}

// Rollback restores the backup if something goes wrong.
func (i *Installer) Rollback() error {
	if _, err := os.Stat(i.backupPath); os.IsNotExist(err) {
		return fmt.Errorf("no backup found to restore")
	}

	if err := os.Remove(i.executablePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing failed binary: %w", err)
	}

	if err := os.Rename(i.backupPath, i.executablePath); err != nil {
		return fmt.Errorf("restoring backup: %w", err)
	}

	return nil
}

// CleanupBackup removes the backup file after successful installation.
func (i *Installer) CleanupBackup() error {
	if err := os.Remove(i.backupPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cleaning up backup: %w", err)
	}
	return nil
}

// CheckWritePermission checks if we have write access to the executable location.
func (i *Installer) CheckWritePermission() error {
	dir := i.Dir()

	tmpFile, err := os.CreateTemp(dir, ".shnote-write-test-*")
	if err != nil {
		return fmt.Errorf("no write permission to %s: %w", dir, err)
	}

	tmpFile.Close()
	os.Remove(tmpFile.Name())

	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
