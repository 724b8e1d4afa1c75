package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// ErrNoHome is returned when neither HOME nor USERPROFILE is set.
var ErrNoHome = errors.New("cannot determine home directory: neither HOME nor USERPROFILE is set")

const (
	homeDirName    = ".shnote"
	configFileName = "config.yaml"
	binDirName     = "bin"
)

// HomeDir returns $HOME, falling back to %USERPROFILE%.
func HomeDir() (string, error) {
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	if home := os.Getenv("USERPROFILE"); home != "" {
		return home, nil
	}
	return "", ErrNoHome
}

// DataDir returns the shnote data directory, ~/.shnote.
func DataDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeDirName), nil
}

// DefaultPath returns the config file location, ~/.shnote/config.yaml.
func DefaultPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// BinDir returns the directory holding binaries installed by `shnote setup`.
func BinDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, binDirName), nil
}

// ExeName appends the platform executable suffix to name.
func ExeName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}
