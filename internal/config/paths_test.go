package config

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".shnote"), dir)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".shnote", "config.yaml"), path)

	bin, err := BinDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".shnote", "bin"), bin)
}

func TestHomeDirFallsBackToUserProfile(t *testing.T) {
	profile := t.TempDir()
	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", profile)

	home, err := HomeDir()
	require.NoError(t, err)
	assert.Equal(t, profile, home)
}

func TestHomeDirMissing(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", "")

	_, err := HomeDir()
	assert.ErrorIs(t, err, ErrNoHome)
	_, err = DefaultPath()
	assert.ErrorIs(t, err, ErrNoHome)
}

func TestExeName(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		assert.Equal(t, "pueue.exe", ExeName("pueue"))
	} else {
		assert.Equal(t, "pueue", ExeName("pueue"))
	}
}
