package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a", "b", "config.yaml")
	assert.False(t, FileExists(path))

	WriteFile(t, path, "shell: bash\n")

	assert.True(t, FileExists(path))
	assert.Equal(t, "shell: bash\n", ReadFile(t, path))
}

func TestScript(t *testing.T) {
	t.Parallel()

	path := Script(t, t.TempDir(), "pueue", "echo 'pueue 4.0.1'\n")
	out, err := exec.Command(path).Output()
	require.NoError(t, err)
	assert.Equal(t, "pueue 4.0.1\n", string(out))
}

func TestIsolateHome(t *testing.T) {
	t.Setenv("SHNOTE_LANG", "zh")

	home := IsolateHome(t)

	assert.Equal(t, home, os.Getenv("HOME"))
	_, set := os.LookupEnv("SHNOTE_LANG")
	assert.False(t, set)
	assert.Equal(t, "1", os.Getenv("NO_COLOR"))
	if runtime.GOOS != "windows" {
		got, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, home, got)
	}
}

func TestIsolatePath(t *testing.T) {
	dir := IsolatePath(t)
	Script(t, dir, "only-here", "exit 0\n")

	found, err := exec.LookPath("only-here")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "only-here"), found)

	_, err = exec.LookPath("sh")
	assert.Error(t, err)
}
