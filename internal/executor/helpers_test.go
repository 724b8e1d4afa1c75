package executor

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/i18n"
)

var en = i18n.New(i18n.En)

// fakePath resolves names from a fixed table, like a PATH with only those tools.
type fakePath map[string]string

func (f fakePath) lookPath(name string) (string, error) {
	if p, ok := f[name]; ok {
		return p, nil
	}
	return "", exec.ErrNotFound
}

// testResolver builds a resolver that never consults the real PATH or environment.
func testResolver(cfg config.Config, goos string, path fakePath, env map[string]string, binDir string) *Resolver {
	r := NewResolver(en, cfg, binDir)
	r.lookPath = path.lookPath
	r.getenv = func(k string) string { return env[k] }
	r.goos = goos
	return r
}

// touch creates an empty executable file and returns its path.
func touch(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, nil, 0o755))
	return p
}

func chmod(path string, mode os.FileMode) error {
	return os.Chmod(path, mode)
}
