// Package executor_test tests interpreter, node tool and pueue resolution.
// Related: internal/executor/resolve.go
// Tags: executor, resolution, tool-not-found, fallbacks
package executor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/errors"
)

func TestResolver_Python(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	absPython := touch(t, dir, "custom/python3.12")

	tests := map[string]struct {
		configured string
		path       fakePath
		want       string
		wantTool   string
	}{
		"configured name on PATH": {
			configured: "python3",
			path:       fakePath{"python3": "/usr/bin/python3"},
			want:       "/usr/bin/python3",
		},
		"falls back to python": {
			configured: "python3",
			path:       fakePath{"python": "/usr/bin/python"},
			want:       "/usr/bin/python",
		},
		"custom name falls back to python3": {
			configured: "python3.11",
			path:       fakePath{"python3": "/usr/bin/python3"},
			want:       "/usr/bin/python3",
		},
		"absolute path that exists": {
			configured: absPython,
			path:       fakePath{},
			want:       absPython,
		},
		"absolute path that is missing": {
			configured: filepath.Join(dir, "nope", "python"),
			path:       fakePath{"python3": "/usr/bin/python3"},
			wantTool:   filepath.Join(dir, "nope", "python"),
		},
		"nothing on PATH": {
			configured: "python3",
			path:       fakePath{},
			wantTool:   "python3",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			cfg.Python = tt.configured
			r := testResolver(cfg, "linux", tt.path, nil, "")

			got, err := r.Python()
			if tt.wantTool != "" {
				require.Error(t, err)
				assert.Equal(t, errors.KindToolNotFound, errors.KindOf(err))
				assert.Equal(t, tt.wantTool, errors.AsCLIError(err).Subject)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_NodeFallsBackToNodejs(t *testing.T) {
	t.Parallel()

	r := testResolver(config.Default(), "linux", fakePath{"nodejs": "/usr/bin/nodejs"}, nil, "")
	got, err := r.Node()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/nodejs", got)
}

func TestResolver_NodeTool(t *testing.T) {
	t.Parallel()

	nodeDir := t.TempDir()
	node := touch(t, nodeDir, "node")
	npm := touch(t, nodeDir, "npm")

	tests := map[string]struct {
		path     fakePath
		tool     string
		want     string
		wantKind errors.Kind
	}{
		"next to node": {
			path: fakePath{"node": node, "npm": "/usr/bin/npm"},
			tool: "npm",
			want: npm,
		},
		"falls back to PATH": {
			path: fakePath{"node": node, "npx": "/usr/local/bin/npx"},
			tool: "npx",
			want: "/usr/local/bin/npx",
		},
		"missing tool": {
			path:     fakePath{"node": node},
			tool:     "npx",
			wantKind: errors.KindToolNotFound,
		},
		"missing node": {
			path:     fakePath{"npm": "/usr/bin/npm"},
			tool:     "npm",
			wantKind: errors.KindToolNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := testResolver(config.Default(), "linux", tt.path, nil, "")
			got, err := r.NodeTool(tt.tool)
			if tt.wantKind != errors.KindInternal {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, errors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_NodeToolWindowsShim(t *testing.T) {
	t.Parallel()

	nodeDir := t.TempDir()
	node := touch(t, nodeDir, "node.exe")
	shim := touch(t, nodeDir, "npm.cmd")

	r := testResolver(config.Default(), "windows", fakePath{"node": node, "cmd": `C:\Windows\System32\cmd.exe`}, nil, "")
	got, err := r.NodeTool("npm")
	require.NoError(t, err)
	assert.Equal(t, shim, got)
}

func TestResolver_Pueue(t *testing.T) {
	t.Parallel()

	binDir := t.TempDir()
	installed := touch(t, binDir, "pueue")

	tests := map[string]struct {
		binDir string
		binary string
		path   fakePath
		want   string
	}{
		"installed copy wins": {
			binDir: binDir,
			binary: "pueue",
			path:   fakePath{"pueue": "/usr/bin/pueue"},
			want:   installed,
		},
		"PATH when not installed": {
			binDir: binDir,
			binary: "pueued",
			path:   fakePath{"pueued": "/usr/bin/pueued"},
			want:   "/usr/bin/pueued",
		},
		"no bin dir": {
			binary: "pueue",
			path:   fakePath{"pueue": "/opt/pueue"},
			want:   "/opt/pueue",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := testResolver(config.Default(), "linux", tt.path, nil, tt.binDir)
			got, err := r.Pueue(tt.binary)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_PueueMissingSuggestsSetup(t *testing.T) {
	t.Parallel()

	r := testResolver(config.Default(), "linux", fakePath{}, nil, t.TempDir())
	_, err := r.Pueue("pueued")
	require.Error(t, err)
	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.KindToolNotFound, cliErr.Kind)
	assert.Contains(t, cliErr.Remediation[0], "shnote setup")
}
