// Package executor_test tests mapping each variant to the child process it spawns.
// Related: internal/executor/build.go
// Tags: executor, child-spec, variants, stdin, passthrough
package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/gate"
)

func TestResolver_Build(t *testing.T) {
	t.Parallel()

	binDir := t.TempDir()
	pueued := touch(t, binDir, "pueued")

	path := fakePath{
		"bash":    "/bin/bash",
		"python3": "/usr/bin/python3",
		"node":    "/opt/node/bin/node",
		"npm":     "/usr/bin/npm",
		"npx":     "/usr/bin/npx",
	}

	tests := map[string]struct {
		variant gate.Variant
		want    ChildSpec
	}{
		"shell quotes each argument": {
			variant: gate.Shell{Command: []string{"grep", "foo bar", "it's.txt"}},
			want:    ChildSpec{Program: "/bin/bash", Args: []string{"-c", `grep 'foo bar' 'it'\''s.txt'`}, Tool: "bash"},
		},
		"shell single argument kept whole": {
			variant: gate.Shell{Command: []string{"ls | wc -l"}},
			want:    ChildSpec{Program: "/bin/bash", Args: []string{"-c", "ls | wc -l"}, Tool: "bash"},
		},
		"py inline": {
			variant: gate.ScriptInline{Interpreter: gate.Python, Code: "import sys; print(sys.argv)", Args: []string{"a", "-b"}},
			want: ChildSpec{
				Program: "/usr/bin/python3",
				Args:    []string{"-c", "import sys; print(sys.argv)", "a", "-b"},
				Env:     []string{"PYTHONUTF8=1", "PYTHONIOENCODING=utf-8"},
				Tool:    "python",
			},
		},
		"node inline uses -e": {
			variant: gate.ScriptInline{Interpreter: gate.Node, Code: "console.log(1)"},
			want:    ChildSpec{Program: "/opt/node/bin/node", Args: []string{"-e", "console.log(1)"}, Tool: "node"},
		},
		"py file": {
			variant: gate.ScriptFile{Interpreter: gate.Python, Path: "job.py", Args: []string{"--fast"}},
			want: ChildSpec{
				Program: "/usr/bin/python3",
				Args:    []string{"job.py", "--fast"},
				Env:     []string{"PYTHONUTF8=1", "PYTHONIOENCODING=utf-8"},
				Tool:    "python",
			},
		},
		"node stdin is piped": {
			variant: gate.ScriptStdin{Interpreter: gate.Node, Script: []byte("console.log(2)"), Args: []string{"x"}},
			want: ChildSpec{
				Program: "/opt/node/bin/node",
				Args:    []string{"-", "x"},
				Stdin:   StdinPiped,
				Input:   []byte("console.log(2)"),
				Tool:    "node",
			},
		},
		"pip goes through python": {
			variant: gate.PipPassthrough{Args: []string{"install", "requests"}},
			want: ChildSpec{
				Program: "/usr/bin/python3",
				Args:    []string{"-m", "pip", "install", "requests"},
				Env:     []string{"PYTHONUTF8=1", "PYTHONIOENCODING=utf-8"},
				Tool:    "pip",
			},
		},
		"npm from PATH": {
			variant: gate.NpmPassthrough{Args: []string{"run", "build"}},
			want:    ChildSpec{Program: "/usr/bin/npm", Args: []string{"run", "build"}, Tool: "npm"},
		},
		"npx from PATH": {
			variant: gate.NpxPassthrough{Args: []string{"eslint"}},
			want:    ChildSpec{Program: "/usr/bin/npx", Args: []string{"eslint"}, Tool: "npx"},
		},
		"pueued from bin dir": {
			variant: gate.PueuePassthrough{Binary: "pueued", Args: []string{"-d"}},
			want:    ChildSpec{Program: pueued, Args: []string{"-d"}, Tool: "pueued"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			cfg.Shell = "bash"
			r := testResolver(cfg, "linux", path, nil, binDir)

			got, err := r.Build(tt.variant)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_BuildWindowsShim(t *testing.T) {
	t.Parallel()

	nodeDir := t.TempDir()
	node := touch(t, nodeDir, "node.exe")
	shim := touch(t, nodeDir, "npx.cmd")

	r := testResolver(config.Default(), "windows", fakePath{"node": node, "cmd": `C:\Windows\System32\cmd.exe`}, nil, "")
	got, err := r.Build(gate.NpxPassthrough{Args: []string{"tsc"}})
	require.NoError(t, err)
	assert.Equal(t, `C:\Windows\System32\cmd.exe`, got.Program)
	assert.Equal(t, []string{"/C", shim, "tsc"}, got.Args)
}

func TestResolver_BuildFailsBeforeSpawn(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		variant  gate.Variant
		wantKind errors.Kind
	}{
		"python missing": {
			variant:  gate.ScriptInline{Interpreter: gate.Python, Code: "1"},
			wantKind: errors.KindToolNotFound,
		},
		"node missing for npm": {
			variant:  gate.NpmPassthrough{},
			wantKind: errors.KindToolNotFound,
		},
		"pueue missing": {
			variant:  gate.PueuePassthrough{Binary: "pueue"},
			wantKind: errors.KindToolNotFound,
		},
		"shell missing": {
			variant:  gate.Shell{Command: []string{"true"}},
			wantKind: errors.KindToolNotFound,
		},
		"non execution": {
			variant:  gate.NonExecution{Command: "doctor"},
			wantKind: errors.KindInternal,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := testResolver(config.Default(), "linux", fakePath{}, nil, "")
			_, err := r.Build(tt.variant)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, errors.KindOf(err))
		})
	}
}
