package rules

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    Target
		wantErr bool
	}{
		"claude":        {input: "claude", want: Claude},
		"codex":         {input: "codex", want: Codex},
		"gemini upper":  {input: "GEMINI", want: Gemini},
		"unknown agent": {input: "cursor", wantErr: true},
		"empty":         {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTarget(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScope(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    Scope
		wantErr bool
	}{
		"user":          {input: "user", want: ScopeUser},
		"user alias":    {input: "u", want: ScopeUser},
		"project":       {input: "project", want: ScopeProject},
		"project alias": {input: "p", want: ScopeProject},
		"mixed case":    {input: "Project", want: ScopeProject},
		"invalid":       {input: "global", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseScope(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetPaths(t *testing.T) {
	t.Parallel()

	root := filepath.Join("home", "dev")
	assert.Equal(t, filepath.Join(root, ".claude", "CLAUDE.md"), Claude.MemoryFile(root))
	assert.Equal(t, filepath.Join(root, ".claude", "rules", "shnote.md"), Claude.RulesFile(root))
	assert.Equal(t, filepath.Join(root, ".codex", "AGENTS.md"), Codex.MemoryFile(root))
	assert.Equal(t, filepath.Join(root, ".gemini", "GEMINI.md"), Gemini.MemoryFile(root))
}

func TestMarkers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<!-- shnote rules start -->", Markers.Begin)
	assert.Equal(t, "<!-- shnote rules end -->", Markers.End)
}
