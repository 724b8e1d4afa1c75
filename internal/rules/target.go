package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wangnov/shnote/internal/blockmerge"
	"github.com/wangnov/shnote/internal/config"
)

// Markers frame the shnote block inside shared agent memory files.
var Markers = blockmerge.HTMLMarkers("rules")

// Target is an AI agent that can receive the rules.
type Target struct {
	// Name is the init subcommand name.
	Name string
	// Cmd is the agent's CLI binary.
	Cmd string
	// Dir is the agent's config directory relative to the scope root.
	Dir string
	// File is the shared memory file inside Dir, merged with markers.
	File string
}

var (
	Claude = Target{Name: "claude", Cmd: "claude", Dir: ".claude", File: "CLAUDE.md"}
	Codex  = Target{Name: "codex", Cmd: "codex", Dir: ".codex", File: "AGENTS.md"}
	Gemini = Target{Name: "gemini", Cmd: "gemini", Dir: ".gemini", File: "GEMINI.md"}
)

// Targets lists every supported target in display order.
func Targets() []Target {
	return []Target{Claude, Codex, Gemini}
}

// ParseTarget looks a target up by name.
func ParseTarget(name string) (Target, error) {
	for _, t := range Targets() {
		if t.Name == strings.ToLower(strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return Target{}, fmt.Errorf("unknown init target %q (allowed: claude, codex, gemini)", name)
}

// MemoryFile returns the shared memory file under root.
func (t Target) MemoryFile(root string) string {
	return filepath.Join(root, t.Dir, t.File)
}

// RulesFile returns the dedicated rules file Claude Code >= MinClaudeVersion
// loads from .claude/rules. Only the claude target has one.
func (t Target) RulesFile(root string) string {
	return filepath.Join(root, t.Dir, "rules", "shnote.md")
}

// Scope selects where rules are installed.
type Scope string

const (
	ScopeUser    Scope = "user"
	ScopeProject Scope = "project"
)

// ScopeNames are the accepted --scope values, aliases included.
var ScopeNames = []string{"user", "project", "u", "p"}

// ParseScope accepts user, project and their one-letter aliases.
func ParseScope(raw string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "user", "u":
		return ScopeUser, nil
	case "project", "p":
		return ScopeProject, nil
	}
	return "", fmt.Errorf("invalid scope %q (allowed: %s)", raw, strings.Join(ScopeNames, ", "))
}

// Root returns the directory the scope is anchored at: the home directory
// for user scope, the working directory for project scope.
func (s Scope) Root() (string, error) {
	if s == ScopeProject {
		return os.Getwd()
	}
	return config.HomeDir()
}
