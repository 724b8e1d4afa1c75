package rules

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/wangnov/shnote/internal/update"
)

// MinClaudeVersion is the first Claude Code release that loads .claude/rules.
const MinClaudeVersion = "2.0.64"

const probeTimeout = 5 * time.Second

// VersionProbe returns the raw `claude --version` output.
type VersionProbe func(ctx context.Context) (string, error)

// ProbeClaude runs `claude --version` with a short timeout.
func ProbeClaude(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, Claude.Cmd, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running claude --version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ClaudeVersion probes and parses the installed Claude Code version.
func ClaudeVersion(ctx context.Context, probe VersionProbe) (*update.Version, error) {
	if probe == nil {
		probe = ProbeClaude
	}
	out, err := probe(ctx)
	if err != nil {
		return nil, err
	}
	return update.FindVersion(out)
}

// SupportsRulesDir reports whether v loads the dedicated rules file.
func SupportsRulesDir(v *update.Version) bool {
	if v == nil {
		return false
	}
	floor, _ := update.ParseVersion(MinClaudeVersion)
	return v.AtLeast(floor)
}
