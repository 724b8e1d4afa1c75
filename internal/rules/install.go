package rules

import (
	"context"
	"fmt"

	"github.com/wangnov/shnote/internal/blockmerge"
	"github.com/wangnov/shnote/internal/i18n"
	"github.com/wangnov/shnote/internal/update"
)

// Installer writes the rules for one scope.
type Installer struct {
	// Root is the scope root: home or working directory.
	Root string
	// Lang selects the template language.
	Lang i18n.Lang
	// WithPueue includes the pueue section.
	WithPueue bool
	// Probe reports the Claude Code version; nil runs `claude --version`.
	Probe VersionProbe
}

// Outcome describes what Install did.
type Outcome struct {
	Target blockmerge.Result
	// ClaudeVersion is the detected Claude Code version, nil when unknown.
	ClaudeVersion *update.Version
	// Legacy is set when the claude target fell back to CLAUDE.md.
	Legacy bool
	// LegacyCleanup is set when a stale block was removed from CLAUDE.md
	// after writing the dedicated rules file.
	LegacyCleanup *blockmerge.Result
}

// Install writes the rules for t.
//
// For claude, a detected version >= MinClaudeVersion gets .claude/rules/shnote.md
// overwritten in full and any old block stripped from .claude/CLAUDE.md. A corrupt
// CLAUDE.md block is reported before either file is written. An older
// or undetectable Claude Code gets the marked block merged into CLAUDE.md, as do
// codex and gemini into their own memory files.
func (in *Installer) Install(ctx context.Context, t Target) (Outcome, error) {
	body := Render(in.Lang, in.WithPueue)

	if t.Name != Claude.Name {
		res, err := blockmerge.Merge(blockmerge.Block{Path: t.MemoryFile(in.Root), Markers: Markers, Body: body})
		return Outcome{Target: res}, err
	}

	var out Outcome
	if v, err := ClaudeVersion(ctx, in.Probe); err == nil {
		out.ClaudeVersion = v
	}

	if !SupportsRulesDir(out.ClaudeVersion) {
		out.Legacy = true
		res, err := blockmerge.Merge(blockmerge.Block{Path: t.MemoryFile(in.Root), Markers: Markers, Body: body})
		out.Target = res
		return out, err
	}

	removal, err := blockmerge.PrepareRemove(t.MemoryFile(in.Root), Markers)
	if err != nil {
		return out, fmt.Errorf("removing old rules block: %w", err)
	}

	res, err := blockmerge.Overwrite(t.RulesFile(in.Root), []byte(body))
	out.Target = res
	if err != nil {
		return out, err
	}

	cleanup, err := removal.Apply()
	if err != nil {
		return out, fmt.Errorf("removing old rules block: %w", err)
	}
	if cleanup.Changed() {
		out.LegacyCleanup = &cleanup
	}
	return out, nil
}
