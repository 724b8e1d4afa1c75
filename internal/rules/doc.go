// Package rules installs the shnote usage rules into the memory files read by
// AI coding agents (Claude Code, Codex, Gemini) and detects drift between an
// installed copy and the templates embedded in this binary.
package rules
