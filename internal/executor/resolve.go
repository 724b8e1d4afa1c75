package executor

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/i18n"
)

// Default fallbacks tried after the configured interpreter name.
var (
	PythonFallbacks = []string{"python3", "python"}
	NodeFallbacks   = []string{"node", "nodejs"}
)

// Resolver finds interpreters, shells and tools. The zero value is not
// usable; use NewResolver.
type Resolver struct {
	cfg config.Config
	cat *i18n.Catalog

	// The fields below are swapped out in tests.
	lookPath func(string) (string, error)
	getenv   func(string) string
	goos     string
	binDir   string
}

// NewResolver returns a resolver for the given configuration. binDir is the
// directory `shnote setup` installs pueue into; it may be empty.
func NewResolver(cat *i18n.Catalog, cfg config.Config, binDir string) *Resolver {
	return &Resolver{
		cfg:      cfg,
		cat:      cat,
		lookPath: exec.LookPath,
		getenv:   os.Getenv,
		goos:     runtime.GOOS,
		binDir:   binDir,
	}
}

// Python resolves the configured Python interpreter.
func (r *Resolver) Python() (string, error) {
	return r.interpreter("python", r.cfg.Python, PythonFallbacks)
}

// Node resolves the configured Node.js interpreter.
func (r *Resolver) Node() (string, error) {
	return r.interpreter("node", r.cfg.Node, NodeFallbacks)
}

// interpreter resolves configured, which is either a path or a command name.
// A path must exist; a name is looked up on PATH, then each fallback is tried.
func (r *Resolver) interpreter(key, configured string, fallbacks []string) (string, error) {
	if isPath(configured) {
		if regularFile(configured) {
			return configured, nil
		}
		return "", errors.ToolNotFound(r.cat, configured, key)
	}

	if path, err := r.lookPath(configured); err == nil {
		return path, nil
	}
	for _, name := range fallbacks {
		if name == configured {
			continue
		}
		if path, err := r.lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", errors.ToolNotFound(r.cat, configured, key)
}

// NodeTool resolves npm or npx, preferring the copy next to the resolved
// node binary so both come from the same installation.
func (r *Resolver) NodeTool(tool string) (string, error) {
	node, err := r.Node()
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(node)
	candidates := []string{filepath.Join(dir, tool)}
	if r.goos == "windows" {
		candidates = []string{filepath.Join(dir, tool+".cmd"), filepath.Join(dir, tool+".exe")}
	}
	for _, c := range candidates {
		if regularFile(c) {
			return c, nil
		}
	}

	if path, err := r.lookPath(tool); err == nil {
		return path, nil
	}
	return "", errors.ToolNotFound(r.cat, tool, "node")
}

// Pueue resolves pueue or pueued, preferring the copy installed by setup.
func (r *Resolver) Pueue(binary string) (string, error) {
	if r.binDir != "" {
		name := binary
		if r.goos == "windows" {
			name += ".exe"
		}
		if p := filepath.Join(r.binDir, name); regularFile(p) {
			return p, nil
		}
	}
	if path, err := r.lookPath(binary); err == nil {
		return path, nil
	}
	return "", errors.ToolNotFound(r.cat, binary, "")
}

func isPath(s string) bool {
	return filepath.IsAbs(s) || strings.ContainsAny(s, `/\`)
}

func regularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
