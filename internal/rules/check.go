package rules

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/wangnov/shnote/internal/blockmerge"
)

// Installed is a rules copy found on disk.
type Installed struct {
	Target Target
	Path   string
	// Body is the rules text: the whole dedicated file, or the marked block
	// of a shared memory file.
	Body string
}

// FindInstalled returns every rules copy installed under root.
func FindInstalled(root string) ([]Installed, error) {
	var found []Installed

	if data, err := os.ReadFile(Claude.RulesFile(root)); err == nil {
		found = append(found, Installed{Target: Claude, Path: Claude.RulesFile(root), Body: string(data)})
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	for _, t := range Targets() {
		path := t.MemoryFile(root)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		body, ok, err := blockmerge.Extract(string(data), Markers)
		if err != nil {
			var corrupt *blockmerge.CorruptBlockError
			if errors.As(err, &corrupt) {
				corrupt.Path = path
			}
			return nil, err
		}
		if ok {
			found = append(found, Installed{Target: t, Path: path, Body: body})
		}
	}
	return found, nil
}

// Mentions returns the agent files under root a user should clean up after
// uninstalling: the dedicated claude rules file, plus any memory file that
// mentions shnote.
func Mentions(root string) []string {
	var paths []string
	if _, err := os.Stat(Claude.RulesFile(root)); err == nil {
		paths = append(paths, Claude.RulesFile(root))
	}
	for _, t := range Targets() {
		data, err := os.ReadFile(t.MemoryFile(root))
		if err == nil && strings.Contains(string(data), "shnote") {
			paths = append(paths, t.MemoryFile(root))
		}
	}
	return paths
}

// Status classifies an installed copy against the embedded templates.
type Status int

const (
	// Pristine means the copy matches a template byte-for-byte.
	Pristine Status = iota
	// Modified means the copy was edited by hand.
	Modified
)

// Drift is the result of comparing an installed copy to the templates.
type Drift struct {
	Status Status
	// Base is the closest template variant.
	Base Variant
}

// Compare finds the template variant closest to body.
func Compare(body string) Drift {
	norm := normalize(body)
	variants := Variants()

	best, bestRatio := variants[0], -1.0
	for _, v := range variants {
		if normalize(v.Body) == norm {
			return Drift{Status: Pristine, Base: v}
		}
		m := difflib.NewMatcher(difflib.SplitLines(normalize(v.Body)), difflib.SplitLines(norm))
		if r := m.Ratio(); r > bestRatio {
			best, bestRatio = v, r
		}
	}
	return Drift{Status: Modified, Base: best}
}

// Diff renders a unified diff from the template (base) to the installed copy.
func Diff(base, current, baseLabel, currentLabel string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(normalize(base)),
		B:        difflib.SplitLines(normalize(current)),
		FromFile: baseLabel,
		ToFile:   currentLabel,
		Context:  3,
	})
}

// normalize drops trailing newlines so a block body and the template it was
// rendered from compare equal.
func normalize(s string) string {
	return strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), "\n") + "\n"
}
