package blockmerge

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrCorruptBlock is matched by errors.Is for a begin marker with no end marker
// or for a second block.
var ErrCorruptBlock = errors.New("corrupt marked block")

// CorruptBlockError reports a begin marker without a matching end marker, or
// a second block with the same markers.
type CorruptBlockError struct {
	Path    string
	Markers Markers
	// Line is the 1-based line of the offending begin marker.
	Line int
	// Duplicate is set when the begin marker opens a second block.
	Duplicate bool
}

func (e *CorruptBlockError) Error() string {
	where := e.Path
	if where == "" {
		where = "content"
	}
	if e.Duplicate {
		return fmt.Sprintf("%s:%d: second %q block; only one is allowed", where, e.Line, e.Markers.Begin)
	}
	return fmt.Sprintf("%s:%d: %q has no matching %q", where, e.Line, e.Markers.Begin, e.Markers.End)
}

func (e *CorruptBlockError) Is(target error) bool {
	return target == ErrCorruptBlock
}

// Action describes what a merge did to the file.
type Action int

const (
	// Unchanged means the file already held the block byte-for-byte.
	Unchanged Action = iota
	// Created means the file did not exist.
	Created
	// Appended means the block was added after existing content.
	Appended
	// Replaced means an existing block's body was swapped.
	Replaced
	// Removed means the block was deleted.
	Removed
)

func (a Action) String() string {
	switch a {
	case Created:
		return "created"
	case Appended:
		return "appended"
	case Replaced:
		return "replaced"
	case Removed:
		return "removed"
	default:
		return "unchanged"
	}
}

// Block is one marked region to install in a file.
type Block struct {
	Path    string
	Markers Markers
	Body    string
}

// Result reports the outcome of a file operation.
type Result struct {
	Path   string
	Action Action
}

// Changed reports whether the file on disk was modified.
func (r Result) Changed() bool {
	return r.Action != Unchanged
}

// span locates a block inside content. All offsets are byte offsets.
type span struct {
	beginStart int // start of the begin marker line
	bodyStart  int // first byte after the begin marker line
	endStart   int // start of the end marker line
	endStop    int // first byte after the end marker line
}

// find scans the whole content line by line for the block framed by m.
// A begin marker without an end marker, a second begin marker before the end
// marker, or a second complete block is a CorruptBlockError.
func find(content string, m Markers) (span, bool, error) {
	var (
		s       span
		inBlock bool
		found   bool
		beginLn int
	)
	offset := 0
	for lineNo := 1; offset < len(content); lineNo++ {
		next := strings.IndexByte(content[offset:], '\n')
		stop := len(content)
		if next >= 0 {
			stop = offset + next + 1
		}
		line := strings.TrimSpace(content[offset:stop])

		switch {
		case found && line == m.Begin:
			return span{}, false, &CorruptBlockError{Markers: m, Line: lineNo, Duplicate: true}
		case !inBlock && line == m.Begin:
			inBlock = true
			beginLn = lineNo
			s.beginStart = offset
			s.bodyStart = stop
		case inBlock && line == m.Begin:
			return span{}, false, &CorruptBlockError{Markers: m, Line: beginLn}
		case inBlock && line == m.End:
			s.endStart = offset
			s.endStop = stop
			inBlock = false
			found = true
		}
		offset = stop
	}
	if inBlock {
		return span{}, false, &CorruptBlockError{Markers: m, Line: beginLn}
	}
	return s, found, nil
}

// normalizeBody makes a non-empty body end with exactly one line break
// so that the end marker always starts a fresh line.
func normalizeBody(body string) string {
	if body == "" {
		return ""
	}
	return strings.TrimRight(body, "\n") + "\n"
}

// Apply returns content with the block framed by m set to body.
// If the block is absent it is appended, separated from existing content by a
// blank line. Content outside the markers is preserved byte-for-byte.
func Apply(content string, m Markers, body string) (string, Action, error) {
	body = normalizeBody(body)

	s, found, err := find(content, m)
	if err != nil {
		return content, Unchanged, err
	}

	if found {
		if content[s.bodyStart:s.endStart] == body {
			return content, Unchanged, nil
		}
		return content[:s.bodyStart] + body + content[s.endStart:], Replaced, nil
	}

	var b strings.Builder
	b.WriteString(content)
	if content != "" {
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		if !strings.HasSuffix(content, "\n\n") {
			b.WriteString("\n")
		}
	}
	b.WriteString(m.Begin)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString(m.End)
	b.WriteString("\n")
	return b.String(), Appended, nil
}

// Extract returns the body of the block framed by m.
func Extract(content string, m Markers) (string, bool, error) {
	s, found, err := find(content, m)
	if err != nil || !found {
		return "", false, err
	}
	return content[s.bodyStart:s.endStart], true, nil
}

// Strip removes the block framed by m, markers included, along with one blank
// separator line that Apply would have inserted before it.
func Strip(content string, m Markers) (string, bool, error) {
	s, found, err := find(content, m)
	if err != nil || !found {
		return content, false, err
	}
	before := content[:s.beginStart]
	if strings.HasSuffix(before, "\n\n") {
		before = before[:len(before)-1]
	}
	return before + content[s.endStop:], true, nil
}

// Merge applies b to the file at b.Path, creating the file and its parent
// directories if needed. On any error the file is left untouched.
func Merge(b Block) (Result, error) {
	res := Result{Path: b.Path}

	old, existed, err := readIfExists(b.Path)
	if err != nil {
		return res, err
	}

	updated, action, err := Apply(old, b.Markers, b.Body)
	if err != nil {
		var corrupt *CorruptBlockError
		if errors.As(err, &corrupt) {
			corrupt.Path = b.Path
		}
		return res, err
	}
	if action == Unchanged {
		return res, nil
	}
	if !existed {
		action = Created
	}

	if err := WriteAtomic(b.Path, []byte(updated)); err != nil {
		return res, err
	}
	res.Action = action
	return res, nil
}

// Remove deletes the block framed by m from the file at path.
// A missing file or block is not an error.
func Remove(path string, m Markers) (Result, error) {
	r, err := PrepareRemove(path, m)
	if err != nil {
		return Result{Path: path}, err
	}
	return r.Apply()
}

// Removal is a validated Remove that has not touched the file yet.
type Removal struct {
	path    string
	updated string
	found   bool
}

// PrepareRemove reads path and strips the block framed by m in memory. A
// corrupt block is reported here, before any caller writes elsewhere.
func PrepareRemove(path string, m Markers) (*Removal, error) {
	r := &Removal{path: path}

	old, existed, err := readIfExists(path)
	if err != nil || !existed {
		return r, err
	}
	updated, found, err := Strip(old, m)
	if err != nil {
		var corrupt *CorruptBlockError
		if errors.As(err, &corrupt) {
			corrupt.Path = path
		}
		return nil, err
	}
	r.updated, r.found = updated, found
	return r, nil
}

// Apply writes the stripped content. It is a no-op when there was no block.
func (r *Removal) Apply() (Result, error) {
	res := Result{Path: r.path}
	if !r.found {
		return res, nil
	}
	if err := WriteAtomic(r.path, []byte(r.updated)); err != nil {
		return res, err
	}
	res.Action = Removed
	return res, nil
}

// Overwrite replaces the whole file with content. It is a no-op when the file
// already holds exactly content.
func Overwrite(path string, content []byte) (Result, error) {
	res := Result{Path: path}

	old, existed, err := readIfExists(path)
	if err != nil {
		return res, err
	}
	if existed && bytes.Equal([]byte(old), content) {
		return res, nil
	}
	if err := WriteAtomic(path, content); err != nil {
		return res, err
	}
	res.Action = Replaced
	if !existed {
		res.Action = Created
	}
	return res, nil
}

func readIfExists(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), true, nil
}
