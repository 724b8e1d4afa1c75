package executor

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/i18n"
)

// Result is how a child process ended.
type Result struct {
	// ExitCode is the code shnote itself should exit with.
	ExitCode int
	// Signaled is set when a POSIX child was killed by a signal.
	Signaled   bool
	Signal     int
	SignalName string
	// Interrupted is set when the child ended because of Ctrl-C.
	Interrupted bool
}

// Streams are the standard streams handed to the child.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdStreams returns the process's own standard streams. Passing *os.File
// values lets the child inherit the descriptors directly with no copying.
func StdStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Runner spawns children and waits for them.
type Runner struct {
	cat     *i18n.Catalog
	log     *zap.Logger
	streams Streams
}

// NewRunner returns a runner using the given streams.
func NewRunner(cat *i18n.Catalog, log *zap.Logger, streams Streams) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{cat: cat, log: log, streams: streams}
}

// Run starts the child and blocks until it exits. A non-zero exit is not an
// error; it is reported in Result. Errors mean the child could not be started
// or its streams failed.
func (r *Runner) Run(spec ChildSpec) (Result, error) {
	cmd := exec.Command(spec.Program, spec.Args...)
	cmd.Env = append(os.Environ(), spec.Env...)
	cmd.Stdout = r.streams.Stdout
	cmd.Stderr = r.streams.Stderr
	switch spec.Stdin {
	case StdinInherit:
		cmd.Stdin = r.streams.Stdin
	case StdinPiped:
		cmd.Stdin = bytes.NewReader(spec.Input)
	case StdinNull:
		cmd.Stdin = nil
	}

	r.log.Debug("spawning child",
		zap.String("program", spec.Program),
		zap.Strings("args", spec.Args),
		zap.Stringer("stdin", spec.Stdin))

	// Installed before Start: caught signals reset to default in the child,
	// while ignored ones would stay ignored.
	attach, stop := relaySignals()
	defer stop()

	if err := cmd.Start(); err != nil {
		name := spec.Tool
		if name == "" {
			name = spec.Program
		}
		return Result{}, errors.ChildSpawnFailed(r.cat, name, err)
	}
	attach(cmd.Process)

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			return Result{}, errors.Wrap(err, errors.Runtime)
		}
	}

	res := exitResult(cmd.ProcessState)
	r.log.Debug("child exited",
		zap.Int("pid", cmd.ProcessState.Pid()),
		zap.Int("exit_code", res.ExitCode),
		zap.Bool("signaled", res.Signaled))
	return res, nil
}
