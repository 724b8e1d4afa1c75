//go:build !windows

package executor

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// relaySignals keeps shnote alive until the child exits.
//
// SIGINT and SIGQUIT come from the terminal and reach the whole foreground
// process group, so they are only caught, never forwarded. SIGTERM and SIGHUP
// are often aimed at shnote's pid alone and are passed on to the attached child.
func relaySignals() (attach func(*os.Process), stop func()) {
	ch := make(chan os.Signal, 4)
	signal.Notify(ch, unix.SIGINT, unix.SIGQUIT, unix.SIGTERM, unix.SIGHUP)

	procs := make(chan *os.Process, 1)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		var child *os.Process
		for {
			select {
			case p := <-procs:
				child = p
			case sig := <-ch:
				if child == nil {
					continue
				}
				switch sig {
				case unix.SIGTERM, unix.SIGHUP:
					_ = child.Signal(sig)
				}
			case <-done:
				return
			}
		}
	}()

	attach = func(p *os.Process) { procs <- p }
	stop = func() {
		signal.Stop(ch)
		close(done)
		<-finished
	}
	return attach, stop
}

// exitResult maps a wait status to shnote's exit code: the child's own code,
// or 128+N when it was killed by signal N.
func exitResult(state *os.ProcessState) Result {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if ok && ws.Signaled() {
		sig := ws.Signal()
		return Result{
			ExitCode:    128 + int(sig),
			Signaled:    true,
			Signal:      int(sig),
			SignalName:  unix.SignalName(sig),
			Interrupted: sig == unix.SIGINT,
		}
	}
	return Result{ExitCode: state.ExitCode()}
}
