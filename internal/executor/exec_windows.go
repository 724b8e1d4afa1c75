//go:build windows

package executor

import (
	"os"
	"os/signal"

	"golang.org/x/sys/windows"
)

// relaySignals swallows Ctrl-C and Ctrl-Break in shnote while the child runs.
// The console delivers the same event to the child, which decides how to end.
func relaySignals() (attach func(*os.Process), stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for {
			select {
			case <-ch:
			case <-done:
				return
			}
		}
	}()

	attach = func(*os.Process) {}
	stop = func() {
		signal.Stop(ch)
		close(done)
		<-finished
	}
	return attach, stop
}

// exitResult passes the child's exit code through verbatim. Windows has no
// signals; a child ended by Ctrl-C exits with STATUS_CONTROL_C_EXIT.
func exitResult(state *os.ProcessState) Result {
	code := state.ExitCode()
	return Result{
		ExitCode:    code,
		Interrupted: uint32(code) == uint32(windows.STATUS_CONTROL_C_EXIT),
	}
}
