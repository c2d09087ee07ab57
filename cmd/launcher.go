package cmd

import (
	"fmt"
	"io"
	"os"
)

// Invocation describes one launch of the driver.
type Invocation struct {
	// Driver is the executable name searched on PATH.
	Driver string
	// Args is the forwarded argument list, subcommand first.
	Args []string
	// Tail is the unparsed command-line tail of the current process, used by
	// launchers that hand a raw command line to the OS. HasTail reports
	// whether it was available.
	Tail    string
	HasTail bool

	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Launcher starts the driver for inv, waits for it and returns its exit
// status. Launchers that replace the current process only return on failure.
type Launcher interface {
	Launch(inv Invocation) (int, error)
}

// LookupError reports that the driver executable is not on PATH.
type LookupError struct {
	Name string
	Path string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("could not find %s binary in PATH %q: %v", e.Name, e.Path, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// LaunchError reports that the OS refused to start the driver.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// exitStatus converts a finished process state into the status this
// process should exit with.
func exitStatus(state *os.ProcessState) int {
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	if code, ok := signalStatus(state); ok {
		return code
	}
	return exitFailure
}
