//go:build unix

package cmd

import (
	"os"
	"syscall"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
	"k8s.io/klog/v2"
)

var executableExts = []string{""}

func executableMode(m os.FileMode) bool { return m&0o111 != 0 }

func envKeyEqual(a, b string) bool { return a == b }

// rawCommandLine is only meaningful on Windows.
func rawCommandLine() (string, bool) { return "", false }

// signalStatus maps a child killed by a signal to 128+signal, as shells do.
func signalStatus(state *os.ProcessState) (int, bool) {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return 0, false
	}
	return 128 + int(ws.Signal()), true
}

func newPlatformLauncher(fs afero.Fs) Launcher {
	return &execLauncher{fs: fs}
}

// execLauncher replaces the current process image with the driver. The
// driver inherits the process' file descriptors 0, 1 and 2, so the stdio
// fields of the Invocation are not consulted.
type execLauncher struct {
	fs afero.Fs
}

func (l *execLauncher) Launch(inv Invocation) (int, error) {
	path, err := lookPath(l.fs, inv.Driver, envValue(inv.Env, "PATH"), executableExts)
	if err != nil {
		return exitFailure, err
	}

	argv := make([]string, 0, len(inv.Args)+1)
	argv = append(argv, inv.Driver)
	argv = append(argv, inv.Args...)
	klog.V(1).Infof("exec %s %v", path, argv)
	klog.Flush()

	if err := unix.Exec(path, argv, inv.Env); err != nil {
		return exitFailure, &LaunchError{Path: path, Err: err}
	}
	return exitSuccess, nil
}
