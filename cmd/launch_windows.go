//go:build windows

package cmd

import (
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/spf13/afero"
	"golang.org/x/sys/windows"
	"k8s.io/klog/v2"
)

var executableExts = []string{".exe"}

func executableMode(os.FileMode) bool { return true }

func envKeyEqual(a, b string) bool { return strings.EqualFold(a, b) }

func rawCommandLine() (string, bool) {
	p := windows.GetCommandLine()
	if p == nil {
		return "", false
	}
	return windows.UTF16PtrToString(p), true
}

func signalStatus(*os.ProcessState) (int, bool) { return 0, false }

func newPlatformLauncher(fs afero.Fs) Launcher {
	return &windowsLauncher{fs: fs}
}

// windowsLauncher spawns zig.exe with a command line made of the resolved
// path, the subcommand and the untouched tail of our own command line, then
// waits for it.
type windowsLauncher struct {
	fs afero.Fs
}

func (l *windowsLauncher) Launch(inv Invocation) (int, error) {
	path, err := lookPath(l.fs, inv.Driver, envValue(inv.Env, "PATH"), executableExts)
	if err != nil {
		return exitFailure, err
	}

	line := windowsCommandLine(path, inv)
	klog.V(1).Infof("spawning %s", line)

	c := exec.Command(path, inv.Args...)
	c.SysProcAttr = &syscall.SysProcAttr{CmdLine: line}
	c.Env = inv.Env
	c.Stdin = inv.Stdin
	c.Stdout = inv.Stdout
	c.Stderr = inv.Stderr
	return runChild(c)
}

func windowsCommandLine(path string, inv Invocation) string {
	var b strings.Builder
	b.WriteString(`"`)
	b.WriteString(path)
	b.WriteString(`" `)
	b.WriteString(inv.Args[0])
	if inv.HasTail {
		b.WriteString(inv.Tail)
		return b.String()
	}
	for _, a := range inv.Args[1:] {
		b.WriteByte(' ')
		b.WriteString(windows.EscapeArg(a))
	}
	return b.String()
}
