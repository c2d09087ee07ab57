package cmd

import (
	"errors"
	"os/exec"

	"github.com/spf13/afero"
	"k8s.io/klog/v2"
)

// spawnLauncher runs the driver as a child process with the forwarded
// arguments and waits for it to finish.
type spawnLauncher struct {
	fs afero.Fs
}

func (l *spawnLauncher) Launch(inv Invocation) (int, error) {
	path, err := lookPath(l.fs, inv.Driver, envValue(inv.Env, "PATH"), executableExts)
	if err != nil {
		return exitFailure, err
	}
	klog.V(1).Infof("spawning %s %v", path, inv.Args)

	c := exec.Command(path, inv.Args...)
	c.Env = inv.Env
	c.Stdin = inv.Stdin
	c.Stdout = inv.Stdout
	c.Stderr = inv.Stderr
	return runChild(c)
}

// runChild starts c, waits for it and returns its exit status.
func runChild(c *exec.Cmd) (int, error) {
	err := c.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitStatus(exitErr.ProcessState)
		klog.V(1).Infof("%s exited with status %d", c.Path, code)
		return code, nil
	}
	if err != nil {
		return exitFailure, &LaunchError{Path: c.Path, Err: err}
	}
	return exitSuccess, nil
}
