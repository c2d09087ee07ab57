//go:build !unix && !windows

package cmd

import (
	"os"

	"github.com/spf13/afero"
)

var executableExts = []string{""}

func executableMode(os.FileMode) bool { return true }

func envKeyEqual(a, b string) bool { return a == b }

func rawCommandLine() (string, bool) { return "", false }

func signalStatus(*os.ProcessState) (int, bool) { return 0, false }

func newPlatformLauncher(fs afero.Fs) Launcher {
	return &spawnLauncher{fs: fs}
}
