package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is wrapped by LookupError when no PATH entry holds the driver.
var ErrNotFound = errors.New("executable file not found")

// lookPath searches the directories of pathList for an executable named
// file, trying every extension in exts. A file containing a path separator
// is checked as is. An empty PATH entry means the current directory.
func lookPath(fs afero.Fs, file, pathList string, exts []string) (string, error) {
	if strings.ContainsAny(file, `/`+string(filepath.Separator)) {
		if p, ok := findExecutable(fs, file, exts); ok {
			return p, nil
		}
		return "", &LookupError{Name: file, Path: pathList, Err: ErrNotFound}
	}

	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			dir = "."
		}
		if p, ok := findExecutable(fs, filepath.Join(dir, file), exts); ok {
			return p, nil
		}
	}
	return "", &LookupError{Name: file, Path: pathList, Err: ErrNotFound}
}

func findExecutable(fs afero.Fs, base string, exts []string) (string, bool) {
	for _, ext := range candidateExts(base, exts) {
		p := base + ext
		info, err := fs.Stat(p)
		if err != nil {
			continue
		}
		if isExecutable(info) {
			return p, true
		}
	}
	return "", false
}

// candidateExts keeps a name that already carries an extension unchanged.
func candidateExts(base string, exts []string) []string {
	if len(exts) == 0 || filepath.Ext(base) != "" {
		return []string{""}
	}
	return exts
}

func isExecutable(info os.FileInfo) bool {
	if info.IsDir() {
		return false
	}
	return executableMode(info.Mode())
}

// envValue returns the last value of key in env.
func envValue(env []string, key string) string {
	val := ""
	for _, kv := range env {
		k, v, ok := strings.Cut(kv, "=")
		if ok && envKeyEqual(k, key) {
			val = v
		}
	}
	return val
}
