package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/karasz/glibtai"
	"github.com/spf13/afero"
)

// formatTrace renders one trace line: TAI64N label, invocation name, then
// the driver command line.
func formatTrace(t glibtai.TAIN, name, driver string, args []string) string {
	return fmt.Sprintf("%s %s -> %s %s\n", t, name, driver, strings.Join(args, " "))
}

// appendTrace appends a trace line for this invocation to path.
func appendTrace(fs afero.Fs, path, name, driver string, args []string) error {
	f, err := fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(formatTrace(glibtai.TAINNow(), name, driver, args)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
