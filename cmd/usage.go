package cmd

import (
	"fmt"
	"io"
)

// printUsage lists every name the forwarder answers to.
func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Usage:")
	for _, c := range CommandTable {
		_, _ = fmt.Fprintf(w, "  zig-%s <args>\n", c)
	}
}
