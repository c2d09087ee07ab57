package cmd

import "strings"

// BuildArgs returns the argument list handed to the driver: command first,
// followed by args in their original order. args is not modified.
func BuildArgs(command string, args []string) []string {
	fwd := make([]string, 0, len(args)+1)
	fwd = append(fwd, command)
	return append(fwd, args...)
}

// commandLineTail returns everything after the program name of an unparsed
// command line, including the separating space, so that the original
// quoting survives re-launching. A quoted program name ends at the first
// `" ` sequence, an unquoted one at the first space.
func commandLineTail(line string) string {
	if strings.HasPrefix(line, `"`) {
		if i := strings.Index(line[1:], `" `); i >= 0 {
			return line[1+i+1:]
		}
		return ""
	}
	if i := strings.IndexByte(line, ' '); i >= 0 {
		return line[i:]
	}
	return ""
}
