package cmd

import "strings"

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// byteAt returns the i-th byte of s, or 0 once i runs past the end of s.
func byteAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// compareFold compares at most n bytes of a and b ignoring ASCII case.
// The end of a string behaves as a terminating NUL: two strings that end at
// the same position inside the window are equal, a string that ends first
// orders before the other. It returns a negative number, zero or a positive
// number like strings.Compare.
func compareFold(a, b string, n int) int {
	for i := 0; i < n; i++ {
		ca, cb := byteAt(a, i), byteAt(b, i)
		la, lb := lowerASCII(ca), lowerASCII(cb)
		if la != lb {
			return int(la) - int(lb)
		}
		if ca == 0 {
			return 0
		}
	}
	return 0
}

// LookupCommand extracts the subcommand from an invocation name of the form
// zig-<cmd>[.ext]. The bytes between the last '-' and the last '.' (or the
// end of name) must match a CommandTable entry ignoring case, and the three
// bytes before that '-' must spell "zig". The canonical table spelling is
// returned. When nothing matches it returns DefaultCommand and false.
func LookupCommand(name string) (string, bool) {
	dash := strings.LastIndexByte(name, '-')
	if dash < len(commandTag) {
		return DefaultCommand, false
	}
	if compareFold(name[dash-len(commandTag):dash], commandTag, len(commandTag)) != 0 {
		return DefaultCommand, false
	}

	end := strings.LastIndexByte(name, '.')
	if end < 0 {
		end = len(name)
	}
	if end <= dash {
		return DefaultCommand, false
	}

	candidate := name[dash+1 : end]
	for _, c := range CommandTable {
		if len(c) == len(candidate) && compareFold(candidate, c, len(c)) == 0 {
			return c, true
		}
	}
	return DefaultCommand, false
}

// ResolveCommand returns the subcommand selected by name, falling back to
// DefaultCommand.
func ResolveCommand(name string) string {
	c, _ := LookupCommand(name)
	return c
}
