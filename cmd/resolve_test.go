package cmd

import (
	"strings"
	"testing"
)

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestCompareFold(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		n    int
		want int
	}{
		{"equal", "zig", "zig", 3, 0},
		{"case differs", "ZiG", "zIg", 3, 0},
		{"zero window", "abc", "xyz", 0, 0},
		{"mismatch inside window", "abc", "abd", 3, -1},
		{"mismatch outside window", "abc", "abd", 2, 0},
		{"greater", "b", "A", 1, 1},
		{"both end inside window", "ab", "AB", 5, 0},
		{"a ends first", "zi", "zig", 3, -1},
		{"b ends first", "zig", "zi", 3, 1},
		{"empty strings", "", "", 4, 0},
		{"empty against text", "", "cc", 2, -1},
		{"non letters kept", "c++", "C++", 3, 0},
		{"plus is not a letter", "c++", "c==", 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sign(compareFold(tt.a, tt.b, tt.n)); got != tt.want {
				t.Errorf("compareFold(%q, %q, %d) sign = %d, want %d", tt.a, tt.b, tt.n, got, tt.want)
			}
		})
	}
}

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		matched bool
	}{
		{"zig-cc", "cc", true},
		{"zig-c++", "c++", true},
		{"zig-C++", "c++", true},
		{"ZIG-AR", "ar", true},
		{"zig-ar.exe", "ar", true},
		{"Zig-DllTool.EXE", "dlltool", true},
		{"zig-lib", "lib", true},
		{"zig-ranlib.bin", "ranlib", true},
		{"zig-objcopy", "objcopy", true},
		{"x86_64-linux-zig-ar", "ar", true},
		{"foo", "cc", false},
		{"zig-foobar", "cc", false},
		{"zig-a", "cc", false},
		{"zig-arr", "cc", false},
		{"zig-", "cc", false},
		{"zig", "cc", false},
		{"-ar", "cc", false},
		{"ig-ar", "cc", false},
		{"zag-ar", "cc", false},
		{"zig-ar-x", "cc", false},
		{"zig.d-ar", "cc", false},
		{"x.d/zig-ar", "cc", false},
		{"/usr/bin/zig-ar", "ar", true},
		{"zig-ar.", "ar", true},
		{"zig-.exe", "cc", false},
		{"", "cc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupCommand(tt.name)
			if got != tt.want || ok != tt.matched {
				t.Errorf("LookupCommand(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.matched)
			}
		})
	}
}

func TestResolveCommandCanonicalCase(t *testing.T) {
	for _, c := range CommandTable {
		for _, name := range []string{
			"zig-" + c,
			"ZIG-" + strings.ToUpper(c),
			"zig-" + strings.ToUpper(c) + ".exe",
		} {
			if got := ResolveCommand(name); got != c {
				t.Errorf("ResolveCommand(%q) = %q, want %q", name, got, c)
			}
		}
	}
}

func TestResolveCommandNeverEmpty(t *testing.T) {
	for _, name := range []string{"", "-", ".", "zig-.", "---", "zig-zig-"} {
		if got := ResolveCommand(name); got == "" {
			t.Errorf("ResolveCommand(%q) returned an empty command", name)
		}
	}
}

func BenchmarkLookupCommand(b *testing.B) {
	for i := 0; i < b.N; i++ {
		LookupCommand("zig-objcopy.exe")
	}
}
