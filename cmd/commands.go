// Package cmd implements zigfwd, a dispatcher that picks a zig subcommand
// from the name it was invoked as and forwards its arguments to the zig
// driver.
package cmd

const (
	// DriverName is the multi-tool driver looked up on PATH.
	DriverName = "zig"
	// DefaultCommand is used when the invocation name does not select one.
	DefaultCommand = "cc"
	// commandTag must precede the last dash of the invocation name.
	commandTag = "zig"
)

const (
	// MaxArgs is the number of argument slots the forwarder supports.
	MaxArgs = 4096
	// MaxCommandLine is the combined command-line length the forwarder supports.
	// Going past the platform limits is reported by the OS when launching.
	MaxCommandLine = 64 * 1024
)

const (
	exitSuccess = 0
	exitFailure = 1
)

// CommandTable lists the zig subcommands reachable through a zig-<cmd> name.
var CommandTable = []string{
	"cc",
	"c++",
	"ar",
	"dlltool",
	"lib",
	"ranlib",
	"objcopy",
}
