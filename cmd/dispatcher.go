package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"k8s.io/klog/v2"
)

// ErrUnknownCommand is reported in strict mode for names that do not select
// a CommandTable entry.
var ErrUnknownCommand = errors.New("invocation name does not select a zig command")

// Dispatcher turns one invocation of zig-<cmd> into a run of the driver.
type Dispatcher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Fs      afero.Fs
	Getenv  func(string) string
	Environ []string
	// CommandLine returns the unparsed command line of this process when the
	// platform keeps one.
	CommandLine func() (string, bool)
	// Launcher overrides the launcher picked from the configured strategy.
	Launcher Launcher
}

// NewDispatcher returns a Dispatcher bound to the running process.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Fs:          afero.NewOsFs(),
		Getenv:      os.Getenv,
		Environ:     os.Environ(),
		CommandLine: rawCommandLine,
	}
}

// Main is called with the process arguments and returns the exit status.
func Main(argv []string) int {
	return NewDispatcher().Run(argv)
}

// Run forwards argv[1:] to the subcommand selected by argv[0] and returns
// the driver's exit status, or 1 if the driver could not be run.
func (d *Dispatcher) Run(argv []string) int {
	if len(argv) < 2 {
		printUsage(d.Stderr)
		return exitFailure
	}
	_, calledAs := filepath.Split(argv[0])

	cfg, err := loadConfig(d.Fs, d.Getenv)
	if err != nil {
		d.report(calledAs, err)
		return exitFailure
	}
	setupLogging(cfg.Verbosity, d.Stderr)
	defer klog.Flush()
	klog.V(2).Infof("config: %+v", cfg)

	command, ok := LookupCommand(calledAs)
	if !ok {
		if cfg.Strict {
			d.report(calledAs, fmt.Errorf("%w: %q", ErrUnknownCommand, calledAs))
			printUsage(d.Stderr)
			return exitFailure
		}
		klog.V(1).Infof("%q does not select a command, using %q", calledAs, command)
	}
	fwd := BuildArgs(command, argv[1:])

	if cfg.TraceFile != "" {
		if err := appendTrace(d.Fs, cfg.TraceFile, calledAs, cfg.Driver, fwd); err != nil {
			klog.V(1).Infof("trace %s: %v", cfg.TraceFile, err)
		}
	}

	inv := Invocation{
		Driver: cfg.Driver,
		Args:   fwd,
		Env:    d.Environ,
		Stdin:  d.Stdin,
		Stdout: d.Stdout,
		Stderr: d.Stderr,
	}
	if d.CommandLine != nil {
		if line, ok := d.CommandLine(); ok {
			inv.Tail, inv.HasTail = commandLineTail(line), true
		}
	}

	code, err := d.launcher(cfg).Launch(inv)
	if err != nil {
		d.report(calledAs, err)
		return exitFailure
	}
	return code
}

func (d *Dispatcher) launcher(cfg Config) Launcher {
	if d.Launcher != nil {
		return d.Launcher
	}
	if cfg.Strategy == StrategySpawn {
		return &spawnLauncher{fs: d.Fs}
	}
	return newPlatformLauncher(d.Fs)
}

func (d *Dispatcher) report(name string, err error) {
	if name == "" {
		name = "zigfwd"
	}
	_, _ = fmt.Fprintf(d.Stderr, "%s: %v\n", name, err)
}
