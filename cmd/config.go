package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

const (
	envConfigDir = "ZIGFWD_CONFIG_DIR"
	envFlags     = "ZIGFWD_FLAGS"
)

// Launch strategies.
const (
	// StrategyNative replaces the process on unix and spawns with the raw
	// command line on Windows.
	StrategyNative = "native"
	// StrategySpawn runs the driver as a child with an argument vector.
	StrategySpawn = "spawn"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the forwarder settings. None of them come from the command
// line, which belongs to the driver.
type Config struct {
	Driver    string
	Strategy  string
	Strict    bool
	TraceFile string
	Verbosity int
}

func defaultConfig() Config {
	return Config{
		Driver:   DriverName,
		Strategy: StrategyNative,
	}
}

// loadConfig starts from the defaults, applies the config directory named
// by ZIGFWD_CONFIG_DIR and then the flags in ZIGFWD_FLAGS.
func loadConfig(fs afero.Fs, getenv func(string) string) (Config, error) {
	cfg := defaultConfig()
	if dir := getenv(envConfigDir); dir != "" {
		cfg.readDir(fs, dir)
	}
	if flags := getenv(envFlags); strings.TrimSpace(flags) != "" {
		if err := cfg.parseFlags(flags); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.validate()
}

// readConfigValue reads one setting from a file named key inside dir.
// Missing, unreadable or blank files report false.
func readConfigValue(fs afero.Fs, dir, key string) (string, bool) {
	data, err := afero.ReadFile(fs, filepath.Join(dir, key))
	if err != nil {
		return "", false
	}
	v := strings.TrimSpace(string(data))
	return v, v != ""
}

// readDir applies a daemontools style directory holding one setting per
// file. Values that do not parse leave the current setting alone.
func (c *Config) readDir(fs afero.Fs, dir string) {
	if v, ok := readConfigValue(fs, dir, "driver"); ok {
		c.Driver = v
	}
	if v, ok := readConfigValue(fs, dir, "strategy"); ok && validStrategy(v) {
		c.Strategy = v
	}
	if v, ok := readConfigValue(fs, dir, "strict"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Strict = b
		}
	}
	if v, ok := readConfigValue(fs, dir, "trace"); ok {
		c.TraceFile = v
	}
	if v, ok := readConfigValue(fs, dir, "v"); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Verbosity = n
		}
	}
}

func (c *Config) parseFlags(s string) error {
	words, err := shellwords.Parse(s)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, envFlags, err)
	}

	fs := pflag.NewFlagSet(envFlags, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&c.Driver, "driver", c.Driver, "driver executable searched on PATH")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "launch strategy: native or spawn")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "reject invocation names that do not select a command")
	fs.StringVar(&c.TraceFile, "trace", c.TraceFile, "append a TAI64N stamped line per invocation to this file")
	fs.IntVarP(&c.Verbosity, "v", "v", c.Verbosity, "log verbosity")

	if err := fs.Parse(words); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, envFlags, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected argument %q", ErrInvalidConfig, envFlags, fs.Arg(0))
	}
	return nil
}

func (c Config) validate() error {
	switch {
	case c.Driver == "":
		return fmt.Errorf("%w: empty driver name", ErrInvalidConfig)
	case !validStrategy(c.Strategy):
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, c.Strategy)
	case c.Verbosity < 0:
		return fmt.Errorf("%w: negative verbosity %d", ErrInvalidConfig, c.Verbosity)
	}
	return nil
}

func validStrategy(s string) bool {
	return s == StrategyNative || s == StrategySpawn
}
