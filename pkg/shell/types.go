package shell

import (
	"fmt"
	"os/exec"
	"time"
)

// Config holds shell runner configuration.
type Config struct {
	Shell   string
	Timeout time.Duration
	// LaunchGrace is how long Launch watches a program before leaving it
	// running in the background.
	LaunchGrace time.Duration
	MaxOutput   int
	Dir         string
	Env         []string
}

// Validate fills defaults and checks the shell exists.
func (c *Config) Validate() error {
	if c.Shell == "" {
		c.Shell = DefaultShell
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.LaunchGrace <= 0 {
		c.LaunchGrace = DefaultLaunchGrace
	}
	if c.MaxOutput <= 0 {
		c.MaxOutput = DefaultMaxOutput
	}
	if _, err := exec.LookPath(c.Shell); err != nil {
		return fmt.Errorf("shell: %s not found: %w", c.Shell, err)
	}
	return nil
}

// Result is the outcome of one command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	// Detached is set by Launch when the program was still running after
	// the grace period and was left in the background.
	Detached bool
}

// OK reports a zero exit code.
func (r Result) OK() bool {
	return r.ExitCode == 0
}

type shellImpl struct {
	shell       string
	timeout     time.Duration
	launchGrace time.Duration
	maxOutput   int
	dir         string
	env         []string
}
