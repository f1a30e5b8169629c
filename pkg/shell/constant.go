package shell

import "time"

const (
	// DefaultShell runs every command through "<shell> -c".
	DefaultShell = "bash"

	// DefaultTimeout bounds a single command.
	DefaultTimeout = 30 * time.Second

	// DefaultLaunchGrace is long enough for a missing program in a
	// "a || b" chain to fail over, short enough to keep replies quick.
	DefaultLaunchGrace = 2 * time.Second

	// DefaultMaxOutput caps captured stdout and stderr, each.
	DefaultMaxOutput = 64 * 1024

	// waitDelay bounds how long Run waits for orphaned children holding
	// the output pipes after the shell itself was killed.
	waitDelay = 2 * time.Second

	truncatedSuffix = "\n... (output truncated)"
)
