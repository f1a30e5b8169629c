package shell

import "context"

// IShell runs shell command lines. Implementations are safe for concurrent use.
type IShell interface {
	// Run executes command and waits for it. A non-zero exit is reported in
	// Result.ExitCode, not as an error; errors mean the command could not run
	// to completion.
	Run(ctx context.Context, command string) (Result, error)

	// Launch starts a program the user wants to keep open, such as a
	// browser or a camera app, and returns once it has either exited or
	// survived the launch grace period.
	Launch(ctx context.Context, command string) (Result, error)

	// Available reports whether program is on PATH.
	Available(program string) bool
}

// New creates a shell runner with the given configuration.
func New(cfg Config) (IShell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newShellImpl(cfg), nil
}
