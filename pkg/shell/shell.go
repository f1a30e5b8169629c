package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// commandContext is swapped in tests.
var commandContext = exec.CommandContext

func newShellImpl(cfg Config) *shellImpl {
	return &shellImpl{
		shell:       cfg.Shell,
		timeout:     cfg.Timeout,
		launchGrace: cfg.LaunchGrace,
		maxOutput:   cfg.MaxOutput,
		dir:         cfg.Dir,
		env:         cfg.Env,
	}
}

// Run executes command with "<shell> -c".
func (s *shellImpl) Run(ctx context.Context, command string) (Result, error) {
	if strings.TrimSpace(command) == "" {
		return Result{}, ErrEmptyCommand
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := commandContext(ctx, s.shell, "-c", command)
	s.prepare(cmd)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	res := Result{
		Stdout:   s.truncate(strings.TrimSpace(stdout.String())),
		Stderr:   s.truncate(strings.TrimSpace(stderr.String())),
		Duration: time.Since(start),
	}

	if err == nil {
		return res, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		res.ExitCode = -1
		return res, fmt.Errorf("%w after %s", ErrTimeout, s.timeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}

	res.ExitCode = -1
	return res, fmt.Errorf("shell: run: %w", err)
}

// Launch starts command in its own session and watches it for the launch
// grace period. A program that exits in time is reported like Run; one that
// is still running is left in the background and reported as a detached
// success. The program is not tied to ctx.
func (s *shellImpl) Launch(ctx context.Context, command string) (Result, error) {
	if strings.TrimSpace(command) == "" {
		return Result{}, ErrEmptyCommand
	}

	cmd := commandContext(context.Background(), s.shell, "-c", command)
	s.prepare(cmd)
	detach(cmd)

	stdout := &cappedBuffer{max: s.maxOutput}
	stderr := &cappedBuffer{max: s.maxOutput}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Result{ExitCode: -1}, fmt.Errorf("shell: start: %w", err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(s.launchGrace)
	defer timer.Stop()

	select {
	case err := <-done:
		res := Result{
			Stdout:   s.truncate(strings.TrimSpace(stdout.String())),
			Stderr:   s.truncate(strings.TrimSpace(stderr.String())),
			Duration: time.Since(start),
		}
		if err == nil {
			return res, nil
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		res.ExitCode = -1
		return res, fmt.Errorf("shell: run: %w", err)
	case <-timer.C:
	case <-ctx.Done():
	}

	return Result{
		Stdout:   s.truncate(strings.TrimSpace(stdout.String())),
		Duration: time.Since(start),
		Detached: true,
	}, nil
}

func (s *shellImpl) prepare(cmd *exec.Cmd) {
	cmd.Dir = s.dir
	cmd.Env = os.Environ()
	if len(s.env) > 0 {
		cmd.Env = append(cmd.Env, s.env...)
	}
}

// Available reports whether program is on PATH.
func (s *shellImpl) Available(program string) bool {
	_, err := exec.LookPath(program)
	return err == nil
}

func (s *shellImpl) truncate(out string) string {
	if len(out) > s.maxOutput {
		return out[:s.maxOutput] + truncatedSuffix
	}
	return out
}

// cappedBuffer keeps the first max bytes written and drops the rest. It is
// read while a launched program may still be writing to it.
type cappedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
	max int
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if room := b.max + 1 - b.buf.Len(); room > 0 {
		b.buf.Write(p[:min(len(p), room)])
	}
	return len(p), nil
}

func (b *cappedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Probe checks which of the given programs are installed.
func Probe(sh IShell, programs []string) map[string]bool {
	found := make(map[string]bool, len(programs))
	for _, p := range programs {
		found[p] = sh.Available(p)
	}
	return found
}
