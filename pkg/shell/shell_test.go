package shell

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func newTestShell(t *testing.T, cfg Config) IShell {
	t.Helper()
	if cfg.Shell == "" {
		cfg.Shell = "sh"
	}
	sh, err := New(cfg)
	if err != nil {
		t.Skipf("shell unavailable: %v", err)
	}
	return sh
}

func TestRun_Success(t *testing.T) {
	sh := newTestShell(t, Config{})

	res, err := sh.Run(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK() {
		t.Errorf("expected exit 0, got %d", res.ExitCode)
	}
	if res.Stdout != "hello" {
		t.Errorf("stdout = %q, want hello", res.Stdout)
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	sh := newTestShell(t, Config{})

	res, err := sh.Run(context.Background(), "echo oops >&2; exit 3")
	if err != nil {
		t.Fatalf("non-zero exit should not be an error, got %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", res.ExitCode)
	}
	if res.Stderr != "oops" {
		t.Errorf("stderr = %q, want oops", res.Stderr)
	}
}

func TestRun_FallbackChain(t *testing.T) {
	sh := newTestShell(t, Config{})

	res, err := sh.Run(context.Background(), "definitely-not-a-program-xyz 2>/dev/null || echo fallback")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "fallback" {
		t.Errorf("stdout = %q, want fallback", res.Stdout)
	}
}

func TestRun_Timeout(t *testing.T) {
	sh := newTestShell(t, Config{Timeout: 50 * time.Millisecond})

	_, err := sh.Run(context.Background(), "sleep 5")
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}

func TestRun_EmptyCommand(t *testing.T) {
	sh := newTestShell(t, Config{})

	if _, err := sh.Run(context.Background(), "   "); !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("expected ErrEmptyCommand, got %v", err)
	}
}

func TestRun_TruncatesOutput(t *testing.T) {
	sh := newTestShell(t, Config{MaxOutput: 4})

	res, err := sh.Run(context.Background(), "echo abcdefgh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(res.Stdout, "abcd") || !strings.HasSuffix(res.Stdout, "(output truncated)") {
		t.Errorf("unexpected truncated output %q", res.Stdout)
	}
}

func TestRun_UsesShellDashC(t *testing.T) {
	var gotName string
	var gotArgs []string
	orig := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotName, gotArgs = name, args
		return exec.CommandContext(ctx, "true")
	}
	defer func() { commandContext = orig }()

	sh := newTestShell(t, Config{})
	if _, err := sh.Run(context.Background(), `mkdir -p "a b"`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotName != "sh" || len(gotArgs) != 2 || gotArgs[0] != "-c" || gotArgs[1] != `mkdir -p "a b"` {
		t.Errorf("unexpected invocation %s %v", gotName, gotArgs)
	}
}

func TestProbe(t *testing.T) {
	sh := newTestShell(t, Config{})

	got := Probe(sh, []string{"sh", "definitely-not-a-program-xyz"})
	if !got["sh"] {
		t.Errorf("expected sh to be available")
	}
	if got["definitely-not-a-program-xyz"] {
		t.Errorf("expected missing program to be unavailable")
	}
}

func TestLaunch(t *testing.T) {
	sh := newTestShell(t, Config{Timeout: 100 * time.Millisecond, LaunchGrace: 200 * time.Millisecond})

	t.Run("long running program is left open", func(t *testing.T) {
		start := time.Now()
		res, err := sh.Launch(context.Background(), `"sleep" 3`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.OK() || !res.Detached {
			t.Errorf("expected detached success, got %+v", res)
		}
		if elapsed := time.Since(start); elapsed > 2*time.Second {
			t.Errorf("launch blocked for %s", elapsed)
		}
	})

	t.Run("quick exit is reported like run", func(t *testing.T) {
		res, err := sh.Launch(context.Background(), "echo opened")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Detached || res.Stdout != "opened" {
			t.Errorf("unexpected result %+v", res)
		}
	})

	t.Run("missing program falls through the chain", func(t *testing.T) {
		res, err := sh.Launch(context.Background(), "definitely-not-a-program-xyz 2>/dev/null || sleep 3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Detached {
			t.Errorf("expected fallback program to stay open, got %+v", res)
		}
	})

	t.Run("failure within grace", func(t *testing.T) {
		res, err := sh.Launch(context.Background(), "echo nope >&2; exit 4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ExitCode != 4 || res.Stderr != "nope" {
			t.Errorf("unexpected result %+v", res)
		}
	})
}
