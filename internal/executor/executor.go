package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jarvis-assistant/pkg/shell"
)

// Execute runs actions one after another. A failing action becomes an
// "Error: " line and does not stop the ones after it.
func (e *Executor) Execute(ctx context.Context, actions []string) Result {
	return e.execute(ctx, actions, false)
}

// Launch is Execute for actions that open programs meant to stay open.
// Shell actions still running after the launch grace period are left in the
// background and count as successes instead of timing out.
func (e *Executor) Launch(ctx context.Context, actions []string) Result {
	return e.execute(ctx, actions, true)
}

func (e *Executor) execute(ctx context.Context, actions []string, launch bool) Result {
	res := Result{Lines: make([]string, 0, len(actions))}
	for _, action := range actions {
		line, err := e.run(ctx, action, launch)
		if err != nil {
			e.l.Warnf(ctx, "internal.executor.Execute: action %q failed: %v", action, err)
			line = ErrorPrefix + err.Error()
		}
		res.Lines = append(res.Lines, line)
	}
	return res
}

func (e *Executor) run(ctx context.Context, action string, launch bool) (string, error) {
	if h, ok := e.registry.Match(action); ok {
		e.l.Debugf(ctx, "internal.executor.run: %s handled by %s", action, h.Prefix())
		return h.Handle(ctx, action)
	}

	var (
		out shell.Result
		err error
	)
	if launch {
		e.l.Infof(ctx, "internal.executor.run: launching %s", action)
		out, err = e.shell.Launch(ctx, action)
	} else {
		e.l.Infof(ctx, "internal.executor.run: executing %s", action)
		out, err = e.shell.Run(ctx, action)
	}
	if err != nil {
		return "", err
	}
	if out.Detached {
		e.l.Infof(ctx, "internal.executor.run: %s left running after %s", action, out.Duration.Round(time.Millisecond))
	}
	if !out.OK() {
		detail := strings.TrimSpace(out.Stderr)
		if detail == "" {
			detail = fmt.Sprintf("exit status %d", out.ExitCode)
		}
		return "", errors.New(detail)
	}

	stdout := strings.TrimRight(out.Stdout, "\r\n")
	if strings.TrimSpace(stdout) == "" {
		return MsgCommandSucceeded, nil
	}
	return stdout, nil
}
