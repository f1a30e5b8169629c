//go:build unix

package shell

import (
	"os/exec"
	"syscall"
)

// detach puts the launched program in a new session so it outlives the
// request and is not hit by signals sent to the server's process group.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
