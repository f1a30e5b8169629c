package shell

import "errors"

var (
	ErrEmptyCommand = errors.New("shell: empty command")
	ErrTimeout      = errors.New("shell: command timed out")
)
