package executor

import "errors"

var ErrNotConfigured = errors.New("not configured")
