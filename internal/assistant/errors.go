package assistant

import "errors"

var (
	ErrEmptyText               = errors.New("text is empty")
	ErrNoResolutionFound       = errors.New("no resolution found")
	ErrNoResults               = errors.New("no results")
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
	ErrExecutionFailed         = errors.New("execution failed")
	ErrNoPendingExecution      = errors.New("no pending execution")
	ErrConfirmationRequired    = errors.New("confirmation required")
)

// ReplyError carries the message spoken to the user next to the cause.
type ReplyError struct {
	Err     error
	Message string
}

func (e *ReplyError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Err.Error()
}

func (e *ReplyError) Unwrap() error {
	return e.Err
}
