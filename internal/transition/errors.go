package transition

import (
	"errors"
	"fmt"
)

// ErrSessionEnded is returned by Advance once a session has completed or
// been cancelled. No further frames are delivered after it.
var ErrSessionEnded = errors.New("transition session ended")

// DescriptorError is a fatal construction error: the descriptor cannot
// produce a valid session and none is created.
type DescriptorError struct {
	Field  string
	Reason string
}

func (e DescriptorError) Error() string {
	return fmt.Sprintf("invalid descriptor: %s %s", e.Field, e.Reason)
}

// SinkError wraps a render sink failure for a specific frame. Sink errors
// are recorded as diagnostics; they never stop the session.
type SinkError struct {
	Frame int
	Err   error
}

func (e SinkError) Error() string {
	return fmt.Sprintf("sink failed on frame %d: %v", e.Frame, e.Err)
}

func (e SinkError) Unwrap() error { return e.Err }
