package conn

import (
	"fmt"
	"strings"
)

// BindError reports a failure to bind the listening address: the port is
// already taken by another process, or binding it needs privileges the
// process does not have.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %s", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// ConnectionError reports a failure to establish the connection: the accept
// call failed, or the remote is unreachable or refused. Nothing is retried;
// the caller decides what to do.
type ConnectionError struct {
	Op   string // "accept" or "connect"
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// StreamError reports a read or write failure after the connection has been
// established. The connection stays nominally open until the caller closes it.
type StreamError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("stream %s: %s", e.Op, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// CloseError collects the failures of an ordered teardown. Every release step
// is attempted even when an earlier one fails; the error reports all of them.
type CloseError struct {
	Errs []error
}

func (e *CloseError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("close: %s", strings.Join(msgs, "; "))
}

func (e *CloseError) Unwrap() []error {
	return e.Errs
}

// CollectClose runs the release steps in order, attempting every step
// regardless of earlier failures. A step failure is recorded with its name;
// the result is nil when all steps succeed.
func CollectClose(steps ...func() error) error {
	var errs []error
	for _, step := range steps {
		if step == nil {
			continue
		}
		if err := step(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &CloseError{Errs: errs}
}
