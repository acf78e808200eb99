package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"
)

// ErrorKind tags a delivery failure so retry decisions are driven by the
// tag, never by matching message text.
type ErrorKind int

const (
	// KindUnknown is an unclassified failure. Not retried.
	KindUnknown ErrorKind = iota
	// KindTransient is a retryable network or timing fault.
	KindTransient
	// KindAuth is a credential or configuration fault. Never retried, and
	// logged distinctly so operators can tell "misconfigured" from "flaky
	// network".
	KindAuth
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindAuth:
		return "auth"
	}
	return "unknown"
}

// SendError is a tagged delivery failure.
type SendError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *SendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mail %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("mail %s: %s", e.Op, e.Kind)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// Transient wraps err as a retryable failure.
func Transient(op string, err error) *SendError {
	return &SendError{Kind: KindTransient, Op: op, Err: err}
}

// Auth wraps err as a non-retryable credential failure.
func Auth(op string, err error) *SendError {
	return &SendError{Kind: KindAuth, Op: op, Err: err}
}

// Unknown wraps err as an unclassified failure.
func Unknown(op string, err error) *SendError {
	return &SendError{Kind: KindUnknown, Op: op, Err: err}
}

// ErrNotConfigured reports that mail credentials are absent. Treated as an
// authentication-class failure: fail fast, no retry.
var ErrNotConfigured = Auth("configure", errors.New("mail credentials not configured"))

// classify translates an underlying SMTP/network error into a tagged
// SendError at the collaborator boundary. SendErrors pass through untouched.
func classify(op string, err error) *SendError {
	var se *SendError
	if errors.As(err, &se) {
		return se
	}

	// SMTP reply codes: 530/534/535 are authentication-class, the 4xx
	// family is "try again later".
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		switch tpErr.Code {
		case 530, 534, 535:
			return Auth(op, err)
		case 421, 450, 451, 452, 454:
			return Transient(op, err)
		default:
			return Unknown(op, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Transient(op, err)
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return Transient(op, err)
	}
	var operr *net.OpError
	if errors.As(err, &operr) {
		// Connection resets and refused dials are network faults.
		return Transient(op, err)
	}

	return Unknown(op, err)
}
