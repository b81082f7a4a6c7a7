package errcode

import "errors"

// Code is a stable, caller-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	InvalidParams Code = "invalid_params"
	Unsupported   Code = "unsupported"

	Transport      Code = "transport"
	VerifyMismatch Code = "verify_mismatch"
	InvalidValue   Code = "invalid_value"
	ReadOnly       Code = "read_only"
	ReadClear      Code = "read_clear"
	PartMismatch   Code = "part_mismatch"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap attaches a code and operation to err. A nil err stays nil.
func Wrap(c Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: c, Op: op, Err: err}
}

type coder interface{ Code() Code }

// Of extracts a Code from an error, defaulting to Error.
// The chain is walked, so a coded error wrapped by fmt.Errorf still reports its code.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	return Error
}

// Retryable reports whether repeating the same call may succeed. Bad input
// and refused writes never change on retry.
func Retryable(err error) bool {
	switch Of(err) {
	case Transport, VerifyMismatch:
		return true
	default:
		return false
	}
}
