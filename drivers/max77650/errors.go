package max77650

import (
	"errors"

	"max77650-go/errcode"
	"max77650-go/x/conv"
)

var (
	// Bus
	ErrTransport = errors.New("max77650: bus transport failure")

	// Field layer
	ErrVerifyMismatch = errors.New("max77650: read-back does not match written value")
	ErrInvalidValue   = errors.New("max77650: value exceeds field width")
	ErrReadOnly       = errors.New("max77650: register or field is read-only")
	ErrReadClear      = errors.New("max77650: register is read-clear")
	ErrUnknownReg     = errors.New("max77650: unknown register")
	ErrInvalidChannel = errors.New("max77650: invalid channel")

	// Config / identity
	ErrInvalidAddress = errors.New("max77650: address must be 0x48 or 0x40")
	ErrInvalidPart    = errors.New("max77650: unknown part")
	ErrPartMismatch   = errors.New("max77650: detected part differs from configured part")
)

// Error carries the failing step and register alongside the cause.
// Op is one of "read", "write", "verify", "set", "get".
type Error struct {
	Op    string
	Reg   Register
	Field string // empty for register-level operations
	Err   error
}

func (e *Error) Error() string {
	b := make([]byte, 0, 64)
	b = append(b, "max77650: "...)
	b = append(b, e.Op...)
	b = append(b, ' ')
	if e.Field != "" {
		b = append(b, e.Field...)
		b = append(b, '@')
	}
	b = conv.AppendHex8(b, byte(e.Reg))
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}

func (e *Error) Unwrap() error { return e.Err }

// Code maps the cause onto a stable errcode.Code.
func (e *Error) Code() errcode.Code { return codeOf(e.Err) }

// transportError pairs ErrTransport with the bus's own error so both match
// errors.Is.
type transportError struct{ cause error }

func (t transportError) Error() string {
	if t.cause == nil {
		return ErrTransport.Error()
	}
	return ErrTransport.Error() + ": " + t.cause.Error()
}

func (t transportError) Unwrap() []error {
	if t.cause == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, t.cause}
}

func (transportError) Code() errcode.Code { return errcode.Transport }

// VerifyError reports a post-write read-back that did not match.
type VerifyError struct {
	Field Field
	Want  uint8
	Got   uint8
}

func (e *VerifyError) Error() string {
	return "max77650: verify " + e.Field.Name + "@" + conv.Hex8(byte(e.Field.Reg)) +
		": wrote " + conv.Hex8(e.Want) + ", read back " + conv.Hex8(e.Got)
}

func (e *VerifyError) Is(target error) bool { return target == ErrVerifyMismatch }

func (e *VerifyError) Code() errcode.Code { return errcode.VerifyMismatch }

func codeOf(err error) errcode.Code {
	switch {
	case err == nil:
		return errcode.OK
	case errors.Is(err, ErrTransport):
		return errcode.Transport
	case errors.Is(err, ErrVerifyMismatch):
		return errcode.VerifyMismatch
	case errors.Is(err, ErrInvalidValue):
		return errcode.InvalidValue
	case errors.Is(err, ErrReadOnly):
		return errcode.ReadOnly
	case errors.Is(err, ErrReadClear):
		return errcode.ReadClear
	case errors.Is(err, ErrPartMismatch):
		return errcode.PartMismatch
	case errors.Is(err, ErrInvalidAddress), errors.Is(err, ErrInvalidPart),
		errors.Is(err, ErrInvalidChannel), errors.Is(err, ErrUnknownReg):
		return errcode.InvalidParams
	default:
		return errcode.Error
	}
}
