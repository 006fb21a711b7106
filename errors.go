package textop

import "fmt"

var (
	// ErrMalformedOp is returned when an Op violates I1/I2/I3, or when wire
	// bytes don't parse into a well-formed Op.
	ErrMalformedOp = fmt.Errorf("textop: malformed op")

	// ErrOutOfBounds is returned when an Op's Skip/Delete components walk
	// past the end of the document they're applied to.
	ErrOutOfBounds = fmt.Errorf("textop: op out of bounds for document")
)

// Code identifies the category of failure behind a CodedError, so callers
// can branch on it without string-matching Error().
type Code int

const (
	// CodeNone is the zero value; never set on a returned CodedError.
	CodeNone Code = iota
	// CodeMalformed marks a Check/Parse failure: the op or its wire
	// encoding violates the well-formedness invariants.
	CodeMalformed
	// CodeOutOfBounds marks a Check failure: the op's Skip/Delete
	// components don't fit the target document. (Apply returns the
	// Document's own error instead of a CodedError.)
	CodeOutOfBounds
)

func (c Code) String() string {
	switch c {
	case CodeMalformed:
		return "malformed"
	case CodeOutOfBounds:
		return "out_of_bounds"
	default:
		return "none"
	}
}

// CodedError pairs a human-readable description with a stable Code so a
// caller receiving an Op from an untrusted peer can decide whether to
// reject, rebase, or drop it without parsing error strings.
//
// Grounded on the overleaf-go sharejs text-transform port's
// pkg/errors.CodedError, which models OT failures the same way.
type CodedError struct {
	Code        Code
	Description string
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("textop: %s: %s", e.Code, e.Description)
}

// Unwrap exposes the sentinel error matching e.Code, so a caller can use
// errors.Is(err, ErrMalformedOp) / errors.Is(err, ErrOutOfBounds) instead of
// switching on Code directly.
func (e *CodedError) Unwrap() error {
	switch e.Code {
	case CodeMalformed:
		return ErrMalformedOp
	case CodeOutOfBounds:
		return ErrOutOfBounds
	default:
		return nil
	}
}

func codedf(code Code, format string, args ...interface{}) *CodedError {
	return &CodedError{Code: code, Description: fmt.Sprintf(format, args...)}
}
