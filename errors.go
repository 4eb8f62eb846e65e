package capypdf

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrKind classifies the errors this package can return, matching
// the status enumeration in the spec's external interface.
type ErrKind int

const (
	ErrNone ErrKind = iota
	ErrInvalidIndex
	ErrNegativeLineWidth
	ErrNoPagesDefined
	ErrColorComponentOutOfRange
	ErrBadID
	ErrIO
	ErrInvalidFont
	ErrInvalidImage
	ErrDoubleFinalize
)

func (k ErrKind) String() string {
	switch k {
	case ErrNone:
		return "no-error"
	case ErrInvalidIndex:
		return "invalid-index"
	case ErrNegativeLineWidth:
		return "negative-line-width"
	case ErrNoPagesDefined:
		return "no-pages-defined"
	case ErrColorComponentOutOfRange:
		return "color-component-out-of-range"
	case ErrBadID:
		return "bad-id"
	case ErrIO:
		return "io-error"
	case ErrInvalidFont:
		return "invalid-font"
	case ErrInvalidImage:
		return "invalid-image"
	case ErrDoubleFinalize:
		return "double-finalize"
	default:
		return fmt.Sprintf("err-kind(%d)", int(k))
	}
}

// Error is the concrete error type returned by fallible operations in
// this module. The Kind field lets callers branch on the status
// enumeration from the spec without string matching.
type Error struct {
	Kind    ErrKind
	Subject string
	cause   error
}

func (e *Error) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Subject)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.cause }

// NewError builds an *Error of the given kind, describing subject.
func NewError(kind ErrKind, subject string) *Error {
	return &Error{Kind: kind, Subject: subject}
}

// WrapIOError turns a low-level write failure into an io-error,
// preserving the original cause for Unwrap/errors.Is chains and
// annotating it with a stack trace the way pdfcpu-lite wraps its own
// write-path failures.
func WrapIOError(subject string, cause error) *Error {
	return &Error{Kind: ErrIO, Subject: subject, cause: errors.WithStack(cause)}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// debugAssert panics in builds tagged with capypdf_debug; in ordinary
// builds a failed invariant is reported to the caller as an io-error
// by the caller instead (see the callers of this function).
func debugAssert(cond bool, msg string) {
	if debugAssertsEnabled && !cond {
		panic("capypdf: invariant violated: " + msg)
	}
}
