// Package serrors classifies failures into semantic kinds. A Kind is a
// sentinel naming a failure category; Error pairs a kind with an optional
// cause and message so callers can branch on the category with errors.Is
// while the concrete cause stays reachable through the chain.
package serrors

import (
	"errors"
	"fmt"
)

// Kind names a failure category. Only values built by NewKind implement it,
// which keeps kinds distinguishable from arbitrary errors.
type Kind interface {
	error
	isKind()
}

// kind is the sole Kind implementation, a comparable string sentinel.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind returns a fresh sentinel with the given name. Two kinds are equal
// only if created with the same name.
func NewKind(name string) Kind { return kind{s: name} }

// The failure categories of the verification pipeline. All of them match
// through errors.Is/As when carried by an Error from this package.
var (
	// ErrNotFound indicates the requested entity does not exist, e.g. an
	// identifier that resolves to no reference record.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrInvalidInput indicates the caller supplied unusable data, such as
	// an identity with every field empty.
	ErrInvalidInput = NewKind("INVALID_INPUT")
	// ErrMalformedDataset indicates a reference dataset or identity file
	// that could not be parsed: missing columns, broken rows, invalid JSON.
	ErrMalformedDataset = NewKind("MALFORMED_DATASET")
	// ErrInternal indicates a failure the caller cannot act on.
	ErrInternal = NewKind("INTERNAL")
)

// Error carries a Kind plus an optional cause and message.
//
// errors.Is and errors.As match against both the kind sentinel and the
// wrapped cause. The Error() string is "<msg>: <cause>" when both are set,
// whichever one is set otherwise, and the kind's name as a last resort.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds an Error from a kind and a formatted message, with no concrete
// cause. Use Wrap when there is an underlying error to keep.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds an Error from a kind, an underlying cause and a formatted
// message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds an Error carrying nothing but the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap exposes the cause so errors.Unwrap/Is/As can walk the chain.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel first, then the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As assigns from the kind sentinel or from the cause chain, whichever
// matches the target type first.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the failure category, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the attached message, possibly empty.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, or nil.
func (e *Error) Cause() error { return e.err }
