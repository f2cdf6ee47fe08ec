// Package serrors defines the semantic error kinds raised by the bridge and
// a wrapping error type that carries a kind sentinel, an optional cause and
// an optional message while fully supporting errors.Is/errors.As.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is an unexported implementation of Kind used as a sentinel value for a
// semantic error category.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be matched with errors.Is/As through the
// serrors.Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// The bridge error taxonomy. Each kind is a sentinel matched with errors.Is
// through the Error wrapper defined below.
var (
	// ErrUnsafeHost indicates a remote host string that an SSH client could
	// parse as a command-line option. Fatal to the current operation; the
	// caller must not spawn any subprocess.
	ErrUnsafeHost = NewKind("UNSAFE_HOST")
	// ErrEncoding indicates bytes that are not valid UTF-8 where text was
	// required. Treated as a data-corruption signal, never recovered locally.
	ErrEncoding = NewKind("ENCODING")
	// ErrNotFound indicates a required key or value was missing.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrBadInput indicates malformed caller-supplied data, such as an
	// unparseable subrepository list line.
	ErrBadInput = NewKind("BAD_INPUT")
	// ErrNotGitRepository indicates the foreign side of the bridge reported
	// that the target is not a git repository.
	ErrNotGitRepository = NewKind("NOT_GIT_REPOSITORY")
	// ErrInternal indicates a bug or an unclassified internal failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped cause and an optional message.
//
// Matching semantics:
//   - errors.Is(err, target) matches if target matches either the kind
//     sentinel or the wrapped cause.
//   - errors.As(err, target) succeeds for either the kind sentinel or the
//     wrapped cause.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither is set: the kind's Error() string.
type Error struct {
	kind Kind  // semantic kind sentinel
	err  error // wrapped cause (optional)
	msg  string
}

// With constructs a new semantic error with the given kind and an arbitrary
// human-readable message. Use Wrap if you also want to wrap a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wrapping the
// provided cause and attaching an arbitrary message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind without extra
// message or concrete cause.
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
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As to traverse
// the underlying chain.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the semantic kind sentinel or the wrapped cause.
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

// As matches type assertions against either the semantic kind sentinel or the
// wrapped cause.
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

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the arbitrary message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
