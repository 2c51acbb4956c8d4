// Package werrors defines the fixed vocabulary of error kinds raised by
// the word2vec packages: invalid configuration, an empty vocabulary,
// cooperative cancellation, unknown search words, malformed model files,
// and pass-through I/O failures.
package werrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which of the fixed error categories an Error belongs to.
type Kind string

const (
	InvalidConfig   Kind = "invalid-config"
	EmptyVocabulary Kind = "empty-vocabulary"
	Cancelled       Kind = "cancelled"
	UnknownWord     Kind = "unknown-word"
	MalformedModel  Kind = "malformed-model"
	IOError         Kind = "io-error"
)

// Error is the concrete error type returned by this module. Kind lets
// callers branch with errors.Is against the sentinels below; Cause, when
// present, is the underlying error being wrapped.
type Error struct {
	Kind  Kind
	Msg   string
	Word  string
	Cause error
}

func (e *Error) Error() string {
	switch {
	case e.Word != "":
		return fmt.Sprintf("%s: %s: %q", e.Kind, e.Msg, e.Word)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same Kind, so callers can
// write errors.Is(err, werrors.ErrCancelled) without caring about Msg/Cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinel values for use with errors.Is. Their Msg/Cause fields are
// ignored by Is; only Kind is compared.
var (
	ErrCancelled       = &Error{Kind: Cancelled}
	ErrEmptyVocabulary = &Error{Kind: EmptyVocabulary}
)

// InvalidConfigf builds an invalid-config error with a formatted message.
func InvalidConfigf(format string, args ...interface{}) *Error {
	return &Error{Kind: InvalidConfig, Msg: fmt.Sprintf(format, args...)}
}

// UnknownWordErr reports that word does not appear in the model's vocabulary.
func UnknownWordErr(word string) *Error {
	return &Error{Kind: UnknownWord, Msg: "unknown search word", Word: word}
}

// MalformedModelf builds a malformed-model error, optionally wrapping cause
// with a stack trace via github.com/pkg/errors so load failures carry
// enough context to debug a corrupt or truncated model file.
func MalformedModelf(cause error, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		cause = errors.Wrap(cause, msg)
	}
	return &Error{Kind: MalformedModel, Msg: msg, Cause: cause}
}

// IOErrorWrap wraps an underlying I/O failure (e.g. from the os or bufio
// packages) as a werrors.Error of kind IOError.
func IOErrorWrap(cause error) *Error {
	return &Error{Kind: IOError, Msg: "io error", Cause: errors.WithStack(cause)}
}

// IsKind reports whether err (or something it wraps) is a *Error of the
// given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
