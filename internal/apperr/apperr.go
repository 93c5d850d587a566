package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure by the pipeline stage that produced it.
type Kind int

const (
	// KindUnknown is reported for errors that were never classified.
	KindUnknown Kind = iota
	// KindUserInput covers missing or invalid CLI arguments and missing files.
	KindUserInput
	// KindConfigParse covers malformed or semantically invalid provider documents.
	KindConfigParse
	// KindRender covers template lookup and placeholder substitution failures.
	KindRender
	// KindClusterApply covers control-plane rejections and connectivity failures.
	KindClusterApply
)

// String returns the prefix used in user-facing messages.
func (k Kind) String() string {
	switch k {
	case KindUserInput:
		return "input error"
	case KindConfigParse:
		return "config error"
	case KindRender:
		return "render error"
	case KindClusterApply:
		return "cluster error"
	default:
		return "error"
	}
}

// Error is a classified error.
type Error struct {
	Kind Kind
	Err  error
}

// Error returns a single-line, kind-prefixed message.
func (e *Error) Error() string {
	msg := "unknown failure"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	var inner *Error
	if errors.As(e.Err, &inner) {
		msg = strings.Replace(msg, inner.Kind.String()+": ", "", 1)
	}
	// Joined validation errors are newline separated.
	msg = strings.ReplaceAll(msg, "\n", "; ")
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap classifies err as kind. An error that already carries a kind keeps it,
// so the innermost classification wins. Wrap returns nil for a nil error.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		if classified == err {
			return err
		}
		return &Error{Kind: classified.Kind, Err: err}
	}
	return &Error{Kind: kind, Err: err}
}

// UserInput classifies err as a user input error.
func UserInput(err error) error { return Wrap(KindUserInput, err) }

// ConfigParse classifies err as a config parse error.
func ConfigParse(err error) error { return Wrap(KindConfigParse, err) }

// Render classifies err as a render error.
func Render(err error) error { return Wrap(KindRender, err) }

// ClusterApply classifies err as a cluster apply error.
func ClusterApply(err error) error { return Wrap(KindClusterApply, err) }

// UserInputf formats a new user input error.
func UserInputf(format string, args ...any) error {
	return &Error{Kind: KindUserInput, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of err, or KindUnknown when err is unclassified.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindUnknown
}

// Is reports whether err was classified as kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message renders any error as the single line printed before exiting.
// Unclassified errors get the generic "error" prefix.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if KindOf(err) != KindUnknown {
		return err.Error()
	}
	return (&Error{Kind: KindUnknown, Err: err}).Error()
}
