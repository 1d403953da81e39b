// Package guideerr defines the error kinds produced while loading and saving
// guidebook documents.
//
// Callers branch on the kind with errors.Is against the sentinels:
//
//	book, err := loader.LoadFile(path)
//	if errors.Is(err, guideerr.ErrUnknownVariant) {
//	    var gerr *guideerr.Error
//	    errors.As(err, &gerr)
//	    log.Warn("book uses an unregistered variant", "tag", gerr.Subject)
//	}
package guideerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a machine-readable error classifier.
type Kind string

// Error kinds.
const (
	KindFileNotFound        Kind = "FILE_NOT_FOUND"
	KindMalformedDocument   Kind = "MALFORMED_DOCUMENT"
	KindUnknownVariant      Kind = "UNKNOWN_VARIANT"
	KindUnresolvedReference Kind = "UNRESOLVED_REFERENCE"
)

// Error is a document error with a kind, a message and the JSON path it
// occurred at.
type Error struct {
	Kind    Kind
	Message string
	// Subject is the offending value: the unknown discriminator, the
	// unresolved object name or the missing file path.
	Subject string
	// Path locates the failure inside the document, e.g.
	// categoryList[0].entries["guideapi:intro"].pageList[2].
	Path  string
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// WithCause returns a copy of e wrapping err.
func (e *Error) WithCause(err error) *Error {
	c := *e
	c.cause = err
	return &c
}

// Sentinel errors for use with errors.Is.
var (
	ErrFileNotFound        = &Error{Kind: KindFileNotFound, Message: "file not found"}
	ErrMalformedDocument   = &Error{Kind: KindMalformedDocument, Message: "malformed document"}
	ErrUnknownVariant      = &Error{Kind: KindUnknownVariant, Message: "unknown variant"}
	ErrUnresolvedReference = &Error{Kind: KindUnresolvedReference, Message: "unresolved reference"}
)

// FileNotFound reports a document path that does not exist.
func FileNotFound(path string, cause error) *Error {
	return &Error{
		Kind:    KindFileNotFound,
		Message: fmt.Sprintf("file not found: %s", path),
		Subject: path,
		cause:   cause,
	}
}

// Malformed reports a missing or mismatched field.
func Malformed(format string, args ...any) *Error {
	return &Error{
		Kind:    KindMalformedDocument,
		Message: fmt.Sprintf(format, args...),
	}
}

// UnknownVariant reports a discriminator with no registered codec in family.
func UnknownVariant(family, tag string) *Error {
	return &Error{
		Kind:    KindUnknownVariant,
		Message: fmt.Sprintf("unknown %s variant %q", family, tag),
		Subject: tag,
	}
}

// UnresolvedReference reports an object name absent from the host registry.
func UnresolvedReference(kind, name string) *Error {
	return &Error{
		Kind:    KindUnresolvedReference,
		Message: fmt.Sprintf("unresolved %s reference %q", kind, name),
		Subject: name,
	}
}

// At prefixes the document path of err with segment. Errors that are not an
// *Error are returned unchanged. Segments starting with '[' are appended
// without a separating dot.
func At(err error, segment string) error {
	var gerr *Error
	if err == nil || !errors.As(err, &gerr) {
		return err
	}
	c := *gerr
	switch {
	case c.Path == "":
		c.Path = segment
	case strings.HasPrefix(c.Path, "["):
		c.Path = segment + c.Path
	default:
		c.Path = segment + "." + c.Path
	}
	return &c
}

// KindOf returns the kind of err, or "" when err is not a document error.
func KindOf(err error) Kind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return ""
}
