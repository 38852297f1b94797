package vfs

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrorKind classifies filesystem and resolution failures. The typesetting
// engine surfaces these distinctly, so classification happens here rather
// than at the boundary.
type ErrorKind int

const (
	// KindNotFound means the path does not exist.
	KindNotFound ErrorKind = iota
	// KindIsDirectory means a file operation was attempted on a directory.
	KindIsDirectory
	// KindAccessDenied means the path exists but cannot be accessed.
	KindAccessDenied
	// KindNotSource means a file identity is not a registered source unit.
	KindNotSource
	// KindDetached means a diagnostic span references no source unit.
	KindDetached
	// KindUnsupported means the operation is not provided by this world.
	KindUnsupported
	// KindOther covers I/O failures with no more specific classification.
	KindOther
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindIsDirectory:
		return "is a directory"
	case KindAccessDenied:
		return "access denied"
	case KindNotSource:
		return "not a source"
	case KindDetached:
		return "detached"
	case KindUnsupported:
		return "unsupported"
	case KindOther:
		return "i/o error"
	default:
		return "unknown"
	}
}

// FileError is a classified resolution failure tied to the path that caused
// it. It is the error type crossing every layer of the resolution chain.
type FileError struct {
	Kind ErrorKind
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *FileError) Unwrap() error {
	return e.Err
}

// Is matches FileErrors by kind, so callers can test against a kind
// sentinel without caring about path or cause.
func (e *FileError) Is(target error) bool {
	var fe *FileError
	if errors.As(target, &fe) {
		return e.Kind == fe.Kind
	}
	return false
}

// Kind sentinels for use with errors.Is.
var (
	ErrNotFound     = &FileError{Kind: KindNotFound}
	ErrIsDirectory  = &FileError{Kind: KindIsDirectory}
	ErrAccessDenied = &FileError{Kind: KindAccessDenied}
	ErrNotSource    = &FileError{Kind: KindNotSource}
	ErrDetached     = &FileError{Kind: KindDetached}
	ErrUnsupported  = &FileError{Kind: KindUnsupported}
)

// Classify wraps an OS-level error into a FileError with the most specific
// kind that applies. A nil error returns nil.
func Classify(path string, err error) *FileError {
	if err == nil {
		return nil
	}
	kind := KindOther
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindAccessDenied
	case errors.Is(err, syscall.EISDIR):
		kind = KindIsDirectory
	}
	return &FileError{Kind: kind, Path: path, Err: err}
}
