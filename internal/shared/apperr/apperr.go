package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the transport layer can map it without
// inspecting messages.
type Kind string

const (
	KindNotFound            Kind = "NOT_FOUND"
	KindDuplicateName       Kind = "DUPLICATE_NAME"
	KindMissingReference    Kind = "MISSING_REFERENCE"
	KindNoOpName            Kind = "NO_OP_NAME"
	KindReferentialConflict Kind = "REFERENTIAL_CONFLICT"
	KindInvalidFileType     Kind = "INVALID_FILE_TYPE"
	KindFileTooLarge        Kind = "FILE_TOO_LARGE"
	KindInvalidInput        Kind = "INVALID_INPUT"
	KindStorageFailure      Kind = "STORAGE_FAILURE"
)

// Error is the single error type returned across the catalog.
type Error struct {
	Kind    Kind   // category used for HTTP mapping
	Code    string // stable code, e.g. "AUTHOR_NOT_FOUND"
	Message string // human-readable message safe for clients
	Err     error  // underlying error, never shown to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Code so package-level sentinels work with errors.Is even
// after they have been copied by WithMessage or Wrap.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of e carrying a more specific message.
func (e *Error) WithMessage(format string, args ...any) *Error {
	cp := *e
	cp.Message = fmt.Sprintf(format, args...)
	return &cp
}

// Wrap returns a copy of e with err attached as the cause.
func (e *Error) Wrap(err error) *Error {
	cp := *e
	cp.Err = err
	return &cp
}

// ============================================
// FACTORY FUNCTIONS
// ============================================

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Storage wraps an unexpected persistence or blob-store failure.
func Storage(err error) *Error {
	return &Error{
		Kind:    KindStorageFailure,
		Code:    "STORAGE_FAILURE",
		Message: "Internal storage error",
		Err:     err,
	}
}

// Invalid reports a malformed request field.
func Invalid(code string, err error) *Error {
	msg := "Invalid input"
	if err != nil {
		msg = err.Error()
	}
	return &Error{Kind: KindInvalidInput, Code: code, Message: msg, Err: err}
}

// KindOf returns the kind of err. Anything that is not an *Error is
// treated as a storage failure.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorageFailure
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
