package errs

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusInvalidInput   = http.StatusUnprocessableEntity
	ErrStatusConflict       = http.StatusConflict
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrNotFound       = errors.New("Resource not found")
	ErrInvalidInput   = errors.New("Invalid input")
	ErrDuplicateKey   = errors.New("Duplicate key")
	ErrOptimisticLock = errors.New("Entity was modified concurrently")
)

// errorMap is ordered by precedence when an error matches more than one kind.
var errorMap = []struct {
	err    error
	status int
}{
	{ErrNotFound, ErrStatusNotFound},
	{ErrInvalidInput, ErrStatusInvalidInput},
	{ErrClient, ErrStatusClient},
	{ErrOptimisticLock, ErrStatusConflict},
	{ErrDuplicateKey, ErrStatusInvalidInput},
	{ErrInternalServer, ErrStatusInternalServer},
}

// Error is a classified error whose text is shown to API callers as is.
type Error struct {
	Kind    error
	Cause   error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidInput(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func BadRequest(format string, args ...any) error {
	return &Error{Kind: ErrClient, Message: fmt.Sprintf(format, args...)}
}

// DuplicateKey reports a uniqueness violation as invalid input while keeping
// ErrDuplicateKey reachable through errors.Is.
func DuplicateKey(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Cause: ErrDuplicateKey, Message: fmt.Sprintf(format, args...)}
}

// UnexpectedTransportError is any downstream failure that is neither a 404 nor a 422.
type UnexpectedTransportError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *UnexpectedTransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("unexpected HTTP status %d from %s", e.StatusCode, e.URL)
}

func (e *UnexpectedTransportError) Unwrap() error {
	return e.Err
}

func GetErrorStatusCode(err error) int {
	for _, entry := range errorMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return ErrStatusInternalServer
}
