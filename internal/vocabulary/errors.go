package vocabulary

import (
	"errors"
)

// Error kinds returned by Service. Callers branch on them with errors.Is.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("word not found in dictionary")
	ErrRemote        = errors.New("dictionary request failed")
	ErrSerialization = errors.New("failed to serialize definitions")
	ErrAlreadyExists = errors.New("word already exists")
	ErrStorage       = errors.New("storage error")
	ErrRowNotFound   = errors.New("word not found in storage")
)

// Error carries a human-readable detail alongside its kind and, when
// present, the underlying cause.
type Error struct {
	Kind   error
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, detail string, cause error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: cause}
}

var codes = []struct {
	kind error
	code string
}{
	{ErrInvalidInput, "invalid_input"},
	{ErrNotFound, "not_found"},
	{ErrRemote, "remote_error"},
	{ErrSerialization, "serialization_error"},
	{ErrAlreadyExists, "already_exists"},
	{ErrRowNotFound, "row_not_found"},
	{ErrStorage, "storage_error"},
}

// Code returns the stable machine-readable code for err's kind.
// Errors of unknown kind report "storage_error".
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.kind) {
			return c.code
		}
	}
	return "storage_error"
}
