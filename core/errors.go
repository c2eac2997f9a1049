package core

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// ErrorKind classifies a failed exchange with the backend.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindServer
	KindNetwork
	KindTimeout
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "authentication"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	}
	return "unknown"
}

// APIError is the typed form of any rejection coming back from the backend,
// carrying the taxonomy kind, the HTTP status when one was received and the
// per-field messages of a 422 payload.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Fields  []FieldError
}

func NewAPIError(kind ErrorKind, status int, msg string, flds ...FieldError) *APIError {
	return &APIError{Kind: kind, Status: status, Message: msg, Fields: flds}
}

func (err APIError) Error() string {
	if len(err.Fields) > 0 {
		msgs := make([]string, 0, len(err.Fields))
		for _, f := range err.Fields {
			msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Error))
		}
		return fmt.Sprintf("%s (%s)", err.Message, strings.Join(msgs, "; "))
	}
	return err.Message
}

// ErrKind returns the ErrorKind of err or KindUnknown for foreign errors.
func ErrKind(err error) ErrorKind {
	if apiErr, ok := errors.Cause(err).(*APIError); ok {
		return apiErr.Kind
	}
	return KindUnknown
}

func IsAuthError(err error) bool      { return ErrKind(err) == KindAuth }
func IsNotFoundError(err error) bool  { return ErrKind(err) == KindNotFound }
func IsTransientError(err error) bool { k := ErrKind(err); return k == KindNetwork || k == KindTimeout }
