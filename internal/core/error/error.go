package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// StorageErrorMessage describes key-value store failures.
	StorageErrorMessage = "storage operation failed"
	// AssistantErrorMessage is shown when the chat assistant could not answer.
	AssistantErrorMessage = "assistant is unavailable"
)

// Kind classifies an AppError so callers can branch without string matching.
type Kind string

const (
	KindUnauthenticated   Kind = "unauthenticated"
	KindForbidden         Kind = "forbidden"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindValidation        Kind = "validation"
	KindInvalidTransition Kind = "invalid_transition"
	KindExternalService   Kind = "external_service"
	KindStorage           Kind = "storage"
	KindInternal          Kind = "internal"
)

// Sentinels matched by errors.Is against any AppError of the same kind.
var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrExternalService   = errors.New("external service failure")
	ErrStorage           = errors.New("storage failure")
)

var sentinels = map[Kind]error{
	KindUnauthenticated:   ErrUnauthenticated,
	KindForbidden:         ErrForbidden,
	KindNotFound:          ErrNotFound,
	KindConflict:          ErrConflict,
	KindValidation:        ErrValidation,
	KindInvalidTransition: ErrInvalidTransition,
	KindExternalService:   ErrExternalService,
	KindStorage:           ErrStorage,
}

// AppError wraps an underlying error with a kind, an HTTP status and a safe message.
type AppError struct {
	Err     error
	Kind    Kind
	Status  int
	Message string
	// Field names the offending input for validation failures.
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether the target is the sentinel for this error's kind
// or matches the underlying error.
func (e *AppError) Is(target error) bool {
	if s, ok := sentinels[e.Kind]; ok && s == target {
		return true
	}
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

// New creates an internal AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Kind:    KindInternal,
		Status:  status,
		Message: message,
	}
}

func Unauthenticated(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Status: http.StatusForbidden, Message: message}
}

// NotFound reports an operation on a missing id.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s %q not found", resource, id),
	}
}

// Conflict reports an attempt to create a resource whose id is taken.
func Conflict(resource, id string) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("%s %q already exists", resource, id),
	}
}

// Validation reports malformed user input. Field may be empty.
func Validation(field, message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Status:  http.StatusUnprocessableEntity,
		Message: message,
		Field:   field,
	}
}

// InvalidTransition reports a state machine edge that is not allowed.
func InvalidTransition(resource, from, to string) *AppError {
	return &AppError{
		Kind:    KindInvalidTransition,
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("%s cannot move from %s to %s", resource, from, to),
	}
}

// ExternalService wraps a failure of a remote collaborator such as the chat model.
func ExternalService(err error, message string) *AppError {
	if message == "" {
		message = AssistantErrorMessage
	}
	return &AppError{
		Err:     err,
		Kind:    KindExternalService,
		Status:  http.StatusBadGateway,
		Message: message,
	}
}

// Storage wraps a persistence failure.
func Storage(err error) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Err:     err,
		Kind:    KindStorage,
		Status:  http.StatusBadGateway,
		Message: StorageErrorMessage,
	}
}

// StatusOf resolves the HTTP status carried by err, defaulting to 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns a message that is safe to show to the user.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return SystemErrorMessage
}
