package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an operation failure. The set is closed; callers
// branch on the kind carried in a structured error response rather than on
// propagated faults.
type ErrorKind string

// Recognized error kinds.
const (
	KindMissingParameter  ErrorKind = "missing_parameter"
	KindNotFound          ErrorKind = "not_found"
	KindNoInterviews      ErrorKind = "no_interviews"
	KindUnknownAction     ErrorKind = "unknown_action"
	KindUnknownMetric     ErrorKind = "unknown_metric"
	KindInvalidTimePeriod ErrorKind = "invalid_time_period"
	KindInternal          ErrorKind = "internal"
)

// Error is a classified operation error.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// MissingParameter builds a missing_parameter error.
func MissingParameter(format string, args ...any) *Error {
	return &Error{Kind: KindMissingParameter, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a not_found error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NoInterviews builds a no_interviews error.
func NoInterviews(format string, args ...any) *Error {
	return &Error{Kind: KindNoInterviews, Message: fmt.Sprintf(format, args...)}
}

// UnknownAction builds an unknown_action error.
func UnknownAction(format string, args ...any) *Error {
	return &Error{Kind: KindUnknownAction, Message: fmt.Sprintf(format, args...)}
}

// UnknownMetric builds an unknown_metric error.
func UnknownMetric(format string, args ...any) *Error {
	return &Error{Kind: KindUnknownMetric, Message: fmt.Sprintf(format, args...)}
}

// InvalidTimePeriod builds an invalid_time_period error.
func InvalidTimePeriod(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidTimePeriod, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unclassified failure.
func Internal(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf returns the kind of err, or KindInternal when err carries no
// classification.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
