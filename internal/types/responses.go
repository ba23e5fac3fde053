package types

import (
	"errors"
	"time"
)

// Response statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorDetail is the error payload of a failed action response.
type ErrorDetail struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	// ValidActions enumerates the recognized actions when Kind is
	// unknown_action.
	ValidActions []string `json:"valid_actions,omitempty"`
}

// ActionResponse is the uniform envelope returned by action dispatch.
// Status is "success" or "error"; exactly one of Result or Error is set.
type ActionResponse struct {
	Status string       `json:"status"`
	Result any          `json:"result,omitempty"`
	Error  *ErrorDetail `json:"error,omitempty"`
}

// Success builds a success response carrying result.
func Success(result any) ActionResponse {
	return ActionResponse{Status: StatusSuccess, Result: result}
}

// Failure converts err into an error response. Unclassified errors are
// reported as internal; the cause is not exposed to callers.
func Failure(err error) ActionResponse {
	detail := &ErrorDetail{Kind: KindInternal, Message: "unexpected internal error"}
	var e *Error
	if errors.As(err, &e) {
		detail.Kind = e.Kind
		detail.Message = e.Message
	}
	return ActionResponse{Status: StatusError, Error: detail}
}

// FailureWithActions builds an unknown_action response enumerating the
// recognized actions.
func FailureWithActions(err error, valid []string) ActionResponse {
	resp := Failure(err)
	resp.Error.ValidActions = valid
	return resp
}

// AdvanceResult is the success payload of an advance_stage action.
type AdvanceResult struct {
	CandidateID string `json:"candidate_id"`
	FromStage   string `json:"from_stage"`
	ToStage     string `json:"to_stage"`
	// Advanced is false for the terminal no-op case.
	Advanced            bool   `json:"advanced"`
	Message             string `json:"message"`
	TimeInPreviousStage string `json:"time_in_previous_stage,omitempty"`
}

// ReminderResult is the success payload of a send_reminder action. No real
// dispatch happens; this is an acknowledgement only.
type ReminderResult struct {
	CandidateID  string    `json:"candidate_id"`
	Stage        string    `json:"stage"`
	ReminderType string    `json:"reminder_type"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}

// FeedbackResult is the success payload of a collect_feedback action.
type FeedbackResult struct {
	CandidateID string          `json:"candidate_id"`
	Feedback    []FeedbackEntry `json:"feedback"`
}

// ThreadResult is the success payload of a start_thread action.
type ThreadResult struct {
	ThreadID  string    `json:"thread_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// CommentResult is the success payload of an add_comment action.
type CommentResult struct {
	ThreadID  string    `json:"thread_id"`
	CommentID string    `json:"comment_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
