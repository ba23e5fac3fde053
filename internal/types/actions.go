package types

import "github.com/go-playground/validator/v10"

// WorkflowAction selects a workflow engine operation.
type WorkflowAction string

// Recognized workflow actions.
const (
	ActionAdvanceStage    WorkflowAction = "advance_stage"
	ActionSendReminder    WorkflowAction = "send_reminder"
	ActionCollectFeedback WorkflowAction = "collect_feedback"
)

// WorkflowActions lists the recognized workflow actions, for error messages.
func WorkflowActions() []WorkflowAction {
	return []WorkflowAction{ActionAdvanceStage, ActionSendReminder, ActionCollectFeedback}
}

// WorkflowRequest is the payload for a workflow engine action.
type WorkflowRequest struct {
	Action      WorkflowAction `json:"action" validate:"required"`
	CandidateID string         `json:"candidate_id" validate:"required"`
	// TargetStage is accepted verbatim for advance_stage; membership in the
	// stage graph is deliberately not validated.
	TargetStage  string `json:"target_stage,omitempty"`
	ReminderType string `json:"reminder_type,omitempty"`
	InterviewID  string `json:"interview_id,omitempty"`
}

// Validate validates the WorkflowRequest using the validator.
func (r *WorkflowRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CollaborationAction selects a collaboration hub operation.
type CollaborationAction string

// Recognized collaboration actions.
const (
	ActionStartThread CollaborationAction = "start_thread"
	ActionAddComment  CollaborationAction = "add_comment"
)

// CollaborationActions lists the recognized collaboration actions.
func CollaborationActions() []CollaborationAction {
	return []CollaborationAction{ActionStartThread, ActionAddComment}
}

// CollaborationContext carries optional context for a collaboration action,
// most importantly the target thread for add_comment.
type CollaborationContext struct {
	ThreadID string `json:"thread_id,omitempty"`
	Author   string `json:"author,omitempty"`
	Type     string `json:"type,omitempty"`
	Status   string `json:"status,omitempty"`
}

// CollaborationRequest is the payload for a collaboration hub action.
type CollaborationRequest struct {
	Action       CollaborationAction  `json:"action" validate:"required"`
	Participants []string             `json:"participants" validate:"required,min=1"`
	Message      string               `json:"message,omitempty"`
	Context      CollaborationContext `json:"context,omitempty"`
}

// Validate validates the CollaborationRequest using the validator.
func (r *CollaborationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ScheduleRequest is the payload for scheduling an interview.
type ScheduleRequest struct {
	CandidateID     string   `json:"candidate_id" validate:"required"`
	InterviewType   string   `json:"interview_type" validate:"required"`
	Interviewers    []string `json:"interviewers" validate:"required,min=1"`
	PreferredDates  []string `json:"preferred_dates" validate:"required,min=1"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
}

// Validate validates the ScheduleRequest using the validator.
func (r *ScheduleRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
