package types

import "time"

// InterviewStatus is the lifecycle status of an interview.
type InterviewStatus string

// Recognized interview statuses.
const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

// ValidInterviewStatus reports whether s is one of the recognized statuses.
func ValidInterviewStatus(s InterviewStatus) bool {
	switch s {
	case InterviewScheduled, InterviewCompleted, InterviewCancelled:
		return true
	}
	return false
}

// InterviewRecord represents a scheduled interview. Its lifecycle is bound
// to the owning candidate's PipelineRecord; IDs are sequential within that
// candidate's interview list ("int_1", "int_2", ...).
type InterviewRecord struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	ScheduledTime   time.Time       `json:"scheduled_time"`
	DurationMinutes int             `json:"duration_minutes"`
	Interviewers    []string        `json:"interviewers"`
	Status          InterviewStatus `json:"status"`
	MeetingLink     string          `json:"meeting_link"`
}

// Clone returns a deep copy of the interview record.
func (ir *InterviewRecord) Clone() *InterviewRecord {
	out := *ir
	out.Interviewers = append([]string(nil), ir.Interviewers...)
	return &out
}

// InterviewQuestion is a structured interview question produced by a
// question generator.
type InterviewQuestion struct {
	Text       string `json:"text"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// FeedbackEntry marks that feedback was collected for an interview. It is
// a stub marking where real feedback intake would attach.
type FeedbackEntry struct {
	InterviewID string    `json:"interview_id"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Summary     string    `json:"summary"`
}
