// Package types provides type definitions for structured data used throughout the hiring coordinator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// StageEntry is a single entry in a candidate's stage history.
// Entries are append-only; existing entries are never rewritten.
type StageEntry struct {
	Stage     string    `json:"stage"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
}

// Stage history action tags.
const (
	StageActionCreated  = "created"
	StageActionAdvanced = "advanced"
)

// PipelineRecord tracks a candidate's progress through the hiring pipeline.
// CurrentStage always equals the stage of the last StageHistory entry after
// a successful mutation.
type PipelineRecord struct {
	CandidateID  string            `json:"candidate_id"`
	CurrentStage string            `json:"current_stage"`
	StageHistory []StageEntry      `json:"stage_history"`
	Notes        []string          `json:"notes"`
	Interviews   []InterviewRecord `json:"interviews"`
	Metrics      map[string]string `json:"metrics"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NewPipelineRecord creates a pipeline record bootstrapped at the given stage.
// This is the single creation factory: callers choose the bootstrap stage
// (the workflow engine uses the first graph stage, the interview scheduler
// uses "Scheduling").
func NewPipelineRecord(candidateID, stage string, now time.Time) *PipelineRecord {
	return &PipelineRecord{
		CandidateID:  candidateID,
		CurrentStage: stage,
		StageHistory: []StageEntry{
			{Stage: stage, Timestamp: now, Action: StageActionCreated},
		},
		Notes:      []string{},
		Interviews: []InterviewRecord{},
		Metrics:    map[string]string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AppendStage appends a history entry and moves the record to the new stage.
func (r *PipelineRecord) AppendStage(stage, action string, now time.Time) {
	r.StageHistory = append(r.StageHistory, StageEntry{
		Stage:     stage,
		Timestamp: now,
		Action:    action,
	})
	r.CurrentStage = stage
	r.UpdatedAt = now
}

// FindInterview returns the interview with the given ID, or nil if absent.
func (r *PipelineRecord) FindInterview(interviewID string) *InterviewRecord {
	for i := range r.Interviews {
		if r.Interviews[i].ID == interviewID {
			return &r.Interviews[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the record. Stores hand out clones so that
// readers never observe a record mid-mutation.
func (r *PipelineRecord) Clone() *PipelineRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.StageHistory = append([]StageEntry(nil), r.StageHistory...)
	out.Notes = append([]string(nil), r.Notes...)
	out.Interviews = make([]InterviewRecord, len(r.Interviews))
	for i := range r.Interviews {
		out.Interviews[i] = *r.Interviews[i].Clone()
	}
	out.Metrics = make(map[string]string, len(r.Metrics))
	for k, v := range r.Metrics {
		out.Metrics[k] = v
	}
	return &out
}
