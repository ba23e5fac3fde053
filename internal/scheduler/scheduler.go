// Package scheduler creates and maintains interview records on candidate
// pipeline records.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/hiring-coordinator/internal/store"
	"github.com/jonathan/hiring-coordinator/internal/types"
)

// BootstrapStage is the stage assigned to candidates first seen through
// scheduling. It deliberately lies outside the stage graph: such candidates
// entered via an interview request, not via sourcing.
const BootstrapStage = "Scheduling"

// defaultDurationMinutes applies when the request leaves the duration unset.
const defaultDurationMinutes = 60

// meetingRoomHost is the synthesized meeting link base. There is no real
// calendar integration.
const meetingRoomHost = "https://meet.example.com/room"

// Scheduler attaches interview records to candidates.
type Scheduler struct {
	store store.PipelineStore
	now   func() time.Time
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock overrides the scheduler's wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// New creates an interview scheduler.
func New(st store.PipelineStore, opts ...Option) *Scheduler {
	s := &Scheduler{store: st, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule creates an interview at the first preferred date. There is no
// conflict checking against other interviews or interviewer availability.
// Unknown candidates are bootstrapped at the "Scheduling" stage.
func (s *Scheduler) Schedule(ctx context.Context, req types.ScheduleRequest) (*types.InterviewRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, types.MissingParameter("missing required parameters (candidate_id, interview_type, interviewers, preferred_dates)")
	}

	scheduledTime, err := parsePreferredDate(req.PreferredDates[0])
	if err != nil {
		return nil, types.MissingParameter("preferred_dates[0] is not a valid timestamp: %s", req.PreferredDates[0])
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}

	var interview *types.InterviewRecord
	err = s.store.Update(ctx, req.CandidateID,
		func() *types.PipelineRecord {
			return types.NewPipelineRecord(req.CandidateID, BootstrapStage, s.now())
		},
		func(rec *types.PipelineRecord) error {
			iv := types.InterviewRecord{
				ID:              fmt.Sprintf("int_%d", len(rec.Interviews)+1),
				Type:            req.InterviewType,
				ScheduledTime:   scheduledTime,
				DurationMinutes: duration,
				Interviewers:    append([]string(nil), req.Interviewers...),
				Status:          types.InterviewScheduled,
				MeetingLink:     meetingLink(req.CandidateID),
			}
			rec.Interviews = append(rec.Interviews, iv)
			rec.UpdatedAt = s.now()
			interview = iv.Clone()
			return nil
		})
	if err != nil {
		return nil, err
	}
	return interview, nil
}

// UpdateStatus moves a scheduled interview to completed or cancelled.
func (s *Scheduler) UpdateStatus(ctx context.Context, candidateID, interviewID string, status types.InterviewStatus) (*types.InterviewRecord, error) {
	if candidateID == "" || interviewID == "" {
		return nil, types.MissingParameter("missing required parameters (candidate_id, interview_id)")
	}
	if status != types.InterviewCompleted && status != types.InterviewCancelled {
		return nil, types.MissingParameter("status must be %q or %q", types.InterviewCompleted, types.InterviewCancelled)
	}

	var interview *types.InterviewRecord
	err := s.store.Update(ctx, candidateID,
		func() *types.PipelineRecord {
			return types.NewPipelineRecord(candidateID, BootstrapStage, s.now())
		},
		func(rec *types.PipelineRecord) error {
			iv := rec.FindInterview(interviewID)
			if iv == nil {
				return types.NotFound("interview %s not found for candidate %s", interviewID, candidateID)
			}
			iv.Status = status
			rec.UpdatedAt = s.now()
			interview = iv.Clone()
			return nil
		})
	if err != nil {
		return nil, err
	}
	return interview, nil
}

// Interviews returns the candidate's interviews, failing with NotFound for
// an unknown candidate.
func (s *Scheduler) Interviews(ctx context.Context, candidateID string) ([]types.InterviewRecord, error) {
	rec, err := s.store.Get(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, types.NotFound("candidate %s not found", candidateID)
	}
	return rec.Interviews, nil
}

// parsePreferredDate accepts RFC 3339 timestamps, with or without an
// explicit zone offset.
func parsePreferredDate(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02T15:04:05", raw)
}

// meetingLink synthesizes the meeting room URL from a truncated candidate
// id fragment.
func meetingLink(candidateID string) string {
	fragment := candidateID
	if len(fragment) > 8 {
		fragment = fragment[:8]
	}
	return fmt.Sprintf("%s/%s", meetingRoomHost, fragment)
}
