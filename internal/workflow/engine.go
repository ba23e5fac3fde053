// Package workflow implements the hiring workflow engine: stage
// transitions, reminders, and feedback collection against the pipeline
// store.
package workflow

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/hiring-coordinator/internal/stage"
	"github.com/jonathan/hiring-coordinator/internal/store"
	"github.com/jonathan/hiring-coordinator/internal/types"
)

// Clock supplies wall-clock time; injected so tests control elapsed-time
// arithmetic.
type Clock func() time.Time

// Engine applies workflow actions against the pipeline store using the
// stage graph.
type Engine struct {
	store store.PipelineStore
	graph *stage.Graph
	now   Clock
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's wall clock.
func WithClock(now Clock) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a workflow engine.
func NewEngine(s store.PipelineStore, g *stage.Graph, opts ...Option) *Engine {
	e := &Engine{store: s, graph: g, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute dispatches a workflow request to the matching operation and
// converts any failure into a structured error response. No fault escapes
// to the caller: the engine never aborts the caller's flow.
func (e *Engine) Execute(ctx context.Context, req types.WorkflowRequest) (resp types.ActionResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("workflow: recovered from panic in %s: %v", req.Action, r)
			resp = types.Failure(types.Internal(fmt.Errorf("%v", r), "unexpected failure in %s", req.Action))
		}
	}()

	if err := req.Validate(); err != nil {
		return types.Failure(types.MissingParameter("missing required parameters (action, candidate_id)"))
	}

	switch req.Action {
	case types.ActionAdvanceStage:
		result, err := e.Advance(ctx, req.CandidateID, req.TargetStage)
		if err != nil {
			return types.Failure(err)
		}
		return types.Success(result)
	case types.ActionSendReminder:
		result, err := e.Remind(ctx, req.CandidateID, req.ReminderType)
		if err != nil {
			return types.Failure(err)
		}
		return types.Success(result)
	case types.ActionCollectFeedback:
		result, err := e.CollectFeedback(ctx, req.CandidateID, req.InterviewID)
		if err != nil {
			return types.Failure(err)
		}
		return types.Success(result)
	default:
		err := types.UnknownAction("unknown action: %s", req.Action)
		valid := make([]string, 0, len(types.WorkflowActions()))
		for _, a := range types.WorkflowActions() {
			valid = append(valid, string(a))
		}
		return types.FailureWithActions(err, valid)
	}
}

// bootstrap returns the record factory for lazily created candidates. The
// engine bootstraps at the first graph stage.
func (e *Engine) bootstrap(candidateID string) func() *types.PipelineRecord {
	return func() *types.PipelineRecord {
		return types.NewPipelineRecord(candidateID, e.graph.First().Name, e.now())
	}
}

// Advance moves the candidate to targetStage, or to the graph successor of
// the current stage when targetStage is empty. A candidate already at the
// terminal stage with no explicit target is a successful no-op. Explicit
// targets are accepted verbatim; any string is a legal destination.
func (e *Engine) Advance(ctx context.Context, candidateID, targetStage string) (*types.AdvanceResult, error) {
	var result *types.AdvanceResult

	err := e.store.Update(ctx, candidateID, e.bootstrap(candidateID), func(rec *types.PipelineRecord) error {
		current := rec.CurrentStage
		target := targetStage

		if target == "" {
			next, ok := e.graph.Next(current)
			if !ok {
				result = &types.AdvanceResult{
					CandidateID: candidateID,
					FromStage:   current,
					ToStage:     current,
					Advanced:    false,
					Message:     fmt.Sprintf("Candidate %s is already at the final stage (%s).", candidateID, current),
				}
				return nil
			}
			target = next
		}

		// Dwell time in the outgoing stage, measured before the history
		// gains the new entry.
		elapsed := TimeInStage(rec, e.now())

		rec.AppendStage(target, types.StageActionAdvanced, e.now())
		rec.Metrics[fmt.Sprintf("time_in_%s", current)] = elapsed

		result = &types.AdvanceResult{
			CandidateID:         candidateID,
			FromStage:           current,
			ToStage:             target,
			Advanced:            true,
			Message:             fmt.Sprintf("Moved candidate %s from %s to %s stage.", candidateID, current, target),
			TimeInPreviousStage: elapsed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Remind acknowledges a reminder for the candidate's current stage. There
// is no real dispatch; the operation succeeds even for a never-seen
// candidate, which is lazily created first.
func (e *Engine) Remind(ctx context.Context, candidateID, reminderType string) (*types.ReminderResult, error) {
	if reminderType == "" {
		reminderType = "default"
	}

	var result *types.ReminderResult
	err := e.store.Update(ctx, candidateID, e.bootstrap(candidateID), func(rec *types.PipelineRecord) error {
		result = &types.ReminderResult{
			CandidateID:  candidateID,
			Stage:        rec.CurrentStage,
			ReminderType: reminderType,
			Message:      fmt.Sprintf("Reminder sent for candidate %s in stage %s", candidateID, rec.CurrentStage),
			Timestamp:    e.now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CollectFeedback synthesizes feedback-collected markers for the
// candidate's interviews: the one named by interviewID, or all of them
// when interviewID is empty. The markers are stubs marking where real
// feedback intake would attach.
func (e *Engine) CollectFeedback(ctx context.Context, candidateID, interviewID string) (*types.FeedbackResult, error) {
	var result *types.FeedbackResult

	err := e.store.Update(ctx, candidateID, e.bootstrap(candidateID), func(rec *types.PipelineRecord) error {
		targets := rec.Interviews
		if interviewID != "" {
			iv := rec.FindInterview(interviewID)
			if iv == nil {
				return types.NotFound("interview %s not found for candidate %s", interviewID, candidateID)
			}
			targets = []types.InterviewRecord{*iv}
		} else if len(targets) == 0 {
			return types.NoInterviews("no interviews found for candidate %s", candidateID)
		}

		feedback := make([]types.FeedbackEntry, 0, len(targets))
		for _, iv := range targets {
			feedback = append(feedback, types.FeedbackEntry{
				InterviewID: iv.ID,
				Type:        iv.Type,
				Status:      "feedback_collected",
				Timestamp:   e.now(),
				Summary:     fmt.Sprintf("Feedback collected for %s interview", iv.Type),
			})
		}

		result = &types.FeedbackResult{CandidateID: candidateID, Feedback: feedback}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
