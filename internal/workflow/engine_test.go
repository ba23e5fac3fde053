package workflow

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hiring-coordinator/internal/stage"
	"github.com/jonathan/hiring-coordinator/internal/store"
	"github.com/jonathan/hiring-coordinator/internal/types"
)

// fakeClock steps forward a fixed amount on every read so history entries
// get distinct timestamps.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

func threeStageGraph() *stage.Graph {
	return stage.NewGraph([]stage.Definition{
		{Name: "Sourcing", SLADays: 5, DefaultOwner: "Recruiter"},
		{Name: "Screening", SLADays: 3, DefaultOwner: "Recruiter"},
		{Name: "Technical_Assessment", SLADays: 7, DefaultOwner: "Hiring Manager"},
	})
}

func newTestEngine(g *stage.Graph) (*Engine, *store.MemoryStore, *fakeClock) {
	s := store.NewMemoryStore()
	clock := &fakeClock{t: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), step: time.Minute}
	return NewEngine(s, g, WithClock(clock.Now)), s, clock
}

func TestAdvance_ScenarioThreeStagePipeline(t *testing.T) {
	e, s, _ := newTestEngine(threeStageGraph())
	ctx := context.Background()

	// First advance: lazily created at Sourcing, moved to Screening.
	res, err := e.Advance(ctx, "c1", "")
	require.NoError(t, err)
	assert.True(t, res.Advanced)
	assert.Equal(t, "Sourcing", res.FromStage)
	assert.Equal(t, "Screening", res.ToStage)

	rec, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Screening", rec.CurrentStage)
	assert.Len(t, rec.StageHistory, 2)

	// Second advance: Screening -> Technical_Assessment.
	res, err = e.Advance(ctx, "c1", "")
	require.NoError(t, err)
	assert.True(t, res.Advanced)
	assert.Equal(t, "Technical_Assessment", res.ToStage)

	rec, err = s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, rec.StageHistory, 3)

	// Third advance at the terminal stage: success, no mutation.
	res, err = e.Advance(ctx, "c1", "")
	require.NoError(t, err)
	assert.False(t, res.Advanced)
	assert.Contains(t, res.Message, "already at the final stage")

	rec, err = s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, rec.StageHistory, 3)
	assert.Equal(t, "Technical_Assessment", rec.CurrentStage)
}

func TestAdvance_CurrentStageMatchesLastHistoryEntry(t *testing.T) {
	e, s, _ := newTestEngine(threeStageGraph())
	ctx := context.Background()

	prevLen := 0
	for i := 0; i < 3; i++ {
		_, err := e.Advance(ctx, "c1", "")
		require.NoError(t, err)

		rec, err := s.Get(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, rec.StageHistory[len(rec.StageHistory)-1].Stage, rec.CurrentStage)
		assert.GreaterOrEqual(t, len(rec.StageHistory), prevLen)
		prevLen = len(rec.StageHistory)
	}
}

func TestAdvance_ExplicitTargetAcceptedVerbatim(t *testing.T) {
	e, s, _ := newTestEngine(threeStageGraph())
	ctx := context.Background()

	// Explicit targets bypass graph membership checks entirely.
	res, err := e.Advance(ctx, "c1", "Background_Check")
	require.NoError(t, err)
	assert.True(t, res.Advanced)
	assert.Equal(t, "Background_Check", res.ToStage)

	res, err = e.Advance(ctx, "c1", "Reference_Check")
	require.NoError(t, err)
	assert.Equal(t, "Background_Check", res.FromStage)
	assert.Equal(t, "Reference_Check", res.ToStage)

	// Two explicit advances produce two new entries; neither overwrites
	// the other.
	rec, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, rec.StageHistory, 3)
	assert.Equal(t, "Background_Check", rec.StageHistory[1].Stage)
	assert.Equal(t, "Reference_Check", rec.StageHistory[2].Stage)
}

func TestAdvance_ExplicitTargetAtTerminalStageStillMoves(t *testing.T) {
	e, s, _ := newTestEngine(threeStageGraph())
	ctx := context.Background()

	_, err := e.Advance(ctx, "c1", "Technical_Assessment")
	require.NoError(t, err)

	res, err := e.Advance(ctx, "c1", "Hired")
	require.NoError(t, err)
	assert.True(t, res.Advanced)

	rec, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Hired", rec.CurrentStage)
}

func TestAdvance_RecordsTimeInPreviousStage(t *testing.T) {
	g := threeStageGraph()
	s := store.NewMemoryStore()
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	// Candidate sits in Sourcing for 2 days, 4 hours, 30 minutes.
	current := start
	e := NewEngine(s, g, WithClock(func() time.Time { return current }))
	_, err := e.Remind(context.Background(), "c1", "") // lazily create at start
	require.NoError(t, err)

	current = start.Add(52*time.Hour + 30*time.Minute)
	res, err := e.Advance(context.Background(), "c1", "")
	require.NoError(t, err)
	assert.Equal(t, "2d 4h 30m", res.TimeInPreviousStage)

	rec, err := s.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "2d 4h 30m", rec.Metrics["time_in_Sourcing"])
}

func TestRemind_NeverSeenCandidateSucceeds(t *testing.T) {
	e, s, _ := newTestEngine(threeStageGraph())
	ctx := context.Background()

	res, err := e.Remind(ctx, "ghost", "")
	require.NoError(t, err)
	assert.Equal(t, "default", res.ReminderType)
	assert.Equal(t, "Sourcing", res.Stage)
	assert.Contains(t, res.Message, "ghost")
	assert.False(t, res.Timestamp.IsZero())

	// The candidate now exists at the first graph stage.
	rec, err := s.Get(ctx, "ghost")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Sourcing", rec.CurrentStage)
}

func TestRemind_ExplicitType(t *testing.T) {
	e, _, _ := newTestEngine(threeStageGraph())

	res, err := e.Remind(context.Background(), "c1", "interview_prep")
	require.NoError(t, err)
	assert.Equal(t, "interview_prep", res.ReminderType)
}

func TestCollectFeedback_NoInterviews(t *testing.T) {
	e, s, _ := newTestEngine(threeStageGraph())
	ctx := context.Background()

	_, err := e.CollectFeedback(ctx, "c1", "")
	require.Error(t, err)
	assert.Equal(t, types.KindNoInterviews, types.KindOf(err))

	// No interviews were synthesized.
	rec, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, rec.Interviews)
}

func TestCollectFeedback_AllInterviews(t *testing.T) {
	e, s, clock := newTestEngine(threeStageGraph())
	ctx := context.Background()

	seedInterviews(t, s, "c1", clock.Now(), "technical", "behavioral")

	res, err := e.CollectFeedback(ctx, "c1", "")
	require.NoError(t, err)
	require.Len(t, res.Feedback, 2)
	assert.Equal(t, "int_1", res.Feedback[0].InterviewID)
	assert.Equal(t, "feedback_collected", res.Feedback[0].Status)
	assert.Contains(t, res.Feedback[0].Summary, "technical")
	assert.Contains(t, res.Feedback[1].Summary, "behavioral")
}

func TestCollectFeedback_SpecificInterview(t *testing.T) {
	e, s, clock := newTestEngine(threeStageGraph())
	ctx := context.Background()

	seedInterviews(t, s, "c1", clock.Now(), "technical", "behavioral")

	res, err := e.CollectFeedback(ctx, "c1", "int_2")
	require.NoError(t, err)
	require.Len(t, res.Feedback, 1)
	assert.Equal(t, "int_2", res.Feedback[0].InterviewID)

	_, err = e.CollectFeedback(ctx, "c1", "int_9")
	require.Error(t, err)
	assert.Equal(t, types.KindNotFound, types.KindOf(err))
}

func TestExecute_Dispatch(t *testing.T) {
	e, _, _ := newTestEngine(threeStageGraph())
	ctx := context.Background()

	resp := e.Execute(ctx, types.WorkflowRequest{Action: types.ActionAdvanceStage, CandidateID: "c1"})
	require.Equal(t, types.StatusSuccess, resp.Status)
	result, ok := resp.Result.(*types.AdvanceResult)
	require.True(t, ok)
	assert.Equal(t, "Screening", result.ToStage)

	resp = e.Execute(ctx, types.WorkflowRequest{Action: types.ActionSendReminder, CandidateID: "c1"})
	assert.Equal(t, types.StatusSuccess, resp.Status)
}

func TestExecute_UnknownActionEnumeratesValidOnes(t *testing.T) {
	e, _, _ := newTestEngine(threeStageGraph())

	resp := e.Execute(context.Background(), types.WorkflowRequest{Action: "promote", CandidateID: "c1"})
	require.Equal(t, types.StatusError, resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, types.KindUnknownAction, resp.Error.Kind)
	assert.ElementsMatch(t,
		[]string{"advance_stage", "send_reminder", "collect_feedback"},
		resp.Error.ValidActions)
}

func TestExecute_MissingParameters(t *testing.T) {
	e, _, _ := newTestEngine(threeStageGraph())

	resp := e.Execute(context.Background(), types.WorkflowRequest{Action: types.ActionAdvanceStage})
	require.Equal(t, types.StatusError, resp.Status)
	assert.Equal(t, types.KindMissingParameter, resp.Error.Kind)
}

func TestExecute_ErrorsAreStructuredNotPropagated(t *testing.T) {
	e, _, _ := newTestEngine(threeStageGraph())

	resp := e.Execute(context.Background(), types.WorkflowRequest{
		Action:      types.ActionCollectFeedback,
		CandidateID: "c1",
	})
	require.Equal(t, types.StatusError, resp.Status)
	assert.Equal(t, types.KindNoInterviews, resp.Error.Kind)
}

// seedInterviews schedules bare interview records directly through the
// store, mirroring what the scheduler produces.
func seedInterviews(t *testing.T, s store.PipelineStore, candidateID string, now time.Time, interviewTypes ...string) {
	t.Helper()
	err := s.Update(context.Background(), candidateID,
		func() *types.PipelineRecord { return types.NewPipelineRecord(candidateID, "Sourcing", now) },
		func(rec *types.PipelineRecord) error {
			for i, typ := range interviewTypes {
				rec.Interviews = append(rec.Interviews, types.InterviewRecord{
					ID:     fmt.Sprintf("int_%d", i+1),
					Type:   typ,
					Status: types.InterviewScheduled,
				})
			}
			return nil
		})
	require.NoError(t, err)
}
