// Package types provides type definitions for structured data used throughout the hiring coordinator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipelineRecord_Bootstrap(t *testing.T) {
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	rec := NewPipelineRecord("c1", "Sourcing", now)

	assert.Equal(t, "c1", rec.CandidateID)
	assert.Equal(t, "Sourcing", rec.CurrentStage)
	require.Len(t, rec.StageHistory, 1)
	assert.Equal(t, "Sourcing", rec.StageHistory[0].Stage)
	assert.Equal(t, StageActionCreated, rec.StageHistory[0].Action)
	assert.Equal(t, now, rec.StageHistory[0].Timestamp)
	assert.Empty(t, rec.Interviews)
	assert.Empty(t, rec.Notes)
	assert.NotNil(t, rec.Metrics)
}

func TestPipelineRecord_AppendStage(t *testing.T) {
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	rec := NewPipelineRecord("c1", "Sourcing", start)

	later := start.Add(48 * time.Hour)
	rec.AppendStage("Screening", StageActionAdvanced, later)

	assert.Equal(t, "Screening", rec.CurrentStage)
	require.Len(t, rec.StageHistory, 2)
	assert.Equal(t, rec.CurrentStage, rec.StageHistory[len(rec.StageHistory)-1].Stage)
	assert.Equal(t, later, rec.UpdatedAt)

	// Earlier entries are untouched.
	assert.Equal(t, "Sourcing", rec.StageHistory[0].Stage)
	assert.Equal(t, start, rec.StageHistory[0].Timestamp)
}

func TestPipelineRecord_FindInterview(t *testing.T) {
	rec := NewPipelineRecord("c1", "Sourcing", time.Now())
	rec.Interviews = append(rec.Interviews, InterviewRecord{ID: "int_1", Type: "technical"})

	found := rec.FindInterview("int_1")
	require.NotNil(t, found)
	assert.Equal(t, "technical", found.Type)

	assert.Nil(t, rec.FindInterview("int_2"))
}

func TestPipelineRecord_CloneIsolation(t *testing.T) {
	now := time.Now()
	rec := NewPipelineRecord("c1", "Sourcing", now)
	rec.Interviews = append(rec.Interviews, InterviewRecord{
		ID:           "int_1",
		Interviewers: []string{"i1"},
		Status:       InterviewScheduled,
	})
	rec.Metrics["time_in_Sourcing"] = "1d 2h 3m"

	clone := rec.Clone()
	clone.AppendStage("Screening", StageActionAdvanced, now.Add(time.Hour))
	clone.Interviews[0].Interviewers[0] = "i2"
	clone.Metrics["time_in_Sourcing"] = "changed"

	assert.Equal(t, "Sourcing", rec.CurrentStage)
	assert.Len(t, rec.StageHistory, 1)
	assert.Equal(t, "i1", rec.Interviews[0].Interviewers[0])
	assert.Equal(t, "1d 2h 3m", rec.Metrics["time_in_Sourcing"])
}

func TestPipelineRecord_JSONRoundTrip(t *testing.T) {
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	rec := NewPipelineRecord("c1", "Sourcing", now)
	rec.Interviews = append(rec.Interviews, InterviewRecord{
		ID:              "int_1",
		Type:            "technical",
		ScheduledTime:   now.Add(72 * time.Hour),
		DurationMinutes: 60,
		Interviewers:    []string{"i1"},
		Status:          InterviewScheduled,
		MeetingLink:     "https://meet.example.com/room/c1",
	})

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"candidate_id":"c1"`)
	assert.Contains(t, string(data), `"current_stage":"Sourcing"`)

	var back PipelineRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rec.CurrentStage, back.CurrentStage)
	require.Len(t, back.Interviews, 1)
	assert.Equal(t, InterviewScheduled, back.Interviews[0].Status)
}
