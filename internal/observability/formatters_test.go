package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/hiring-coordinator/internal/stage"
	"github.com/jonathan/hiring-coordinator/internal/types"
)

func TestPrintStageGraph(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStageGraph(stage.Default())
	output := buf.String()

	assert.Contains(t, output, "HIRING PIPELINE STAGES")
	assert.Contains(t, output, "Sourcing")
	assert.Contains(t, output, "Recruiter")
	assert.Contains(t, output, "SLA: 5d")
}

func TestPrintStageGraph_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStageGraph(nil)

	assert.Empty(t, buf.String())
}

func TestPrintPipelineRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	rec := types.NewPipelineRecord("c1", "Sourcing", now)
	rec.AppendStage("Screening", types.StageActionAdvanced, now.Add(48*time.Hour))
	rec.Interviews = append(rec.Interviews, types.InterviewRecord{
		ID: "int_1", Type: "technical", Status: types.InterviewScheduled,
	})

	p.PrintPipelineRecord(rec)
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE PIPELINE RECORD")
	assert.Contains(t, output, "c1")
	assert.Contains(t, output, "Screening")
	assert.Contains(t, output, "int_1")
}

func TestPrintPipelineRecord_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPipelineRecord(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSLABreaches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSLABreaches([]types.SLABreach{
		{CandidateID: "c1", Stage: "Screening", Owner: "Recruiter", SLADays: 3, DaysInStage: 5},
	})
	output := buf.String()

	assert.Contains(t, output, "SLA BREACHES")
	assert.Contains(t, output, "c1 in Screening")
	assert.Contains(t, output, "5d elapsed (SLA 3d)")
}

func TestPrintSLABreaches_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSLABreaches(nil)

	assert.Contains(t, buf.String(), "NO SLA BREACHES")
}

func TestPrintQuestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQuestions("technical", []types.InterviewQuestion{
		{Text: "Walk me through a system you designed.", Category: "system_design", Difficulty: "medium"},
	})
	output := buf.String()

	assert.Contains(t, output, "TECHNICAL INTERVIEW QUESTIONS")
	assert.Contains(t, output, "system_design/medium")
}

func TestPrintQuestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQuestions("technical", nil)

	assert.Empty(t, buf.String())
}
