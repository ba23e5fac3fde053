package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     WorkflowRequest
		wantErr bool
	}{
		{
			name:    "valid advance",
			req:     WorkflowRequest{Action: ActionAdvanceStage, CandidateID: "c1"},
			wantErr: false,
		},
		{
			name:    "missing candidate id",
			req:     WorkflowRequest{Action: ActionAdvanceStage},
			wantErr: true,
		},
		{
			name:    "missing action",
			req:     WorkflowRequest{CandidateID: "c1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleRequest_Validate(t *testing.T) {
	valid := ScheduleRequest{
		CandidateID:    "c1",
		InterviewType:  "technical",
		Interviewers:   []string{"i1"},
		PreferredDates: []string{"2024-01-10T10:00:00"},
	}
	assert.NoError(t, valid.Validate())

	noInterviewers := valid
	noInterviewers.Interviewers = nil
	assert.Error(t, noInterviewers.Validate())

	emptyInterviewers := valid
	emptyInterviewers.Interviewers = []string{}
	assert.Error(t, emptyInterviewers.Validate())

	noDates := valid
	noDates.PreferredDates = []string{}
	assert.Error(t, noDates.Validate())

	noType := valid
	noType.InterviewType = ""
	assert.Error(t, noType.Validate())
}

func TestFailure_ClassifiedError(t *testing.T) {
	resp := Failure(NotFound("candidate %s not found", "c9"))
	assert.Equal(t, StatusError, resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, KindNotFound, resp.Error.Kind)
	assert.Contains(t, resp.Error.Message, "c9")
	assert.Nil(t, resp.Result)
}

func TestFailure_UnclassifiedErrorBecomesInternal(t *testing.T) {
	resp := Failure(assert.AnError)
	require.NotNil(t, resp.Error)
	assert.Equal(t, KindInternal, resp.Error.Kind)
	assert.NotContains(t, resp.Error.Message, assert.AnError.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindMissingParameter, KindOf(MissingParameter("x")))
	assert.Equal(t, KindInternal, KindOf(assert.AnError))

	wrapped := Internal(NotFound("inner"), "outer")
	assert.Equal(t, KindInternal, KindOf(wrapped))
}
