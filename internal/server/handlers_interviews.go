package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/hiring-coordinator/internal/questions"
	"github.com/jonathan/hiring-coordinator/internal/types"
)

// ScheduleInterviewRequest is the POST /interviews payload. The optional
// question fields feed the question generator; they never affect scheduling.
type ScheduleInterviewRequest struct {
	types.ScheduleRequest
	JobDescription   string            `json:"job_description,omitempty"`
	CandidateProfile map[string]string `json:"candidate_profile,omitempty"`
	QuestionCount    int               `json:"question_count,omitempty"`
}

// ScheduleInterviewResponse carries the created interview plus a suggested
// question set.
type ScheduleInterviewResponse struct {
	Interview *types.InterviewRecord    `json:"interview"`
	Questions []types.InterviewQuestion `json:"questions,omitempty"`
}

// handleScheduleInterview creates an interview and attaches generated
// questions. Question generation failures are logged, not surfaced: the
// interview is already booked at that point.
func (s *Server) handleScheduleInterview(w http.ResponseWriter, r *http.Request) {
	var req ScheduleInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	interview, err := s.scheduler.Schedule(r.Context(), req.ScheduleRequest)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	resp := ScheduleInterviewResponse{Interview: interview}
	qs, err := s.questions.Generate(r.Context(), questions.Request{
		InterviewType:    req.InterviewType,
		JobDescription:   req.JobDescription,
		CandidateProfile: req.CandidateProfile,
		Count:            req.QuestionCount,
	})
	if err != nil {
		log.Printf("question generation failed for %s: %v", req.CandidateID, err)
	} else {
		resp.Questions = qs
	}

	s.jsonResponse(w, http.StatusCreated, resp)
}

// UpdateInterviewStatusRequest is the status transition payload.
type UpdateInterviewStatusRequest struct {
	Status types.InterviewStatus `json:"status"`
}

// handleUpdateInterviewStatus moves an interview to completed or cancelled.
func (s *Server) handleUpdateInterviewStatus(w http.ResponseWriter, r *http.Request) {
	candidateID := r.PathValue("candidate_id")
	interviewID := r.PathValue("interview_id")

	var req UpdateInterviewStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	interview, err := s.scheduler.UpdateStatus(r.Context(), candidateID, interviewID, req.Status)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, interview)
}

// handleListInterviews returns a candidate's interviews.
func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	candidateID := r.PathValue("candidate_id")

	list, err := s.scheduler.Interviews(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidate_id": candidateID,
		"interviews":   list,
	})
}
