package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/hiring-coordinator/internal/types"
)

// writeActionResponse writes the uniform action envelope with an HTTP status
// derived from the error kind.
func (s *Server) writeActionResponse(w http.ResponseWriter, resp types.ActionResponse) {
	status := http.StatusOK
	if resp.Status == types.StatusError && resp.Error != nil {
		status = kindStatus(resp.Error.Kind)
	}
	s.jsonResponse(w, status, resp)
}

// handleWorkflowAction dispatches advance_stage, send_reminder and
// collect_feedback requests.
func (s *Server) handleWorkflowAction(w http.ResponseWriter, r *http.Request) {
	var req types.WorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.writeActionResponse(w, s.engine.Execute(r.Context(), req))
}

// handleCollaborationAction dispatches start_thread and add_comment requests.
func (s *Server) handleCollaborationAction(w http.ResponseWriter, r *http.Request) {
	var req types.CollaborationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.writeActionResponse(w, s.hub.Execute(r.Context(), req))
}

// handleGetCandidate returns the full pipeline record for a candidate.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID := r.PathValue("candidate_id")

	rec, err := s.pipelines.Get(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}

// handleGetThread returns a collaboration thread with its comments.
func (s *Server) handleGetThread(w http.ResponseWriter, r *http.Request) {
	threadID := r.PathValue("thread_id")

	thread, err := s.hub.Thread(r.Context(), threadID)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, thread)
}
