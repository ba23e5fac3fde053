package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/hiring-coordinator/internal/types"
)

// handleGenerateReport serves GET /reports/{report_type}?time_period=30d.
func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	req := types.ReportRequest{
		Type:       types.ReportType(r.PathValue("report_type")),
		TimePeriod: r.URL.Query().Get("time_period"),
	}

	rep, err := s.reports.Generate(r.Context(), req)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, rep)
}

// handleInsights serves GET /insights?time_period=week&metrics=a,b.
// Without an explicit metrics list every metric is computed.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	timePeriod := r.URL.Query().Get("time_period")

	metrics := []string{"time_to_hire", "stage_distribution", "interview_success_rate"}
	if raw := r.URL.Query().Get("metrics"); raw != "" {
		metrics = metrics[:0]
		for _, m := range strings.Split(raw, ",") {
			if m = strings.TrimSpace(m); m != "" {
				metrics = append(metrics, m)
			}
		}
	}

	result, err := s.reports.Insights(r.Context(), timePeriod, metrics)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleListStages returns the stage graph.
func (s *Server) handleListStages(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"stages": s.graph.Stages()})
}

// handleMetricsCatalog returns the static metric targets.
func (s *Server) handleMetricsCatalog(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog)
}

// handleSLABreaches runs an on-demand SLA scan.
func (s *Server) handleSLABreaches(w http.ResponseWriter, r *http.Request) {
	breaches, err := s.watcher.Scan(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Scan error: "+err.Error())
		return
	}
	if breaches == nil {
		breaches = []types.SLABreach{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"breaches": breaches})
}
