package types

import "time"

// ReportType selects a report synthesized by the report generator.
type ReportType string

// Recognized report types.
const (
	ReportPipelineOverview ReportType = "pipeline_overview"
	ReportTimeToHire       ReportType = "time_to_hire"
	ReportDiversity        ReportType = "diversity"
)

// ReportTypes lists the recognized report types.
func ReportTypes() []ReportType {
	return []ReportType{ReportPipelineOverview, ReportTimeToHire, ReportDiversity}
}

// ReportRequest is the payload for report generation. Filters are accepted
// but currently have no effect; reserved for future segmentation.
type ReportRequest struct {
	Type       ReportType        `json:"report_type"`
	TimePeriod string            `json:"time_period,omitempty"`
	Filters    map[string]string `json:"filters,omitempty"`
}

// ReportPeriod is the resolved reporting window. TimePeriod echoes the
// window actually applied, so callers can detect when an unrecognized
// value was coerced to the default.
type ReportPeriod struct {
	TimePeriod string    `json:"time_period"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// Report is the envelope for all generated reports. Exactly one of the
// typed sections is populated, matching Type.
type Report struct {
	Type             ReportType              `json:"report_type"`
	Period           ReportPeriod            `json:"period"`
	GeneratedAt      time.Time               `json:"generated_at"`
	PipelineOverview *PipelineOverviewReport `json:"pipeline_overview,omitempty"`
	TimeToHire       *TimeToHireReport       `json:"time_to_hire,omitempty"`
	Diversity        *DiversityReport        `json:"diversity,omitempty"`
}

// PipelineOverviewReport holds per-stage candidate counts plus static
// placeholder aggregates.
type PipelineOverviewReport struct {
	TotalCandidates   int               `json:"total_candidates"`
	CandidatesByStage map[string]int    `json:"candidates_by_stage"`
	Metrics           map[string]string `json:"metrics"`
}

// TimeToHireReport holds placeholder time-to-hire figures. The values are
// illustrative and not derived from actual stage history.
type TimeToHireReport struct {
	AverageTimeToHire string            `json:"average_time_to_hire"`
	TimeByStage       map[string]string `json:"time_by_stage"`
	Benchmarks        map[string]string `json:"benchmarks"`
}

// DiversityReport holds static illustrative diversity figures.
type DiversityReport struct {
	Gender          map[string]string `json:"gender"`
	Ethnicity       map[string]string `json:"ethnicity"`
	AgeDistribution map[string]string `json:"age_distribution"`
	Insights        []string          `json:"insights"`
}

// InsightsResult holds process insights computed from live pipeline state.
type InsightsResult struct {
	TimePeriod       string              `json:"time_period"`
	TotalCandidates  int                 `json:"total_candidates"`
	TimeToHire       *TimeToHireInsight  `json:"time_to_hire,omitempty"`
	StageDist        map[string]int      `json:"stage_distribution,omitempty"`
	InterviewSuccess *SuccessRateInsight `json:"interview_success_rate,omitempty"`
}

// TimeToHireInsight aggregates days-to-hire over onboarded candidates.
type TimeToHireInsight struct {
	AverageDays float64 `json:"average_days"`
	MinDays     int     `json:"min_days"`
	MaxDays     int     `json:"max_days"`
}

// SuccessRateInsight relates candidates past the interview stage to those
// currently in it.
type SuccessRateInsight struct {
	SuccessRate     float64 `json:"success_rate"`
	TotalInterviews int     `json:"total_interviews"`
}

// SLABreach flags a candidate whose time in the current stage exceeds the
// stage's SLA.
type SLABreach struct {
	CandidateID  string    `json:"candidate_id"`
	Stage        string    `json:"stage"`
	Owner        string    `json:"owner"`
	SLADays      int       `json:"sla_days"`
	DaysInStage  int       `json:"days_in_stage"`
	EnteredStage time.Time `json:"entered_stage"`
}
