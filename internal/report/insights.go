package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/hiring-coordinator/internal/types"
)

// Recognized insight metrics.
const (
	MetricTimeToHire           = "time_to_hire"
	MetricStageDistribution    = "stage_distribution"
	MetricInterviewSuccessRate = "interview_success_rate"
)

// hoursPerDay converts dwell durations to whole days.
const hoursPerDay = 24

// Insights computes the requested metrics over candidates created inside
// the named window. Unlike Generate, an unrecognized time period is an
// error here, not a silent default.
func (g *Generator) Insights(ctx context.Context, timePeriod string, metrics []string) (*types.InsightsResult, error) {
	var days int
	switch timePeriod {
	case "week":
		days = 7
	case "month":
		days = 30
	case "quarter":
		days = 90
	default:
		return nil, types.InvalidTimePeriod("invalid time period: %s", timePeriod)
	}

	end := g.now()
	start := end.AddDate(0, 0, -days)

	all, err := g.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pipeline records: %w", err)
	}
	var candidates []*types.PipelineRecord
	for _, rec := range all {
		if !rec.CreatedAt.Before(start) && !rec.CreatedAt.After(end) {
			candidates = append(candidates, rec)
		}
	}

	result := &types.InsightsResult{
		TimePeriod:      timePeriod,
		TotalCandidates: len(candidates),
	}
	for _, metric := range metrics {
		switch metric {
		case MetricTimeToHire:
			result.TimeToHire = g.timeToHireInsight(candidates)
		case MetricStageDistribution:
			result.StageDist = g.stageDistribution(candidates)
		case MetricInterviewSuccessRate:
			result.InterviewSuccess = g.interviewSuccessRate(candidates)
		default:
			return nil, types.UnknownMetric("invalid metric: %s", metric)
		}
	}
	return result, nil
}

// timeToHireInsight averages creation-to-last-update spans over candidates
// that reached the terminal stage.
func (g *Generator) timeToHireInsight(candidates []*types.PipelineRecord) *types.TimeToHireInsight {
	terminal := g.graph.Last().Name

	var days []int
	for _, rec := range candidates {
		if rec.CurrentStage != terminal {
			continue
		}
		days = append(days, wholeDays(rec.CreatedAt, rec.UpdatedAt))
	}
	if len(days) == 0 {
		return &types.TimeToHireInsight{}
	}

	sum, minD, maxD := 0, days[0], days[0]
	for _, d := range days {
		sum += d
		if d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}
	return &types.TimeToHireInsight{
		AverageDays: float64(sum) / float64(len(days)),
		MinDays:     minD,
		MaxDays:     maxD,
	}
}

// stageDistribution buckets candidates by current stage. Graph stages are
// always present; off-graph stages appear only when occupied.
func (g *Generator) stageDistribution(candidates []*types.PipelineRecord) map[string]int {
	dist := make(map[string]int, len(g.graph.Stages()))
	for _, def := range g.graph.Stages() {
		dist[def.Name] = 0
	}
	for _, rec := range candidates {
		dist[rec.CurrentStage]++
	}
	return dist
}

// interviewSuccessRate relates candidates past the interview stage to those
// currently in it. With nobody past the stage the rate is zero.
func (g *Generator) interviewSuccessRate(candidates []*types.PipelineRecord) *types.SuccessRateInsight {
	interviewIdx := g.graph.IndexOf("Interviews")

	var passed, inStage int
	for _, rec := range candidates {
		i := g.graph.IndexOf(rec.CurrentStage)
		switch {
		case i > interviewIdx && interviewIdx >= 0:
			passed++
		case i == interviewIdx && interviewIdx >= 0:
			inStage++
		}
	}
	if passed == 0 {
		return &types.SuccessRateInsight{}
	}

	rate := 0.0
	if inStage > 0 {
		rate = float64(passed) / float64(inStage) * 100
	}
	return &types.SuccessRateInsight{
		SuccessRate:     rate,
		TotalInterviews: inStage,
	}
}

func wholeDays(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / hoursPerDay)
}
