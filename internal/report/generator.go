// Package report synthesizes read-only reports and process insights from
// pipeline state. Nothing in this package mutates the store.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/hiring-coordinator/internal/stage"
	"github.com/jonathan/hiring-coordinator/internal/store"
	"github.com/jonathan/hiring-coordinator/internal/types"
)

// defaultWindowDays applies when the requested time period is unrecognized.
// Reports coerce silently; insights reject instead (see insights.go).
const defaultWindowDays = 30

// Generator produces reports over a pipeline store and the static metrics
// catalog.
type Generator struct {
	store   store.PipelineStore
	graph   *stage.Graph
	catalog stage.MetricsCatalog
	now     func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the generator's wall clock.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a report generator.
func NewGenerator(st store.PipelineStore, graph *stage.Graph, catalog stage.MetricsCatalog, opts ...Option) *Generator {
	g := &Generator{store: st, graph: graph, catalog: catalog, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate dispatches on the report type. Filters are accepted but have no
// effect yet. The report period echoes the window actually applied, so a
// coerced time_period is visible to the caller.
func (g *Generator) Generate(ctx context.Context, req types.ReportRequest) (*types.Report, error) {
	period := g.resolvePeriod(req.TimePeriod)
	report := &types.Report{
		Type:        req.Type,
		Period:      period,
		GeneratedAt: g.now(),
	}

	switch req.Type {
	case types.ReportPipelineOverview:
		overview, err := g.pipelineOverview(ctx)
		if err != nil {
			return nil, err
		}
		report.PipelineOverview = overview
	case types.ReportTimeToHire:
		report.TimeToHire = g.timeToHire()
	case types.ReportDiversity:
		report.Diversity = diversity()
	default:
		return nil, types.UnknownAction("unknown report type: %s", req.Type)
	}
	return report, nil
}

// resolvePeriod maps the requested window to one of three fixed spans.
// Unrecognized values fall back to 30 days.
func (g *Generator) resolvePeriod(timePeriod string) types.ReportPeriod {
	days := defaultWindowDays
	resolved := "30d"
	switch timePeriod {
	case "7d":
		days, resolved = 7, "7d"
	case "30d":
		days, resolved = 30, "30d"
	case "90d":
		days, resolved = 90, "90d"
	}
	end := g.now()
	return types.ReportPeriod{
		TimePeriod: resolved,
		Start:      end.AddDate(0, 0, -days),
		End:        end,
	}
}

// pipelineOverview counts live candidates per graph stage. Every graph stage
// appears in the map, zero or not. Off-graph bootstrap stages (such as
// "Scheduling") contribute to the total but not to any stage bucket.
func (g *Generator) pipelineOverview(ctx context.Context) (*types.PipelineOverviewReport, error) {
	records, err := g.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pipeline records: %w", err)
	}

	byStage := make(map[string]int, len(g.graph.Stages()))
	for _, def := range g.graph.Stages() {
		byStage[def.Name] = 0
	}
	for _, rec := range records {
		if g.graph.Contains(rec.CurrentStage) {
			byStage[rec.CurrentStage]++
		}
	}

	return &types.PipelineOverviewReport{
		TotalCandidates:   len(records),
		CandidatesByStage: byStage,
		Metrics: map[string]string{
			"average_time_in_pipeline": "15 days",
			"conversion_rate":          "25%",
			"top_sources":              "LinkedIn, Company Website, Referrals",
		},
	}, nil
}

// timeToHire reports placeholder per-stage durations. The figures are
// illustrative and not derived from stage history; live dwell times come
// from the insights path.
func (g *Generator) timeToHire() *types.TimeToHireReport {
	byStage := make(map[string]string, len(g.graph.Stages()))
	for i, def := range g.graph.Stages() {
		byStage[def.Name] = fmt.Sprintf("%d days", i*2+3)
	}
	return &types.TimeToHireReport{
		AverageTimeToHire: "27 days",
		TimeByStage:       byStage,
		Benchmarks: map[string]string{
			"industry_average": "32 days",
			"company_goal":     "30 days",
		},
	}
}

// diversity returns static illustrative figures. Real demographic data is
// never stored on pipeline records.
func diversity() *types.DiversityReport {
	return &types.DiversityReport{
		Gender: map[string]string{
			"male":       "55%",
			"female":     "42%",
			"non_binary": "3%",
		},
		Ethnicity: map[string]string{
			"white":    "60%",
			"black":    "15%",
			"asian":    "15%",
			"hispanic": "8%",
			"other":    "2%",
		},
		AgeDistribution: map[string]string{
			"18-24": "10%",
			"25-34": "45%",
			"35-44": "30%",
			"45-54": "10%",
			"55+":   "5%",
		},
		Insights: []string{
			"Good gender balance in the candidate pool",
			"Opportunity to increase representation in technical roles",
			"Consider targeted outreach to underrepresented groups",
		},
	}
}
