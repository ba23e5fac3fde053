package workflow

import (
	"context"
	"log"
	"time"

	"github.com/jonathan/hiring-coordinator/internal/stage"
	"github.com/jonathan/hiring-coordinator/internal/store"
	"github.com/jonathan/hiring-coordinator/internal/types"
)

// SLAWatcher periodically scans the pipeline for candidates whose dwell
// time in their current stage exceeds the stage's SLA. Scans are read-only
// and tolerate stale snapshots.
type SLAWatcher struct {
	store    store.PipelineStore
	graph    *stage.Graph
	now      Clock
	interval time.Duration
	printer  BreachPrinter
}

// BreachPrinter renders a scan result; satisfied by observability.Printer.
type BreachPrinter interface {
	PrintSLABreaches(breaches []types.SLABreach)
}

// NewSLAWatcher creates a watcher scanning at the given interval. A nil
// clock defaults to time.Now.
func NewSLAWatcher(s store.PipelineStore, g *stage.Graph, interval time.Duration, now Clock) *SLAWatcher {
	if now == nil {
		now = time.Now
	}
	return &SLAWatcher{store: s, graph: g, now: now, interval: interval}
}

// AttachPrinter makes Run render each scan result in addition to logging
// the breaches.
func (w *SLAWatcher) AttachPrinter(p BreachPrinter) {
	w.printer = p
}

// Scan returns the current SLA breaches. Stages outside the graph (such as
// the scheduler's "Scheduling" bootstrap) carry no SLA and are skipped.
func (w *SLAWatcher) Scan(ctx context.Context) ([]types.SLABreach, error) {
	records, err := w.store.List(ctx)
	if err != nil {
		return nil, err
	}

	now := w.now()
	var breaches []types.SLABreach
	for _, rec := range records {
		def, ok := w.graph.Definition(rec.CurrentStage)
		if !ok || def.SLADays <= 0 {
			continue
		}

		entered, ok := lastEntryFor(rec)
		if !ok {
			continue
		}

		days := int(now.Sub(entered) / (24 * time.Hour))
		if days > def.SLADays {
			breaches = append(breaches, types.SLABreach{
				CandidateID:  rec.CandidateID,
				Stage:        rec.CurrentStage,
				Owner:        def.DefaultOwner,
				SLADays:      def.SLADays,
				DaysInStage:  days,
				EnteredStage: entered,
			})
		}
	}
	return breaches, nil
}

// Run scans on the watcher's interval until ctx is done, logging breaches.
func (w *SLAWatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			breaches, err := w.Scan(ctx)
			if err != nil {
				log.Printf("sla watcher: scan failed: %v", err)
				continue
			}
			for _, b := range breaches {
				log.Printf("sla watcher: candidate %s over SLA in %s (%dd in stage, SLA %dd, owner %s)",
					b.CandidateID, b.Stage, b.DaysInStage, b.SLADays, b.Owner)
			}
			if w.printer != nil {
				w.printer.PrintSLABreaches(breaches)
			}
		}
	}
}

// lastEntryFor returns the timestamp of the latest history entry matching
// the record's current stage, using the same tie-breaking as TimeInStage.
func lastEntryFor(rec *types.PipelineRecord) (time.Time, bool) {
	var latest *types.StageEntry
	for i := range rec.StageHistory {
		entry := &rec.StageHistory[i]
		if entry.Stage != rec.CurrentStage {
			continue
		}
		if latest == nil || !entry.Timestamp.Before(latest.Timestamp) {
			latest = entry
		}
	}
	if latest == nil {
		return time.Time{}, false
	}
	return latest.Timestamp, true
}
