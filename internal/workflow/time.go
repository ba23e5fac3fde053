package workflow

import (
	"fmt"
	"time"

	"github.com/jonathan/hiring-coordinator/internal/types"
)

// noDwellTime is returned when no history entry matches the current stage.
const noDwellTime = "N/A"

// TimeInStage renders how long the record has been in its current stage as
// "{d}d {h}h {m}m", truncating each component. Among history entries
// matching the current stage the one with the latest timestamp wins;
// timestamp ties resolve to the latest insertion. Returns "N/A" when the
// record has no history or no entry matches the current stage.
func TimeInStage(rec *types.PipelineRecord, now time.Time) string {
	if rec == nil || len(rec.StageHistory) == 0 || rec.CurrentStage == "" {
		return noDwellTime
	}

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
		return noDwellTime
	}

	return formatDwell(now.Sub(latest.Timestamp))
}

// formatDwell decomposes d into whole days, hours, and minutes by
// truncation. Negative durations clamp to zero.
func formatDwell(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalMinutes := int(d / time.Minute)
	days := totalMinutes / (24 * 60)
	hours := (totalMinutes / 60) % 24
	minutes := totalMinutes % 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}
