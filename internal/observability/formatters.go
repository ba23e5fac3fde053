// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/hiring-coordinator/internal/stage"
	"github.com/jonathan/hiring-coordinator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStageGraph outputs the pipeline stages with SLAs and owners.
func (p *Printer) PrintStageGraph(g *stage.Graph) {
	if g == nil {
		return
	}

	var sb strings.Builder
	for i, def := range g.Stages() {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, def.Name))
		sb.WriteString(fmt.Sprintf("   SLA: %dd   Owner: %s\n", def.SLADays, def.DefaultOwner))
		if len(def.SubStages) > 0 {
			sb.WriteString(fmt.Sprintf("   Rounds: %s\n", strings.Join(def.SubStages, ", ")))
		}
	}

	p.printBox("HIRING PIPELINE STAGES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPipelineRecord outputs a human-readable summary of a candidate record.
func (p *Printer) PrintPipelineRecord(rec *types.PipelineRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate:  %s\n", rec.CandidateID))
	sb.WriteString(fmt.Sprintf("Stage:      %s\n", rec.CurrentStage))
	sb.WriteString("\n")

	if len(rec.StageHistory) > 0 {
		sb.WriteString("Stage History:\n")
		count := min(len(rec.StageHistory), maxItemsToShow)
		// Show the most recent entries.
		start := len(rec.StageHistory) - count
		for _, entry := range rec.StageHistory[start:] {
			sb.WriteString(fmt.Sprintf("  • %s (%s) %s\n",
				entry.Stage, entry.Action, entry.Timestamp.Format("2006-01-02 15:04")))
		}
		if len(rec.StageHistory) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d earlier\n", len(rec.StageHistory)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(rec.Interviews) > 0 {
		sb.WriteString("Interviews:\n")
		count := min(len(rec.Interviews), 3)
		for i := 0; i < count; i++ {
			iv := rec.Interviews[i]
			sb.WriteString(fmt.Sprintf("  • %s %s [%s]\n", iv.ID, iv.Type, iv.Status))
		}
		if len(rec.Interviews) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.Interviews)-3))
		}
	}

	p.printBox("CANDIDATE PIPELINE RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSLABreaches outputs candidates whose stage dwell time exceeds the SLA.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSLABreaches(breaches []types.SLABreach) {
	if len(breaches) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SLA BREACHES")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d breaches:\n\n", len(breaches)))

	for i, b := range breaches {
		sb.WriteString(fmt.Sprintf("⚠ %s in %s\n", b.CandidateID, b.Stage))
		sb.WriteString(fmt.Sprintf("  %dd elapsed (SLA %dd), owner: %s\n", b.DaysInStage, b.SLADays, b.Owner))
		if i < len(breaches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SLA BREACHES", sb.String())
}

// PrintQuestions outputs a generated interview question set.
func (p *Printer) PrintQuestions(interviewType string, questions []types.InterviewQuestion) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		q := questions[i]
		text := q.Text
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", text))
		sb.WriteString(fmt.Sprintf("  [%s/%s]\n", q.Category, q.Difficulty))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more questions", len(questions)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("%s INTERVIEW QUESTIONS", strings.ToUpper(interviewType)), sb.String())
}
