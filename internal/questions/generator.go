// Package questions generates structured interview questions, either from
// static per-type banks or from a language model.
package questions

import (
	"context"
	"strings"

	"github.com/jonathan/hiring-coordinator/internal/types"
)

// defaultCount caps how many questions a request yields when it does not
// say otherwise.
const defaultCount = 5

// Request describes the interview a question set is generated for.
type Request struct {
	InterviewType    string            `json:"interview_type"`
	JobDescription   string            `json:"job_description,omitempty"`
	CandidateProfile map[string]string `json:"candidate_profile,omitempty"`
	Count            int               `json:"count,omitempty"`
}

// Generator produces interview questions for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]types.InterviewQuestion, error)
}

// StaticGenerator serves questions from built-in banks keyed by interview
// type. It is the fallback when no language model is configured, and the
// deterministic implementation tests run against.
type StaticGenerator struct {
	banks map[string][]types.InterviewQuestion
}

// NewStaticGenerator creates a generator with the default question banks.
func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{banks: defaultBanks()}
}

// Generate returns up to req.Count questions for the interview type,
// falling back to the general bank for unknown types.
func (g *StaticGenerator) Generate(_ context.Context, req Request) ([]types.InterviewQuestion, error) {
	bank, ok := g.banks[strings.ToLower(req.InterviewType)]
	if !ok {
		bank = g.banks["general"]
	}

	count := req.Count
	if count <= 0 || count > len(bank) {
		count = len(bank)
	}
	if count > defaultCount && req.Count <= 0 {
		count = defaultCount
	}

	out := make([]types.InterviewQuestion, count)
	copy(out, bank[:count])
	return out, nil
}

func defaultBanks() map[string][]types.InterviewQuestion {
	return map[string][]types.InterviewQuestion{
		"technical": {
			{Text: "Walk me through a system you designed end to end. What would you change today?", Category: "system_design", Difficulty: "medium"},
			{Text: "Describe the hardest bug you have debugged. How did you isolate it?", Category: "problem_solving", Difficulty: "medium"},
			{Text: "How do you decide between consistency and availability in a distributed store?", Category: "system_design", Difficulty: "hard"},
			{Text: "What does a good code review look like to you?", Category: "engineering_practice", Difficulty: "easy"},
			{Text: "How would you profile and fix a service whose p99 latency doubled overnight?", Category: "operations", Difficulty: "hard"},
		},
		"behavioral": {
			{Text: "Tell me about a time you disagreed with a teammate. How was it resolved?", Category: "collaboration", Difficulty: "easy"},
			{Text: "Describe a project that failed. What did you take away from it?", Category: "resilience", Difficulty: "medium"},
			{Text: "When have you had to deliver under an unrealistic deadline?", Category: "prioritization", Difficulty: "medium"},
			{Text: "Give an example of feedback that changed how you work.", Category: "growth", Difficulty: "easy"},
			{Text: "Tell me about a time you led without formal authority.", Category: "leadership", Difficulty: "hard"},
		},
		"hr": {
			{Text: "What drew you to this role?", Category: "motivation", Difficulty: "easy"},
			{Text: "What kind of team environment do you do your best work in?", Category: "culture_fit", Difficulty: "easy"},
			{Text: "Where do you want to be in three years?", Category: "career", Difficulty: "easy"},
			{Text: "What are your compensation expectations?", Category: "logistics", Difficulty: "easy"},
			{Text: "Is there anything that would affect your start date?", Category: "logistics", Difficulty: "easy"},
		},
		"general": {
			{Text: "Tell me about your current role and responsibilities.", Category: "general", Difficulty: "easy"},
			{Text: "What accomplishment are you proudest of, and why?", Category: "general", Difficulty: "easy"},
			{Text: "What does success look like for you in your first six months here?", Category: "general", Difficulty: "medium"},
			{Text: "How do you keep your skills current?", Category: "growth", Difficulty: "easy"},
			{Text: "What questions do you have for us?", Category: "general", Difficulty: "easy"},
		},
	}
}
