package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGraph() *Graph {
	return NewGraph([]Definition{
		{Name: "Sourcing", SLADays: 5, DefaultOwner: "Recruiter"},
		{Name: "Screening", SLADays: 3, DefaultOwner: "Recruiter"},
		{Name: "Technical_Assessment", SLADays: 7, DefaultOwner: "Hiring Manager"},
	})
}

func TestGraph_Ordering(t *testing.T) {
	g := testGraph()

	stages := g.Stages()
	require.Len(t, stages, 3)
	assert.Equal(t, "Sourcing", g.First().Name)
	assert.Equal(t, "Technical_Assessment", g.Last().Name)
	assert.Equal(t, 1, g.IndexOf("Screening"))
	assert.Equal(t, -1, g.IndexOf("Offer"))
}

func TestGraph_Next(t *testing.T) {
	g := testGraph()

	next, ok := g.Next("Sourcing")
	assert.True(t, ok)
	assert.Equal(t, "Screening", next)

	next, ok = g.Next("Screening")
	assert.True(t, ok)
	assert.Equal(t, "Technical_Assessment", next)

	// Terminal stage: current is returned unchanged.
	next, ok = g.Next("Technical_Assessment")
	assert.False(t, ok)
	assert.Equal(t, "Technical_Assessment", next)
}

func TestGraph_NextFromOffGraphStage(t *testing.T) {
	g := testGraph()

	// Off-graph stages (e.g. the scheduler's "Scheduling" bootstrap)
	// resolve to the first stage.
	next, ok := g.Next("Scheduling")
	assert.True(t, ok)
	assert.Equal(t, "Sourcing", next)
}

func TestGraph_IsTerminal(t *testing.T) {
	g := testGraph()

	assert.True(t, g.IsTerminal("Technical_Assessment"))
	assert.False(t, g.IsTerminal("Sourcing"))
	assert.False(t, g.IsTerminal("Scheduling"))
}

func TestGraph_Definition(t *testing.T) {
	g := Default()

	def, ok := g.Definition("Interviews")
	require.True(t, ok)
	assert.Equal(t, 14, def.SLADays)
	assert.Equal(t, "Hiring Team", def.DefaultOwner)
	assert.Equal(t, []string{"HR", "Technical", "Team Fit", "Final"}, def.SubStages)

	_, ok = g.Definition("Unknown")
	assert.False(t, ok)
}

func TestDefault_StageSequence(t *testing.T) {
	g := Default()

	var names []string
	for _, s := range g.Stages() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"Sourcing", "Screening", "Technical_Assessment",
		"Interviews", "Offer_Negotiation", "Onboarding",
	}, names)
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	tth, ok := catalog["time_to_hire"]
	require.True(t, ok)
	assert.Equal(t, "30", tth.Target)
	assert.Equal(t, "days", tth.Unit)

	cph, ok := catalog["cost_per_hire"]
	require.True(t, ok)
	assert.Equal(t, "TBD", cph.Target)
}
