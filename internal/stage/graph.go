// Package stage holds the static hiring pipeline configuration: the ordered
// stage graph and the metrics catalog.
package stage

// Definition describes a single pipeline stage. SubStages are descriptive
// only and never consulted by transition logic.
type Definition struct {
	Name         string   `json:"name"`
	SLADays      int      `json:"sla_days"`
	DefaultOwner string   `json:"default_owner"`
	SubStages    []string `json:"sub_stages,omitempty"`
}

// Graph is the ordered sequence of pipeline stages. Ordering is the sole
// source of "next" semantics; there is no separate transition table.
type Graph struct {
	stages []Definition
	index  map[string]int
}

// NewGraph builds a graph from the given ordered stage definitions.
func NewGraph(stages []Definition) *Graph {
	g := &Graph{
		stages: append([]Definition(nil), stages...),
		index:  make(map[string]int, len(stages)),
	}
	for i, s := range stages {
		g.index[s.Name] = i
	}
	return g
}

// Default returns the standard hiring pipeline.
func Default() *Graph {
	return NewGraph([]Definition{
		{Name: "Sourcing", SLADays: 5, DefaultOwner: "Recruiter"},
		{Name: "Screening", SLADays: 3, DefaultOwner: "Recruiter"},
		{Name: "Technical_Assessment", SLADays: 7, DefaultOwner: "Hiring Manager"},
		{
			Name:         "Interviews",
			SLADays:      14,
			DefaultOwner: "Hiring Team",
			SubStages:    []string{"HR", "Technical", "Team Fit", "Final"},
		},
		{Name: "Offer_Negotiation", SLADays: 5, DefaultOwner: "HR"},
		{Name: "Onboarding", SLADays: 30, DefaultOwner: "People Ops"},
	})
}

// Stages returns the ordered stage definitions.
func (g *Graph) Stages() []Definition {
	return append([]Definition(nil), g.stages...)
}

// First returns the first stage of the graph.
func (g *Graph) First() Definition {
	return g.stages[0]
}

// Last returns the terminal stage of the graph.
func (g *Graph) Last() Definition {
	return g.stages[len(g.stages)-1]
}

// Next returns the stage following current and true. At the terminal stage
// it returns current unchanged and false. A name outside the graph resolves
// to the first stage, preserving the index arithmetic the pipeline has
// always used for off-graph bootstrap stages such as "Scheduling".
func (g *Graph) Next(current string) (string, bool) {
	i, ok := g.index[current]
	if !ok {
		return g.stages[0].Name, true
	}
	if i >= len(g.stages)-1 {
		return current, false
	}
	return g.stages[i+1].Name, true
}

// IsTerminal reports whether the stage has no successor. Names outside the
// graph are not terminal.
func (g *Graph) IsTerminal(name string) bool {
	i, ok := g.index[name]
	return ok && i == len(g.stages)-1
}

// Contains reports whether the named stage is part of the graph.
func (g *Graph) Contains(name string) bool {
	_, ok := g.index[name]
	return ok
}

// IndexOf returns the position of the named stage, or -1 if absent.
func (g *Graph) IndexOf(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	return -1
}

// Definition returns the definition of the named stage.
func (g *Graph) Definition(name string) (Definition, bool) {
	if i, ok := g.index[name]; ok {
		return g.stages[i], true
	}
	return Definition{}, false
}
