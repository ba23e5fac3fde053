package stage

// Metric is a static performance metric target. Target is rendered as a
// string so that sentinel targets ("N/A", "TBD") share a representation
// with numeric ones; it is consumed only by the report generator.
type Metric struct {
	Target      string `json:"target"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// MetricsCatalog maps metric names to their static targets.
type MetricsCatalog map[string]Metric

// DefaultCatalog returns the standard hiring performance metrics.
func DefaultCatalog() MetricsCatalog {
	return MetricsCatalog{
		"time_to_hire": {
			Target:      "30",
			Unit:        "days",
			Description: "Average time from application to offer acceptance",
		},
		"candidate_experience": {
			Target:      "4.5",
			Unit:        "stars (1-5)",
			Description: "Candidate satisfaction score",
		},
		"offer_acceptance_rate": {
			Target:      "80",
			Unit:        "%",
			Description: "Percentage of offers accepted",
		},
		"hiring_manager_satisfaction": {
			Target:      "4.5",
			Unit:        "stars (1-5)",
			Description: "Hiring manager satisfaction with the process",
		},
		"diversity_metrics": {
			Target:      "N/A",
			Unit:        "%",
			Description: "Diversity in candidate pipeline",
		},
		"cost_per_hire": {
			Target:      "TBD",
			Unit:        "USD",
			Description: "Average cost per hire",
		},
	}
}
