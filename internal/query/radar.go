package query

import "github.com/zentryhq/zentry/internal/models"

// RadarAxis is one spoke of a performance radar chart.
type RadarAxis struct {
	Subject string  `json:"subject"`
	Value   float64 `json:"value"`
	Max     float64 `json:"full_mark"`
}

// PerformanceRadar maps a member's performance metrics onto the four
// fixed radar axes. A member with no recorded metrics gets zeroed axes,
// never a missing chart.
func PerformanceRadar(m models.TeamMember) []RadarAxis {
	var p models.PerformanceMetric
	if m.Performance != nil {
		p = *m.Performance
	}
	return []RadarAxis{
		{Subject: "KPI", Value: p.KPI, Max: 100},
		{Subject: "Growth", Value: p.TechnicalGrowth, Max: 100},
		{Subject: "Collab", Value: p.Collaboration, Max: 100},
		{Subject: "Reliable", Value: p.Reliability, Max: 100},
	}
}
