package models

// PerformanceMetric holds a member's review scores. All values are 0-100.
type PerformanceMetric struct {
	KPI             float64 `json:"kpi"`
	TechnicalGrowth float64 `json:"technical_growth"`
	Collaboration   float64 `json:"collaboration"`
	Reliability     float64 `json:"reliability"`
}

// SocialLinks are the optional external profiles of a team member.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	Telegram  string `json:"telegram,omitempty"`
}

// TeamMember is an employee record in the HR module.
type TeamMember struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Role        string             `json:"role"`
	Department  string             `json:"department"`
	Avatar      string             `json:"avatar"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	Location    string             `json:"location"`
	Skills      []string           `json:"skills,omitempty"`
	Experience  string             `json:"experience,omitempty"`
	Performance *PerformanceMetric `json:"performance,omitempty"`
	SocialLinks *SocialLinks       `json:"social_links,omitempty"`
}
