package query

import (
	"strings"

	"github.com/zentryhq/zentry/internal/models"
)

// matches reports whether any of the fields contains the lowered query as
// a substring. An empty query matches everything.
func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// SearchDeals keeps deals whose title or company contains the query,
// case-insensitively.
func SearchDeals(deals []models.Deal, query string) []models.Deal {
	q := strings.ToLower(query)
	out := make([]models.Deal, 0, len(deals))
	for _, d := range deals {
		if matches(q, d.Title, d.Company) {
			out = append(out, d)
		}
	}
	return out
}

// SearchContacts keeps contacts whose name or company contains the query.
func SearchContacts(contacts []models.Contact, query string) []models.Contact {
	q := strings.ToLower(query)
	out := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if matches(q, c.Name, c.Company) {
			out = append(out, c)
		}
	}
	return out
}

// SearchTasks keeps tasks whose title contains the query.
func SearchTasks(tasks []models.Task, query string) []models.Task {
	q := strings.ToLower(query)
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(q, t.Title) {
			out = append(out, t)
		}
	}
	return out
}

// SearchCampaigns keeps campaigns whose name contains the query.
func SearchCampaigns(campaigns []models.MarketingCampaign, query string) []models.MarketingCampaign {
	q := strings.ToLower(query)
	out := make([]models.MarketingCampaign, 0, len(campaigns))
	for _, c := range campaigns {
		if matches(q, c.Name) {
			out = append(out, c)
		}
	}
	return out
}

// SearchEmails keeps emails whose sender or subject contains the query.
func SearchEmails(emails []models.Email, query string) []models.Email {
	q := strings.ToLower(query)
	out := make([]models.Email, 0, len(emails))
	for _, e := range emails {
		if matches(q, e.Sender, e.Subject) {
			out = append(out, e)
		}
	}
	return out
}

// SearchTeam keeps team members whose name, role, department or any skill
// contains the query.
func SearchTeam(team []models.TeamMember, query string) []models.TeamMember {
	q := strings.ToLower(query)
	out := make([]models.TeamMember, 0, len(team))
	for _, m := range team {
		fields := append([]string{m.Name, m.Role, m.Department}, m.Skills...)
		if matches(q, fields...) {
			out = append(out, m)
		}
	}
	return out
}

// SearchFiles keeps file entries whose name contains the query.
func SearchFiles(files []models.FileEntry, query string) []models.FileEntry {
	q := strings.ToLower(query)
	out := make([]models.FileEntry, 0, len(files))
	for _, f := range files {
		if matches(q, f.Name) {
			out = append(out, f)
		}
	}
	return out
}
