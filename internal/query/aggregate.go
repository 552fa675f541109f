package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zentryhq/zentry/internal/models"
)

// PipelineValue sums the amount of every deal, whatever its stage.
func PipelineValue(deals []models.Deal) float64 {
	var total float64
	for _, d := range deals {
		total += d.Amount
	}
	return total
}

// TaskSeconds sums the durations logged against a single task.
func TaskSeconds(t models.Task) int64 {
	var total int64
	for _, l := range t.TimeLogs {
		total += l.Duration
	}
	return total
}

// TotalTrackedSeconds sums the logged durations across all tasks.
func TotalTrackedSeconds(tasks []models.Task) int64 {
	var total int64
	for _, t := range tasks {
		total += TaskSeconds(t)
	}
	return total
}

// TrackedHours converts a seconds total to whole hours, rounding down.
func TrackedHours(seconds int64) int64 {
	return seconds / 3600
}

// FormatDuration renders a seconds total for display. Leading zero units
// are dropped: an hour total reads "1h 1m 1s", a sub-hour total "5m 2s",
// and a sub-minute total just "42s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// FormatThousands renders a non-fractional amount with comma separators,
// matching the dashboard's money display.
func FormatThousands(amount float64) string {
	digits := strconv.FormatFloat(amount, 'f', 0, 64)
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// ActiveCampaigns counts campaigns currently in the Active status.
func ActiveCampaigns(campaigns []models.MarketingCampaign) int {
	var n int
	for _, c := range campaigns {
		if c.Status == models.CampaignActive {
			n++
		}
	}
	return n
}

// PublishedSites counts sites currently in the Published status.
func PublishedSites(sites []models.Site) int {
	var n int
	for _, s := range sites {
		if s.Status == models.SitePublished {
			n++
		}
	}
	return n
}

// DashboardStats is the aggregate snapshot shown on the dashboard header.
type DashboardStats struct {
	PipelineValue   float64 `json:"pipeline_value"`
	DealCount       int     `json:"deal_count"`
	OpenDeals       int     `json:"open_deals"`
	WonDeals        int     `json:"won_deals"`
	PendingTasks    int     `json:"pending_tasks"`
	DoneTasks       int     `json:"done_tasks"`
	TrackedHours    int64   `json:"tracked_hours"`
	TeamSize        int     `json:"team_size"`
	Projects        int     `json:"projects"`
	ActiveCampaigns int     `json:"active_campaigns"`
	PublishedSites  int     `json:"published_sites"`
}

// Dashboard derives the headline stats from store snapshots.
func Dashboard(deals []models.Deal, tasks []models.Task, team []models.TeamMember, projects []models.Project, campaigns []models.MarketingCampaign, sites []models.Site) DashboardStats {
	stats := DashboardStats{
		PipelineValue:   PipelineValue(deals),
		DealCount:       len(deals),
		TrackedHours:    TrackedHours(TotalTrackedSeconds(tasks)),
		TeamSize:        len(team),
		Projects:        len(projects),
		ActiveCampaigns: ActiveCampaigns(campaigns),
		PublishedSites:  PublishedSites(sites),
	}
	for _, d := range deals {
		if d.Stage == models.StageWon {
			stats.WonDeals++
		} else if d.Stage != models.StageLost {
			stats.OpenDeals++
		}
	}
	for _, t := range tasks {
		if t.Status == models.TaskDone {
			stats.DoneTasks++
		} else {
			stats.PendingTasks++
		}
	}
	return stats
}
