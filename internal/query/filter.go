package query

import (
	"sort"
	"time"

	"github.com/zentryhq/zentry/internal/models"
)

// Magnitude buckets a deal by the size of its amount.
type Magnitude string

const (
	MagnitudeHigh Magnitude = "high" // >= 200000
	MagnitudeMid  Magnitude = "mid"  // 50000 up to 200000
	MagnitudeLow  Magnitude = "low"  // everything below 50000
)

// DealMagnitude returns the bucket for a deal amount. Negative amounts
// land in the low bucket.
func DealMagnitude(amount float64) Magnitude {
	switch {
	case amount >= 200000:
		return MagnitudeHigh
	case amount >= 50000:
		return MagnitudeMid
	default:
		return MagnitudeLow
	}
}

// FilterDealsByMagnitude keeps deals in the given bucket.
func FilterDealsByMagnitude(deals []models.Deal, m Magnitude) []models.Deal {
	out := make([]models.Deal, 0, len(deals))
	for _, d := range deals {
		if DealMagnitude(d.Amount) == m {
			out = append(out, d)
		}
	}
	return out
}

// DateBucket classifies a task by its due date relative to a reference day.
type DateBucket string

const (
	BucketOverdue DateBucket = "overdue"
	BucketToday   DateBucket = "today"
	BucketLater   DateBucket = "later"
)

const dueDateLayout = "2006-01-02"

// OverdueTasks keeps tasks whose due date is strictly before today and
// whose status is not done. Tasks with an unparseable due date are
// excluded rather than failing the whole pass.
func OverdueTasks(tasks []models.Task, today time.Time) []models.Task {
	day := today.Format(dueDateLayout)
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == models.TaskDone {
			continue
		}
		due, err := time.Parse(dueDateLayout, t.DueDate)
		if err != nil {
			continue
		}
		if due.Format(dueDateLayout) < day {
			out = append(out, t)
		}
	}
	return out
}

// TasksDueToday keeps tasks whose due date equals today's calendar date.
// Comparison is on the date string, so time zones never shift a task
// across the boundary.
func TasksDueToday(tasks []models.Task, today time.Time) []models.Task {
	day := today.Format(dueDateLayout)
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.DueDate == day {
			out = append(out, t)
		}
	}
	return out
}

// PendingTasks keeps tasks whose status is anything but done.
func PendingTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != models.TaskDone {
			out = append(out, t)
		}
	}
	return out
}

// UpcomingTasks returns the first n pending tasks ordered by due date
// ascending. Tasks without a due date sort after everything else so the
// dated work surfaces first.
func UpcomingTasks(tasks []models.Task, n int) []models.Task {
	pending := PendingTasks(tasks)
	sort.SliceStable(pending, func(i, j int) bool {
		a, b := pending[i].DueDate, pending[j].DueDate
		if a == "" || b == "" {
			return b == "" && a != ""
		}
		return a < b
	})
	if n >= 0 && n < len(pending) {
		pending = pending[:n]
	}
	return pending
}

// TasksForProject keeps tasks belonging to the given project. Orphaned
// project ids simply match nothing.
func TasksForProject(tasks []models.Task, projectID string) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}
