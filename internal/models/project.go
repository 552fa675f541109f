package models

// TaskStatus is a board column for a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)

// ValidTaskStatuses is the set of all valid task statuses.
var ValidTaskStatuses = []TaskStatus{
	TaskTodo,
	TaskInProgress,
	TaskReview,
	TaskDone,
}

// IsValid returns true if the task status is recognized.
func (s TaskStatus) IsValid() bool {
	for _, v := range ValidTaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// BoardStatuses are the task board columns in display order.
var BoardStatuses = []TaskStatus{
	TaskTodo,
	TaskInProgress,
	TaskReview,
	TaskDone,
}

// TaskPriority ranks how urgent a task is.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// ValidTaskPriorities is the set of all valid task priorities.
var ValidTaskPriorities = []TaskPriority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
}

// IsValid returns true if the task priority is recognized.
func (p TaskPriority) IsValid() bool {
	for _, v := range ValidTaskPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// TimeLog is one recorded work interval on a task. Immutable once created.
type TimeLog struct {
	ID        string `json:"id"`
	Duration  int64  `json:"duration"` // seconds
	Timestamp string `json:"timestamp"`
}

// Task is a unit of work belonging to a project.
//
// Assignee is the team member's display name, not an id; deleting or
// renaming a member does not rewrite historical tasks. ProjectID may
// reference a project that no longer exists; deletes do not cascade.
type Task struct {
	ID          string       `json:"id"`
	ProjectID   string       `json:"project_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	Assignee    string       `json:"assignee"`
	DueDate     string       `json:"due_date"` // ISO date, YYYY-MM-DD
	TimeLogs    []TimeLog    `json:"time_logs"`
}

// Stakeholders names the sponsor, lead and owner of a project.
type Stakeholders struct {
	Sponsor string `json:"sponsor,omitempty"`
	Lead    string `json:"lead,omitempty"`
	Owner   string `json:"owner,omitempty"`
}

// Project is a strategic initiative grouping tasks.
type Project struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Status       string        `json:"status"`
	Members      []string      `json:"members"`
	Stakeholders *Stakeholders `json:"stakeholders,omitempty"`
	Client       string        `json:"client"`
	Budget       float64       `json:"budget"`
	Growth       float64       `json:"growth"` // completion percentage, 0-100
	Deadline     string        `json:"deadline"`
}
