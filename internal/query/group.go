package query

import "github.com/zentryhq/zentry/internal/models"

// StageColumn is one pipeline board column with its deals in store order.
type StageColumn struct {
	Stage models.DealStage `json:"stage"`
	Deals []models.Deal    `json:"deals"`
}

// GroupDealsByStage lays deals out as pipeline board columns. Columns
// follow the fixed board order and are present even when empty; deals in
// stages outside the board (lost) are dropped from the view.
func GroupDealsByStage(deals []models.Deal) []StageColumn {
	cols := make([]StageColumn, 0, len(models.PipelineStages))
	for _, stage := range models.PipelineStages {
		col := StageColumn{Stage: stage, Deals: []models.Deal{}}
		for _, d := range deals {
			if d.Stage == stage {
				col.Deals = append(col.Deals, d)
			}
		}
		cols = append(cols, col)
	}
	return cols
}

// StatusColumn is one task board column with its tasks in store order.
type StatusColumn struct {
	Status models.TaskStatus `json:"status"`
	Tasks  []models.Task     `json:"tasks"`
}

// GroupTasksByStatus lays tasks out as board columns in the fixed
// todo, in-progress, review, done order. Empty columns are kept.
func GroupTasksByStatus(tasks []models.Task) []StatusColumn {
	cols := make([]StatusColumn, 0, len(models.BoardStatuses))
	for _, status := range models.BoardStatuses {
		col := StatusColumn{Status: status, Tasks: []models.Task{}}
		for _, t := range tasks {
			if t.Status == status {
				col.Tasks = append(col.Tasks, t)
			}
		}
		cols = append(cols, col)
	}
	return cols
}
