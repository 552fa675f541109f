package store

import "github.com/zentryhq/zentry/internal/models"

// ProjectPatch selects project fields for a partial update.
type ProjectPatch struct {
	Name         *string
	Description  *string
	Status       *string
	Members      *[]string
	Stakeholders *models.Stakeholders
	Client       *string
	Budget       *float64
	Growth       *float64
	Deadline     *string
}

// AddProject inserts a project at the head of the collection.
func (s *Store) AddProject(p models.Project) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	if p.ID == "" {
		p.ID = s.NewID()
	}
	s.projects = append([]models.Project{cloneProject(p)}, s.projects...)
	return p
}

// Projects returns a snapshot of all projects, newest first.
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, cloneProject(p))
	}
	return out
}

// GetProject retrieves a project by id.
func (s *Store) GetProject(id string) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return cloneProject(p), true
		}
	}
	return models.Project{}, false
}

// UpdateProject merges the patch into the project matching id.
func (s *Store) UpdateProject(id string, patch ProjectPatch) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Members != nil {
			members := make([]string, len(*patch.Members))
			copy(members, *patch.Members)
			p.Members = members
		}
		if patch.Stakeholders != nil {
			st := *patch.Stakeholders
			p.Stakeholders = &st
		}
		if patch.Client != nil {
			p.Client = *patch.Client
		}
		if patch.Budget != nil {
			p.Budget = *patch.Budget
		}
		if patch.Growth != nil {
			p.Growth = *patch.Growth
		}
		if patch.Deadline != nil {
			p.Deadline = *patch.Deadline
		}
		return cloneProject(*p), true
	}
	return models.Project{}, false
}

// DeleteProject removes the project matching id. Tasks referencing the
// project are left untouched: deletes do not cascade, and orphaned
// project ids on tasks are an accepted state.
func (s *Store) DeleteProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return
		}
	}
}

// TaskPatch selects task fields for a partial update. TimeLogs are
// deliberately absent: the log sequence is append-only via AppendTimeLog.
type TaskPatch struct {
	ProjectID   *string
	Title       *string
	Description *string
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	Assignee    *string
	DueDate     *string
}

// AddTask inserts a task at the head of the collection.
func (s *Store) AddTask(t models.Task) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	if t.ID == "" {
		t.ID = s.NewID()
	}
	s.tasks = append([]models.Task{cloneTask(t)}, s.tasks...)
	return t
}

// Tasks returns a snapshot of all tasks, newest first.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, cloneTask(t))
	}
	return out
}

// GetTask retrieves a task by id.
func (s *Store) GetTask(id string) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return cloneTask(t), true
		}
	}
	return models.Task{}, false
}

// UpdateTask merges the patch into the task matching id. Status
// transitions are unconstrained: any status may move to any other.
func (s *Store) UpdateTask(id string, patch TaskPatch) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if patch.ProjectID != nil {
			t.ProjectID = *patch.ProjectID
		}
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.Assignee != nil {
			t.Assignee = *patch.Assignee
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		return cloneTask(*t), true
	}
	return models.Task{}, false
}

// DeleteTask removes the task matching id.
func (s *Store) DeleteTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// AppendTimeLog appends a log entry to the task's time log sequence and
// returns the updated task. Logs are immutable once recorded; there is no
// operation that edits or removes one.
func (s *Store) AppendTimeLog(taskID string, log models.TimeLog) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.tasks {
		if s.tasks[i].ID != taskID {
			continue
		}
		if log.ID == "" {
			log.ID = s.NewID()
		}
		s.tasks[i].TimeLogs = append(s.tasks[i].TimeLogs, log)
		return cloneTask(s.tasks[i]), true
	}
	return models.Task{}, false
}
