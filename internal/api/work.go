package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/zentryhq/zentry/internal/models"
	"github.com/zentryhq/zentry/internal/query"
	"github.com/zentryhq/zentry/internal/store"
)

// upcomingTaskLimit caps ?due=upcoming when no explicit limit is given.
const upcomingTaskLimit = 5

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks := query.SearchTasks(s.store.Tasks(), r.URL.Query().Get("q"))
	switch r.URL.Query().Get("due") {
	case "overdue":
		tasks = query.OverdueTasks(tasks, time.Now())
	case "today":
		tasks = query.TasksDueToday(tasks, time.Now())
	case "upcoming":
		n := upcomingTaskLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil && v > 0 {
				n = v
			}
		}
		tasks = query.UpcomingTasks(tasks, n)
	}
	if pid := r.URL.Query().Get("project"); pid != "" {
		tasks = query.TasksForProject(tasks, pid)
	}
	s.writeJSON(w, http.StatusOK, tasks)
}

// createTaskRequest is the body accepted by POST /v1/tasks.
type createTaskRequest struct {
	ProjectID   string              `json:"project_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	Assignee    string              `json:"assignee"`
	DueDate     string              `json:"due_date"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Title == "" {
		s.writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Status == "" {
		req.Status = models.TaskTodo
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !req.Status.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid task status")
		return
	}
	if !req.Priority.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid task priority")
		return
	}

	task := s.store.AddTask(models.Task{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate,
	})
	s.writeJSON(w, http.StatusCreated, task)
}

// updateTaskRequest is the body accepted by PATCH /v1/tasks/{id}.
type updateTaskRequest struct {
	ProjectID   *string              `json:"project_id"`
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *models.TaskStatus   `json:"status"`
	Priority    *models.TaskPriority `json:"priority"`
	Assignee    *string              `json:"assignee"`
	DueDate     *string              `json:"due_date"`
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Status != nil && !req.Status.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid task status")
		return
	}
	if req.Priority != nil && !req.Priority.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid task priority")
		return
	}

	task, ok := s.store.UpdateTask(r.PathValue("id"), store.TaskPatch{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate,
	})
	if !ok {
		s.writeError(w, http.StatusNotFound, "task not found")
		return
	}
	s.writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteTask(r.PathValue("id"))
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// logTimeRequest is the body accepted by POST /v1/tasks/{id}/logs.
type logTimeRequest struct {
	DurationSeconds int64 `json:"duration_seconds"`
}

func (s *Server) handleLogTime(w http.ResponseWriter, r *http.Request) {
	var req logTimeRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.DurationSeconds <= 0 {
		s.writeError(w, http.StatusBadRequest, "duration_seconds must be greater than 0")
		return
	}

	task, ok := s.store.AppendTimeLog(r.PathValue("id"), models.TimeLog{
		Duration:  req.DurationSeconds,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if !ok {
		s.writeError(w, http.StatusNotFound, "task not found")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"task":          task,
		"total_seconds": query.TaskSeconds(task),
		"total_display": query.FormatDuration(query.TaskSeconds(task)),
	})
}

// describeTaskRequest is the body accepted by POST /v1/tasks/describe.
type describeTaskRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleDescribeTask(w http.ResponseWriter, r *http.Request) {
	var req describeTaskRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Title == "" {
		s.writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	desc := s.copilot.GenerateTaskDescription(r.Context(), req.Title)
	s.writeJSON(w, http.StatusOK, map[string]string{"description": desc})
}

func (s *Server) handleTaskBoard(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, query.GroupTasksByStatus(s.store.Tasks()))
}

func (s *Server) handleListProjects(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Projects())
}

// createProjectRequest is the body accepted by POST /v1/projects.
type createProjectRequest struct {
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Status       string               `json:"status"`
	Members      []string             `json:"members"`
	Stakeholders *models.Stakeholders `json:"stakeholders"`
	Client       string               `json:"client"`
	Budget       float64              `json:"budget"`
	Growth       float64              `json:"growth"`
	Deadline     string               `json:"deadline"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Status == "" {
		req.Status = "active"
	}

	project := s.store.AddProject(models.Project{
		Name:         req.Name,
		Description:  req.Description,
		Status:       req.Status,
		Members:      req.Members,
		Stakeholders: req.Stakeholders,
		Client:       req.Client,
		Budget:       req.Budget,
		Growth:       req.Growth,
		Deadline:     req.Deadline,
	})
	s.writeJSON(w, http.StatusCreated, project)
}

// updateProjectRequest is the body accepted by PATCH /v1/projects/{id}.
type updateProjectRequest struct {
	Name         *string              `json:"name"`
	Description  *string              `json:"description"`
	Status       *string              `json:"status"`
	Members      *[]string            `json:"members"`
	Stakeholders *models.Stakeholders `json:"stakeholders"`
	Client       *string              `json:"client"`
	Budget       *float64             `json:"budget"`
	Growth       *float64             `json:"growth"`
	Deadline     *string              `json:"deadline"`
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var req updateProjectRequest
	if !s.decode(w, r, &req) {
		return
	}

	project, ok := s.store.UpdateProject(r.PathValue("id"), store.ProjectPatch{
		Name:         req.Name,
		Description:  req.Description,
		Status:       req.Status,
		Members:      req.Members,
		Stakeholders: req.Stakeholders,
		Client:       req.Client,
		Budget:       req.Budget,
		Growth:       req.Growth,
		Deadline:     req.Deadline,
	})
	if !ok {
		s.writeError(w, http.StatusNotFound, "project not found")
		return
	}
	s.writeJSON(w, http.StatusOK, project)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteProject(r.PathValue("id"))
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
