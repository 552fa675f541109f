package api

import (
	"net/http"

	"github.com/zentryhq/zentry/internal/models"
	"github.com/zentryhq/zentry/internal/query"
	"github.com/zentryhq/zentry/internal/store"
)

func (s *Server) handleListTeam(w http.ResponseWriter, r *http.Request) {
	team := query.SearchTeam(s.store.TeamMembers(), r.URL.Query().Get("q"))
	s.writeJSON(w, http.StatusOK, team)
}

// createTeamMemberRequest is the body accepted by POST /v1/team.
type createTeamMemberRequest struct {
	Name        string                    `json:"name"`
	Role        string                    `json:"role"`
	Department  string                    `json:"department"`
	Avatar      string                    `json:"avatar"`
	Email       string                    `json:"email"`
	Phone       string                    `json:"phone"`
	Location    string                    `json:"location"`
	Skills      []string                  `json:"skills"`
	Experience  string                    `json:"experience"`
	Performance *models.PerformanceMetric `json:"performance"`
	SocialLinks *models.SocialLinks       `json:"social_links"`
}

func (s *Server) handleCreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req createTeamMemberRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	member := s.store.AddTeamMember(models.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		Department:  req.Department,
		Avatar:      req.Avatar,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		Skills:      req.Skills,
		Experience:  req.Experience,
		Performance: req.Performance,
		SocialLinks: req.SocialLinks,
	})
	s.writeJSON(w, http.StatusCreated, member)
}

// updateTeamMemberRequest is the body accepted by PATCH /v1/team/{id}.
type updateTeamMemberRequest struct {
	Name        *string                   `json:"name"`
	Role        *string                   `json:"role"`
	Department  *string                   `json:"department"`
	Avatar      *string                   `json:"avatar"`
	Email       *string                   `json:"email"`
	Phone       *string                   `json:"phone"`
	Location    *string                   `json:"location"`
	Skills      *[]string                 `json:"skills"`
	Experience  *string                   `json:"experience"`
	Performance *models.PerformanceMetric `json:"performance"`
	SocialLinks *models.SocialLinks       `json:"social_links"`
}

func (s *Server) handleUpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req updateTeamMemberRequest
	if !s.decode(w, r, &req) {
		return
	}

	member, ok := s.store.UpdateTeamMember(r.PathValue("id"), store.TeamMemberPatch{
		Name:        req.Name,
		Role:        req.Role,
		Department:  req.Department,
		Avatar:      req.Avatar,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		Skills:      req.Skills,
		Experience:  req.Experience,
		Performance: req.Performance,
		SocialLinks: req.SocialLinks,
	})
	if !ok {
		s.writeError(w, http.StatusNotFound, "team member not found")
		return
	}
	s.writeJSON(w, http.StatusOK, member)
}

func (s *Server) handleDeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteTeamMember(r.PathValue("id"))
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleRadar(w http.ResponseWriter, r *http.Request) {
	member, ok := s.store.GetTeamMember(r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "team member not found")
		return
	}
	s.writeJSON(w, http.StatusOK, query.PerformanceRadar(member))
}
