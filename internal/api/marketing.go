package api

import (
	"net/http"
	"time"

	"github.com/zentryhq/zentry/internal/models"
	"github.com/zentryhq/zentry/internal/query"
	"github.com/zentryhq/zentry/internal/store"
)

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns := query.SearchCampaigns(s.store.Campaigns(), r.URL.Query().Get("q"))
	s.writeJSON(w, http.StatusOK, campaigns)
}

// createCampaignRequest is the body accepted by POST /v1/campaigns.
type createCampaignRequest struct {
	Name        string                `json:"name"`
	Status      models.CampaignStatus `json:"status"`
	Budget      string                `json:"budget"`
	Reach       string                `json:"reach"`
	Conversions string                `json:"conversions"`
	ROI         string                `json:"roi"`
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Status == "" {
		req.Status = models.CampaignDraft
	}
	if !req.Status.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid campaign status")
		return
	}

	campaign := s.store.AddCampaign(models.MarketingCampaign{
		Name:        req.Name,
		Status:      req.Status,
		Budget:      req.Budget,
		Reach:       req.Reach,
		Conversions: req.Conversions,
		ROI:         req.ROI,
	})
	s.writeJSON(w, http.StatusCreated, campaign)
}

// updateCampaignRequest is the body accepted by PATCH /v1/campaigns/{id}.
type updateCampaignRequest struct {
	Name        *string                `json:"name"`
	Status      *models.CampaignStatus `json:"status"`
	Budget      *string                `json:"budget"`
	Reach       *string                `json:"reach"`
	Conversions *string                `json:"conversions"`
	ROI         *string                `json:"roi"`
}

func (s *Server) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req updateCampaignRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Status != nil && !req.Status.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid campaign status")
		return
	}

	campaign, ok := s.store.UpdateCampaign(r.PathValue("id"), store.CampaignPatch{
		Name:        req.Name,
		Status:      req.Status,
		Budget:      req.Budget,
		Reach:       req.Reach,
		Conversions: req.Conversions,
		ROI:         req.ROI,
	})
	if !ok {
		s.writeError(w, http.StatusNotFound, "campaign not found")
		return
	}
	s.writeJSON(w, http.StatusOK, campaign)
}

func (s *Server) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteCampaign(r.PathValue("id"))
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleLaunchCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, ok := s.store.LaunchCampaign(r.PathValue("id"), time.Now().UTC().Format(time.RFC3339))
	if !ok {
		s.writeError(w, http.StatusNotFound, "campaign not found")
		return
	}
	s.writeJSON(w, http.StatusOK, campaign)
}

func (s *Server) handleToggleCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, ok := s.store.ToggleCampaign(r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "campaign not found")
		return
	}
	s.writeJSON(w, http.StatusOK, campaign)
}

func (s *Server) handleListFlows(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Flows())
}

// createFlowRequest is the body accepted by POST /v1/flows.
type createFlowRequest struct {
	Name    string            `json:"name"`
	Trigger string            `json:"trigger"`
	Action  string            `json:"action"`
	Status  models.FlowStatus `json:"status"`
}

func (s *Server) handleCreateFlow(w http.ResponseWriter, r *http.Request) {
	var req createFlowRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Status == "" {
		req.Status = models.FlowPaused
	}

	flow := s.store.AddFlow(models.AutomationFlow{
		Name:    req.Name,
		Trigger: req.Trigger,
		Action:  req.Action,
		Status:  req.Status,
	})
	s.writeJSON(w, http.StatusCreated, flow)
}

func (s *Server) handleDeleteFlow(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteFlow(r.PathValue("id"))
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleToggleFlow(w http.ResponseWriter, r *http.Request) {
	flow, ok := s.store.ToggleFlow(r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "flow not found")
		return
	}
	s.writeJSON(w, http.StatusOK, flow)
}
