package api

import (
	"net/http"

	"github.com/zentryhq/zentry/internal/models"
	"github.com/zentryhq/zentry/internal/query"
	"github.com/zentryhq/zentry/internal/store"
)

func (s *Server) handleListDeals(w http.ResponseWriter, r *http.Request) {
	deals := query.SearchDeals(s.store.Deals(), r.URL.Query().Get("q"))
	if m := r.URL.Query().Get("magnitude"); m != "" {
		deals = query.FilterDealsByMagnitude(deals, query.Magnitude(m))
	}
	s.writeJSON(w, http.StatusOK, deals)
}

// createDealRequest is the body accepted by POST /v1/deals.
type createDealRequest struct {
	Title   string           `json:"title"`
	Company string           `json:"company"`
	Amount  float64          `json:"amount"`
	Stage   models.DealStage `json:"stage"`
	Contact string           `json:"contact"`
}

func (s *Server) handleCreateDeal(w http.ResponseWriter, r *http.Request) {
	var req createDealRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Title == "" {
		s.writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Stage == "" {
		req.Stage = models.StageLead
	}
	if !req.Stage.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid deal stage")
		return
	}

	deal := s.store.AddDeal(models.Deal{
		Title:   req.Title,
		Company: req.Company,
		Amount:  req.Amount,
		Stage:   req.Stage,
		Contact: req.Contact,
	})
	s.writeJSON(w, http.StatusCreated, deal)
}

// updateDealRequest is the body accepted by PATCH /v1/deals/{id}. Absent
// fields are left untouched.
type updateDealRequest struct {
	Title   *string           `json:"title"`
	Company *string           `json:"company"`
	Amount  *float64          `json:"amount"`
	Stage   *models.DealStage `json:"stage"`
	Contact *string           `json:"contact"`
}

func (s *Server) handleUpdateDeal(w http.ResponseWriter, r *http.Request) {
	var req updateDealRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Stage != nil && !req.Stage.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid deal stage")
		return
	}

	deal, ok := s.store.UpdateDeal(r.PathValue("id"), store.DealPatch{
		Title:   req.Title,
		Company: req.Company,
		Amount:  req.Amount,
		Stage:   req.Stage,
		Contact: req.Contact,
	})
	if !ok {
		s.writeError(w, http.StatusNotFound, "deal not found")
		return
	}
	s.writeJSON(w, http.StatusOK, deal)
}

func (s *Server) handleDeleteDeal(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteDeal(r.PathValue("id"))
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handlePipeline(w http.ResponseWriter, _ *http.Request) {
	deals := s.store.Deals()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"columns": query.GroupDealsByStage(deals),
		"total":   query.PipelineValue(deals),
	})
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts := query.SearchContacts(s.store.Contacts(), r.URL.Query().Get("q"))
	s.writeJSON(w, http.StatusOK, contacts)
}

// createContactRequest is the body accepted by POST /v1/contacts.
type createContactRequest struct {
	Name    string               `json:"name"`
	Email   string               `json:"email"`
	Company string               `json:"company"`
	Status  models.ContactStatus `json:"status"`
	Value   float64              `json:"value"`
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Status == "" {
		req.Status = models.ContactStatusLead
	}
	if !req.Status.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid contact status")
		return
	}

	contact := s.store.AddContact(models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Status:  req.Status,
		Value:   req.Value,
	})
	s.writeJSON(w, http.StatusCreated, contact)
}

// updateContactRequest is the body accepted by PATCH /v1/contacts/{id}.
type updateContactRequest struct {
	Name    *string               `json:"name"`
	Email   *string               `json:"email"`
	Company *string               `json:"company"`
	Status  *models.ContactStatus `json:"status"`
	Value   *float64              `json:"value"`
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	var req updateContactRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Status != nil && !req.Status.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid contact status")
		return
	}

	contact, ok := s.store.UpdateContact(r.PathValue("id"), store.ContactPatch{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Status:  req.Status,
		Value:   req.Value,
	})
	if !ok {
		s.writeError(w, http.StatusNotFound, "contact not found")
		return
	}
	s.writeJSON(w, http.StatusOK, contact)
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteContact(r.PathValue("id"))
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
