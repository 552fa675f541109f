package api

import (
	"net/http"
	"time"

	"github.com/zentryhq/zentry/internal/files"
	"github.com/zentryhq/zentry/internal/models"
	"github.com/zentryhq/zentry/internal/query"
	"github.com/zentryhq/zentry/internal/store"
)

func (s *Server) handleListSites(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Sites())
}

// createSiteRequest is the body accepted by POST /v1/sites.
type createSiteRequest struct {
	Name   string            `json:"name"`
	URL    string            `json:"url"`
	Type   models.SiteType   `json:"type"`
	Status models.SiteStatus `json:"status"`
}

func (s *Server) handleCreateSite(w http.ResponseWriter, r *http.Request) {
	var req createSiteRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Type == "" {
		req.Type = models.SiteTypeSite
	}
	if req.Status == "" {
		req.Status = models.SitePublished
	}
	if !req.Type.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid site type")
		return
	}
	if !req.Status.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid site status")
		return
	}

	site := s.store.AddSite(models.Site{
		Name:     req.Name,
		URL:      req.URL,
		Type:     req.Type,
		Visitors: "0",
		Status:   req.Status,
	})
	s.writeJSON(w, http.StatusCreated, site)
}

// updateSiteRequest is the body accepted by PATCH /v1/sites/{id}.
type updateSiteRequest struct {
	Name     *string            `json:"name"`
	URL      *string            `json:"url"`
	Type     *models.SiteType   `json:"type"`
	Visitors *string            `json:"visitors"`
	Status   *models.SiteStatus `json:"status"`
}

func (s *Server) handleUpdateSite(w http.ResponseWriter, r *http.Request) {
	var req updateSiteRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Type != nil && !req.Type.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid site type")
		return
	}
	if req.Status != nil && !req.Status.IsValid() {
		s.writeError(w, http.StatusBadRequest, "invalid site status")
		return
	}

	site, ok := s.store.UpdateSite(r.PathValue("id"), store.SitePatch{
		Name:     req.Name,
		URL:      req.URL,
		Type:     req.Type,
		Visitors: req.Visitors,
		Status:   req.Status,
	})
	if !ok {
		s.writeError(w, http.StatusNotFound, "site not found")
		return
	}
	s.writeJSON(w, http.StatusOK, site)
}

func (s *Server) handleDeleteSite(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteSite(r.PathValue("id"))
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	entries := query.SearchFiles(s.store.Files(), r.URL.Query().Get("q"))
	s.writeJSON(w, http.StatusOK, entries)
}

// uploadFileRequest is the body accepted by POST /v1/files.
type uploadFileRequest struct {
	Name       string `json:"name"`
	MIME       string `json:"mime"`
	SizeBytes  int64  `json:"size_bytes"`
	UploadedBy string `json:"uploaded_by"`
}

func (s *Server) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	var req uploadFileRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	entry := files.Ingest(s.store, files.Upload{
		Name:       req.Name,
		MIME:       req.MIME,
		SizeBytes:  req.SizeBytes,
		UploadedBy: req.UploadedBy,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
	s.writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteFile(r.PathValue("id"))
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
