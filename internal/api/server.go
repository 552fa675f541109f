// Package api exposes the ZENtry core over HTTP.
package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/zentryhq/zentry/internal/assistant"
	"github.com/zentryhq/zentry/internal/metrics"
	"github.com/zentryhq/zentry/internal/query"
	"github.com/zentryhq/zentry/internal/status"
	"github.com/zentryhq/zentry/internal/store"
)

// maxBodyBytes caps request bodies at 1 MB.
const maxBodyBytes = 1 << 20

// Server is an HTTP API server over the domain store.
type Server struct {
	store     *store.Store
	copilot   *assistant.Gateway
	sync      *status.Ticker
	logger    *slog.Logger
	authToken string // empty = no auth required
}

// NewServer creates a new Server with the given dependencies.
func NewServer(st *store.Store, copilot *assistant.Gateway, sync *status.Ticker, logger *slog.Logger, authToken string) *Server {
	return &Server{
		store:     st,
		copilot:   copilot,
		sync:      sync,
		logger:    logger,
		authToken: authToken,
	}
}

// Handler returns an http.Handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health check, no auth required.
	mux.HandleFunc("GET /healthz", s.handleHealthz)

	// Sales & CRM.
	mux.HandleFunc("GET /v1/deals", s.auth(s.handleListDeals))
	mux.HandleFunc("POST /v1/deals", s.auth(s.handleCreateDeal))
	mux.HandleFunc("PATCH /v1/deals/{id}", s.auth(s.handleUpdateDeal))
	mux.HandleFunc("DELETE /v1/deals/{id}", s.auth(s.handleDeleteDeal))
	mux.HandleFunc("GET /v1/deals/pipeline", s.auth(s.handlePipeline))
	mux.HandleFunc("GET /v1/contacts", s.auth(s.handleListContacts))
	mux.HandleFunc("POST /v1/contacts", s.auth(s.handleCreateContact))
	mux.HandleFunc("PATCH /v1/contacts/{id}", s.auth(s.handleUpdateContact))
	mux.HandleFunc("DELETE /v1/contacts/{id}", s.auth(s.handleDeleteContact))

	// Tasks & projects.
	mux.HandleFunc("GET /v1/tasks", s.auth(s.handleListTasks))
	mux.HandleFunc("POST /v1/tasks", s.auth(s.handleCreateTask))
	mux.HandleFunc("PATCH /v1/tasks/{id}", s.auth(s.handleUpdateTask))
	mux.HandleFunc("DELETE /v1/tasks/{id}", s.auth(s.handleDeleteTask))
	mux.HandleFunc("POST /v1/tasks/{id}/logs", s.auth(s.handleLogTime))
	mux.HandleFunc("POST /v1/tasks/describe", s.auth(s.handleDescribeTask))
	mux.HandleFunc("GET /v1/tasks/board", s.auth(s.handleTaskBoard))
	mux.HandleFunc("GET /v1/projects", s.auth(s.handleListProjects))
	mux.HandleFunc("POST /v1/projects", s.auth(s.handleCreateProject))
	mux.HandleFunc("PATCH /v1/projects/{id}", s.auth(s.handleUpdateProject))
	mux.HandleFunc("DELETE /v1/projects/{id}", s.auth(s.handleDeleteProject))

	// HR & people.
	mux.HandleFunc("GET /v1/team", s.auth(s.handleListTeam))
	mux.HandleFunc("POST /v1/team", s.auth(s.handleCreateTeamMember))
	mux.HandleFunc("PATCH /v1/team/{id}", s.auth(s.handleUpdateTeamMember))
	mux.HandleFunc("DELETE /v1/team/{id}", s.auth(s.handleDeleteTeamMember))
	mux.HandleFunc("GET /v1/team/{id}/radar", s.auth(s.handleRadar))

	// Marketing & automation.
	mux.HandleFunc("GET /v1/campaigns", s.auth(s.handleListCampaigns))
	mux.HandleFunc("POST /v1/campaigns", s.auth(s.handleCreateCampaign))
	mux.HandleFunc("PATCH /v1/campaigns/{id}", s.auth(s.handleUpdateCampaign))
	mux.HandleFunc("DELETE /v1/campaigns/{id}", s.auth(s.handleDeleteCampaign))
	mux.HandleFunc("POST /v1/campaigns/{id}/launch", s.auth(s.handleLaunchCampaign))
	mux.HandleFunc("POST /v1/campaigns/{id}/toggle", s.auth(s.handleToggleCampaign))
	mux.HandleFunc("GET /v1/flows", s.auth(s.handleListFlows))
	mux.HandleFunc("POST /v1/flows", s.auth(s.handleCreateFlow))
	mux.HandleFunc("DELETE /v1/flows/{id}", s.auth(s.handleDeleteFlow))
	mux.HandleFunc("POST /v1/flows/{id}/toggle", s.auth(s.handleToggleFlow))

	// Comms & collaboration.
	mux.HandleFunc("GET /v1/emails", s.auth(s.handleListEmails))
	mux.HandleFunc("POST /v1/emails/{id}/read", s.auth(s.handleMarkEmailRead))
	mux.HandleFunc("POST /v1/emails/{id}/star", s.auth(s.handleToggleEmailStar))
	mux.HandleFunc("POST /v1/emails/{id}/archive", s.auth(s.handleArchiveEmail))
	mux.HandleFunc("DELETE /v1/emails/{id}", s.auth(s.handleDeleteEmail))
	mux.HandleFunc("GET /v1/posts", s.auth(s.handleListPosts))
	mux.HandleFunc("POST /v1/posts", s.auth(s.handleCreatePost))
	mux.HandleFunc("POST /v1/posts/{id}/like", s.auth(s.handleToggleLike))
	mux.HandleFunc("POST /v1/posts/{id}/comments", s.auth(s.handleAddComment))
	mux.HandleFunc("DELETE /v1/posts/{id}", s.auth(s.handleDeletePost))

	// Sites & files.
	mux.HandleFunc("GET /v1/sites", s.auth(s.handleListSites))
	mux.HandleFunc("POST /v1/sites", s.auth(s.handleCreateSite))
	mux.HandleFunc("PATCH /v1/sites/{id}", s.auth(s.handleUpdateSite))
	mux.HandleFunc("DELETE /v1/sites/{id}", s.auth(s.handleDeleteSite))
	mux.HandleFunc("GET /v1/files", s.auth(s.handleListFiles))
	mux.HandleFunc("POST /v1/files", s.auth(s.handleUploadFile))
	mux.HandleFunc("DELETE /v1/files/{id}", s.auth(s.handleDeleteFile))

	// Derived views and the assistant.
	mux.HandleFunc("GET /v1/dashboard", s.auth(s.handleDashboard))
	mux.HandleFunc("POST /v1/chat", s.auth(s.handleChat))
	mux.HandleFunc("GET /v1/status", s.auth(s.handleStatus))

	return s.logRequests(mux)
}

// --- middleware ---

// auth wraps a handler with Bearer token authentication when authToken is set.
func (s *Server) auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.authToken == "" {
			next(w, r)
			return
		}
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.authToken)) != 1 {
			s.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r)
	}
}

// logRequests logs each request after it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics.Inc(metrics.APIRequests)
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// --- handlers ---

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	stats := query.Dashboard(s.store.Deals(), s.store.Tasks(), s.store.TeamMembers(), s.store.Projects(), s.store.Campaigns(), s.store.Sites())
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	state := status.SyncSuccess
	if s.sync != nil {
		state = s.sync.State()
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"sync": string(state)})
}

// --- helpers ---

// decode reads a size-capped JSON body into v.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeJSON encodes v as JSON and writes it to w with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(v); encErr != nil {
		s.logger.Error("failed to encode response", "error", encErr)
	}
}

// writeError writes a JSON error response.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// Shutdown gracefully shuts down an http.Server with the given timeout.
// This is a convenience helper used by the serve command.
func Shutdown(srv *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
