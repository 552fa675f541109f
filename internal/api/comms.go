package api

import (
	"net/http"
	"time"

	"github.com/zentryhq/zentry/internal/assistant"
	"github.com/zentryhq/zentry/internal/models"
	"github.com/zentryhq/zentry/internal/query"
)

func (s *Server) handleListEmails(w http.ResponseWriter, r *http.Request) {
	emails := query.SearchEmails(s.store.Emails(), r.URL.Query().Get("q"))
	s.writeJSON(w, http.StatusOK, emails)
}

func (s *Server) handleMarkEmailRead(w http.ResponseWriter, r *http.Request) {
	email, ok := s.store.MarkEmailRead(r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "email not found")
		return
	}
	s.writeJSON(w, http.StatusOK, email)
}

func (s *Server) handleToggleEmailStar(w http.ResponseWriter, r *http.Request) {
	email, ok := s.store.ToggleEmailStar(r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "email not found")
		return
	}
	s.writeJSON(w, http.StatusOK, email)
}

func (s *Server) handleArchiveEmail(w http.ResponseWriter, r *http.Request) {
	email, ok := s.store.ArchiveEmail(r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "email not found")
		return
	}
	s.writeJSON(w, http.StatusOK, email)
}

func (s *Server) handleDeleteEmail(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteEmail(r.PathValue("id"))
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleListPosts(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Posts())
}

// createPostRequest is the body accepted by POST /v1/posts.
type createPostRequest struct {
	Author  string `json:"author"`
	Avatar  string `json:"avatar"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Video   string `json:"video"`
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Content == "" {
		s.writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	post := s.store.AddPost(models.FeedPost{
		Author:    req.Author,
		Avatar:    req.Avatar,
		Content:   req.Content,
		Image:     req.Image,
		Video:     req.Video,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	s.writeJSON(w, http.StatusCreated, post)
}

// toggleLikeRequest is the body accepted by POST /v1/posts/{id}/like.
type toggleLikeRequest struct {
	User string `json:"user"`
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	var req toggleLikeRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.User == "" {
		s.writeError(w, http.StatusBadRequest, "user is required")
		return
	}

	post, ok := s.store.ToggleLike(r.PathValue("id"), req.User)
	if !ok {
		s.writeError(w, http.StatusNotFound, "post not found")
		return
	}
	s.writeJSON(w, http.StatusOK, post)
}

// addCommentRequest is the body accepted by POST /v1/posts/{id}/comments.
type addCommentRequest struct {
	Author  string `json:"author"`
	Avatar  string `json:"avatar"`
	Content string `json:"content"`
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Content == "" {
		s.writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	post, ok := s.store.AddComment(r.PathValue("id"), models.Comment{
		Author:    req.Author,
		Avatar:    req.Avatar,
		Content:   req.Content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if !ok {
		s.writeError(w, http.StatusNotFound, "post not found")
		return
	}
	s.writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	s.store.DeletePost(r.PathValue("id"))
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// chatRequest is the body accepted by POST /v1/chat.
type chatRequest struct {
	Message string           `json:"message"`
	History []models.Message `json:"history"`
}

// chatResponse is returned by POST /v1/chat.
type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Message == "" {
		s.writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := s.copilot.Chat(r.Context(), req.History, req.Message, assistant.Snapshot{
		Projects: s.store.Projects(),
		Tasks:    s.store.Tasks(),
		Deals:    s.store.Deals(),
	})
	s.writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
