package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/go-chi/chi/v5"

	"github.com/todoapp/api/internal/core/domain"
	"github.com/todoapp/api/internal/core/ports"
)

type CommentHandler struct {
	service ports.CommentService
	logger  *slog.Logger
}

func NewCommentHandler(service ports.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{service: service, logger: logger}
}

type commentRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Body  string `json:"body"`
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.logger, domain.BadRequest("invalid request body"))
		return
	}
	if req.Name == "" || req.Body == "" {
		respondError(w, r, h.logger, domain.BadRequest("name and body are required"))
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		respondError(w, r, h.logger, domain.BadRequest("a valid email is required"))
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	if _, err := h.service.Save(r.Context(), userID, chi.URLParam(r, "postId"), ports.SaveCommentInput{
		Email: req.Email,
		Name:  req.Name,
		Body:  req.Body,
	}); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondMessage(w, http.StatusCreated, "comment created successfully")
}

func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID := r.URL.Query().Get("postId")
	if postID == "" {
		respondError(w, r, h.logger, domain.BadRequest("postId is required"))
		return
	}

	page, size := pageParams(r)
	comments, err := h.service.ListByPost(r.Context(), postID, page, size)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	comment, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.logger, domain.BadRequest("invalid request body"))
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	comment, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "id"), ports.UpdateCommentInput{
		Email: req.Email,
		Name:  req.Name,
		Body:  req.Body,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	message, err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondMessage(w, http.StatusOK, message)
}
