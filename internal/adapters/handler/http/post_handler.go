package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todoapp/api/internal/core/domain"
	"github.com/todoapp/api/internal/core/ports"
)

type PostHandler struct {
	service ports.PostService
	logger  *slog.Logger
}

func NewPostHandler(service ports.PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{service: service, logger: logger}
}

type postRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.logger, domain.BadRequest("invalid request body"))
		return
	}
	if req.Title == "" || req.Body == "" {
		respondError(w, r, h.logger, domain.BadRequest("title and body are required"))
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	post, err := h.service.Save(r.Context(), userID, ports.SavePostInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	posts, err := h.service.List(r.Context(), page, size)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.logger, domain.BadRequest("invalid request body"))
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	post, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "id"), ports.UpdatePostInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	message, err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondMessage(w, http.StatusOK, message)
}
