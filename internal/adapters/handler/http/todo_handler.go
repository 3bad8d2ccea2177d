package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todoapp/api/internal/core/domain"
	"github.com/todoapp/api/internal/core/ports"
)

type TodoHandler struct {
	service ports.TodoService
	logger  *slog.Logger
}

func NewTodoHandler(service ports.TodoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{service: service, logger: logger}
}

type saveTodoRequest struct {
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

type updateTodoRequest struct {
	Content   string `json:"content"`
	Completed *bool  `json:"completed"`
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req saveTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.logger, domain.BadRequest("invalid request body"))
		return
	}
	if req.Content == "" {
		respondError(w, r, h.logger, domain.BadRequest("content is required"))
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	todo, err := h.service.Save(r.Context(), userID, ports.SaveTodoInput{
		Content:   req.Content,
		Completed: req.Completed,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	page, size := pageParams(r)

	todos, err := h.service.List(r.Context(), userID, page, size)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	todo, err := h.service.GetByID(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.logger, domain.BadRequest("invalid request body"))
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	todo, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "id"), ports.UpdateTodoInput{
		Content:   req.Content,
		Completed: req.Completed,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	message, err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondMessage(w, http.StatusOK, message)
}
