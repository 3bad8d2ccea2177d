package http

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type contextKey string

// userIDKey carries the authenticated user id set by the auth middleware.
const userIDKey contextKey = "userID"

type errorEntry struct {
	Message string `json:"message"`
}

// errorResponse is the envelope every error reply uses.
type errorResponse struct {
	Errors []errorEntry `json:"errors"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageResponse{Message: message})
}

// pageParams reads pageNumber/pageSize from the query string, falling back
// to the first page of ten items.
func pageParams(r *http.Request) (page, size int64) {
	page, size = 1, 10
	if v := r.URL.Query().Get("pageNumber"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			page = n
		}
	}
	if v := r.URL.Query().Get("pageSize"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			size = n
		}
	}
	return page, size
}
