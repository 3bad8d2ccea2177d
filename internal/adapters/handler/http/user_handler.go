package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/go-chi/chi/v5"

	"github.com/todoapp/api/internal/core/domain"
	"github.com/todoapp/api/internal/core/ports"
)

type UserHandler struct {
	auth   ports.AuthService
	users  ports.UserService
	logger *slog.Logger
}

func NewUserHandler(auth ports.AuthService, users ports.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{auth: auth, users: users, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         userResponse `json:"user"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func validateCredentials(req credentialsRequest) error {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return domain.BadRequest("a valid email is required")
	}
	if len(req.Password) < 6 {
		return domain.BadRequest("password must be at least 6 characters long")
	}
	return nil
}

func setTokenCookies(w http.ResponseWriter, pair *domain.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    pair.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.logger, domain.BadRequest("invalid request body"))
		return
	}
	if err := validateCredentials(req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	pair, user, err := h.auth.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	setTokenCookies(w, pair)
	respondJSON(w, http.StatusCreated, authResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         userResponse{ID: user.ID.Hex(), Email: user.Email},
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.logger, domain.BadRequest("invalid request body"))
		return
	}

	pair, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Do not reveal whether the email or the password was wrong.
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidToken) {
			err = domain.Unauthorized("invalid email or password")
		}
		respondError(w, r, h.logger, err)
		return
	}

	setTokenCookies(w, pair)
	respondJSON(w, http.StatusOK, struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}{pair.AccessToken, pair.RefreshToken})
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	if err := h.auth.Logout(r.Context(), userID); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{Name: accessTokenCookie, Value: "", Path: "/", MaxAge: -1})
	http.SetCookie(w, &http.Cookie{Name: refreshTokenCookie, Value: "", Path: "/", MaxAge: -1})
	respondMessage(w, http.StatusOK, "user logged out successfully")
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, userResponse{ID: user.ID.Hex(), Email: user.Email})
}
