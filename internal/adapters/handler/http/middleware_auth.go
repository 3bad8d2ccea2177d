package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/todoapp/api/internal/core/domain"
	"github.com/todoapp/api/internal/core/ports"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// UserIDFromContext returns the authenticated user id placed in the request
// context by the auth middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// authMiddleware guards a route group with a bearer access token. When the
// token is expired it attempts a silent refresh against the refresh token
// cookie; a rotated access token is handed back to the client as a cookie.
func authMiddleware(auth ports.AuthService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondError(w, r, logger, domain.Unauthorized("please provide a token"))
				return
			}
			accessToken := strings.TrimPrefix(header, "Bearer ")

			var refreshToken string
			if cookie, err := r.Cookie(refreshTokenCookie); err == nil {
				refreshToken = cookie.Value
			}

			userID, newAccessToken, err := auth.Authenticate(r.Context(), accessToken, refreshToken)
			if err != nil {
				respondError(w, r, logger, err)
				return
			}

			if newAccessToken != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     accessTokenCookie,
					Value:    newAccessToken,
					Path:     "/",
					HttpOnly: true,
					Secure:   true,
					SameSite: http.SameSiteStrictMode,
				})
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
