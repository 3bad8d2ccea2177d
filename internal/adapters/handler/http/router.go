package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/todoapp/api/internal/core/ports"
)

// NewHandler assembles the API routes. All authenticated GET endpoints sit
// behind the response cache.
func NewHandler(
	auth ports.AuthService,
	cache ports.CacheStore,
	cacheTTL time.Duration,
	userHandler *UserHandler,
	todoHandler *TodoHandler,
	postHandler *PostHandler,
	commentHandler *CommentHandler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, errorResponse{Errors: []errorEntry{{Message: "Not Found"}}})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, errorResponse{Errors: []errorEntry{{Message: "Method Not Allowed"}}})
	})

	authMW := authMiddleware(auth, logger)
	cacheMW := cacheMiddleware(cache, cacheTTL, logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Post("/user", userHandler.Signup)
		r.Post("/login", userHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMW)

			r.Post("/logout", userHandler.Logout)
			r.With(cacheMW).Get("/user/{id}", userHandler.GetUser)

			r.Route("/todo", func(r chi.Router) {
				r.Post("/", todoHandler.Create)
				r.With(cacheMW).Get("/", todoHandler.List)
				r.With(cacheMW).Get("/{id}", todoHandler.Get)
				r.Put("/{id}", todoHandler.Update)
				r.Delete("/{id}", todoHandler.Delete)
			})

			r.Route("/post", func(r chi.Router) {
				r.Post("/", postHandler.Create)
				r.With(cacheMW).Get("/", postHandler.List)
				r.With(cacheMW).Get("/{id}", postHandler.Get)
				r.Put("/{id}", postHandler.Update)
				r.Delete("/{id}", postHandler.Delete)
			})

			r.Route("/comment", func(r chi.Router) {
				r.Post("/{postId}", commentHandler.Create)
				r.With(cacheMW).Get("/", commentHandler.ListByPost)
				r.With(cacheMW).Get("/{id}", commentHandler.Get)
				r.Put("/{id}", commentHandler.Update)
				r.Delete("/{id}", commentHandler.Delete)
			})
		})
	})

	return r
}
