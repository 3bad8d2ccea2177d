package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/todoapp/api/internal/core/ports"
)

// captureWriter buffers the response body so successful replies can be
// written to the cache after the handler runs.
type captureWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (cw *captureWriter) WriteHeader(status int) {
	cw.status = status
	cw.ResponseWriter.WriteHeader(status)
}

func (cw *captureWriter) Write(p []byte) (int, error) {
	if cw.status == 0 {
		cw.status = http.StatusOK
	}
	cw.body.Write(p)
	return cw.ResponseWriter.Write(p)
}

// cacheMiddleware serves GET responses from the cache keyed by the full
// request URL, and stores successful responses on a miss. Store failures
// degrade to pass-through.
func cacheMiddleware(cache ports.CacheStore, ttl time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := r.URL.RequestURI()
			cached, hit, err := cache.Get(r.Context(), key)
			if err != nil {
				logger.WarnContext(r.Context(), "cache lookup failed", "key", key, "error", err)
			}
			if hit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write(cached)
				return
			}

			cw := &captureWriter{ResponseWriter: w}
			next.ServeHTTP(cw, r)

			if cw.status == http.StatusOK {
				if err := cache.Set(r.Context(), key, cw.body.Bytes(), ttl); err != nil {
					logger.WarnContext(r.Context(), "cache store failed", "key", key, "error", err)
				}
			}
		})
	}
}
