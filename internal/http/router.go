package http

import (
	"net/http"

	"marketplace-analytics/internal/shared/loggers"
	"marketplace-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates the ops router. This service has no request/response
// API; the HTTP port exists only for health checks and metrics scraping.
func NewRouter(httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Get("/healthz", handleHealthz)
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
