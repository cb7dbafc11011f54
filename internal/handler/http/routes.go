package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.page)
	router.Post("/count", h.count)
	router.Get("/env.js", h.runtimeEnvScript)
	router.Get("/api/version", h.getVersion)
	router.Get("/healthz", h.healthz)

	return router
}
