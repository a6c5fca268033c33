package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Post("/api/drafts/save", h.saveDraft)
	router.Get("/api/drafts/{draftID}", h.getDraft)

	// connectivity probe of the editor client
	router.Head("/api/health", h.health)
	router.Get("/api/health", h.health)

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
