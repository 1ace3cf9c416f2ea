package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dreamtraffic/internal/core/port"
)

// Services groups the use cases the HTTP adapter drives.
type Services struct {
	Creatives   port.CreativeUseCase
	Approval    port.ApprovalUseCase
	Tags        port.TagUseCase
	Supply      port.SupplyChainUseCase
	Trafficking port.TraffickingUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the use cases that execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/creatives", h.handleListCreatives)

		r.Post("/creatives", h.handleCreateCreative)
		r.Route("/creatives/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetCreative)

			r.Get("/status", h.handleGetStatus)
			r.Get("/transitions", h.handleGetTransitions)
			r.Post("/transitions", h.handleTransition)
			r.Post("/submit", h.handleSubmit)
			r.Post("/approve", h.handleApprove)
			r.Post("/revise", h.handleRequestRevision)
			r.Post("/activate", h.handleActivate)
			r.Post("/pause", h.handlePause)
			r.Post("/archive", h.handleArchive)
			r.Get("/audit", h.handleAuditTrail)

			r.Post("/vast", h.handleGenerateTag)

			r.Post("/traffic", h.handleTraffic)
			r.Get("/trafficking", h.handleListTrafficking)
			r.Post("/trafficking/refresh", h.handleRefreshTrafficking)
		})

		r.Get("/vast/inline/{id}", h.handleServeTag)
		r.Post("/vast/wrapper", h.handleGenerateWrapper)
		r.Get("/vendors", h.handleListVendors)

		r.Get("/supply/paths", h.handleListPaths)
		r.Post("/supply/paths", h.handleCreatePath)
		r.Get("/supply/paths/{id}/format", h.handleFormatPath)
		r.Get("/supply/compare", h.handleCompareDSPs)
		r.Get("/supply/map", h.handleSupplyMap)
		r.Get("/supply/ssps", h.handleListSSPs)
		r.Post("/exchange/route", h.handleRoute)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
