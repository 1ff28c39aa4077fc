package httpadapter

import (
	"net/http"

	"adpilot/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"log/slog"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a Service to execute business logic and a logger for structured
// logging. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	svc      port.CampaignUseCase
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// Service implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger, validate: validator.New()}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCampaignSubmit)
		r.Get("/campaigns", h.handleCampaignList)
		r.Get("/campaigns/{campaignID}/insights", h.handleCampaignInsights)
		r.Get("/promotions", h.handlePromotionList)
		r.Get("/promotions/{adSetID}/ads", h.handleAdList)
		r.Get("/pages", h.handlePageList)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
