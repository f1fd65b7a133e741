package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adsim/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign and profile use cases and a logger for structured
// logging. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	campaigns port.CampaignUseCase
	profiles  port.ProfileUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, profiles port.ProfileUseCase, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, profiles: profiles, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/objectives", h.handleObjectives)
			r.Get("/campaign-types", h.handleCampaignTypes)
			r.Get("/bid-strategies", h.handleBidStrategies)
			r.Get("/targeting", h.handleTargeting)
			r.Get("/calls-to-action", h.handleCallsToAction)
		})
		r.Get("/forecast", h.handleForecast)

		r.Post("/sessions", h.handleStartSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetSession)
			r.Put("/platform", h.handleSetPlatform)
			r.Put("/objective", h.handleSetObjective)
			r.Put("/campaign-type", h.handleSetCampaignType)
			r.Patch("/targeting", h.handleUpdateTargeting)
			r.Patch("/creative", h.handleUpdateCreative)
			r.Patch("/budget", h.handleUpdateBudget)
			r.Post("/next", h.handleNext)
			r.Post("/back", h.handleBack)
			r.Post("/reset", h.handleReset)
			r.Post("/simulate", h.handleSimulate)
		})

		r.Post("/profiles/login", h.handleLogin)
		r.Route("/profiles/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetProfile)
			r.Patch("/", h.handleUpdateProfile)
			r.Delete("/", h.handleLogout)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
