package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/smartlead-bridge/internal/infra/http/handlers"
	metrics "github.com/xavierca1/smartlead-bridge/internal/infra/http/middleware"
)

type routeHandlers struct {
	Health   *handlers.HealthHandler
	Leads    *handlers.LeadHandler
	Campaign *handlers.CampaignHandler
	Settings *handlers.SettingsHandler
}

func newRouter(h routeHandlers, allowedOrigins []string, enrollPerMinute int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", handlers.APIKeyHeader},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/campaigns", h.Campaign.List)
	r.With(metrics.NewPerClientLimiter(enrollPerMinute).Handler).
		Post("/campaigns/{id}/leads", h.Leads.AddToCampaign)
	r.Get("/leads", h.Leads.GetLead)

	r.Get("/settings", h.Settings.Get)
	r.Put("/settings/api-key", h.Settings.SaveAPIKey)

	return r
}
