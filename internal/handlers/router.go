package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/top-rated-catalog/internal/config"
	"github.com/Lixing-Zhang/top-rated-catalog/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps bundles everything the router serves
type RouterDeps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Health   *HealthHandler
	Products *ProductHandler
	Page     *PageHandler
}

// NewRouter wires middleware and routes
func NewRouter(deps RouterDeps) http.Handler {
	metrics := middleware.NewMetrics(deps.Registry)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(chimiddleware.Compress(5, "text/html", "application/json", "application/ld+json"))
	r.Use(metrics.Handler)

	r.Get("/health", deps.Health.ServeHTTP)

	r.With(middleware.APIKeyAuth(deps.Config.Metrics)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry}))

	// Catalog page
	r.Get("/", deps.Page.ServePage)
	r.Get("/top-rated", deps.Page.ServePage)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.Config.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))

		r.Get("/products", deps.Products.ListProducts)
		r.Get("/products/{productId}", deps.Products.GetProduct)
		r.Get("/categories", deps.Products.ListCategories)
		r.Get("/structured-data", deps.Page.StructuredData)
	})

	return r
}
