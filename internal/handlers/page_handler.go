package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/top-rated-catalog/internal/catalog"
	"github.com/Lixing-Zhang/top-rated-catalog/internal/models"
	"github.com/Lixing-Zhang/top-rated-catalog/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// pageRenderer writes a catalog page as HTML
type pageRenderer interface {
	Render(w io.Writer, page *catalog.Page) error
}

// PageHandler serves the top-rated products page
type PageHandler struct {
	service  *service.ProductService
	renderer pageRenderer
	logger   *slog.Logger
	renders  *prometheus.CounterVec
}

// NewPageHandler creates a page handler and registers its render counter with reg
func NewPageHandler(service *service.ProductService, renderer pageRenderer, logger *slog.Logger, reg prometheus.Registerer) *PageHandler {
	renders := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_page_renders_total",
			Help: "Total number of catalog page renders by selected category",
		},
		[]string{"category"},
	)
	reg.MustRegister(renders)

	return &PageHandler{
		service:  service,
		renderer: renderer,
		logger:   logger,
		renders:  renders,
	}
}

// ServePage handles GET / and GET /top-rated
// The category query parameter is the selected filter button.
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	selection := selectionFromQuery(r)

	page, err := h.service.NewPage(r.Context(), selection)
	if err != nil {
		h.logger.Error("failed to build catalog page", "category", selection, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, page); err != nil {
		h.logger.Error("failed to render catalog page", "category", selection, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.renders.WithLabelValues(metricLabel(selection)).Inc()
}

// StructuredData handles GET /api/structured-data
func (h *PageHandler) StructuredData(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.NewPage(r.Context(), models.CategoryAll)
	if err != nil {
		h.logger.Error("failed to build catalog page", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	data, err := page.StructuredData().JSON()
	if err != nil {
		h.logger.Error("failed to encode structured data", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	w.Header().Set("Content-Type", "application/ld+json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write structured data", "error", err)
	}
}

// metricLabel folds unknown selections into one label value
func metricLabel(selection models.CategoryID) string {
	switch selection {
	case models.CategoryAll, models.CategorySheets, models.CategorySleepwear, models.CategoryBlankets:
		return string(selection)
	default:
		return "unknown"
	}
}
