package handlers

import (
	"log/slog"
	"net/http"

	"github.com/inventrack/inventory-service/internal/utils/response"
)

// Stats serves the dashboard aggregates: product count, summed quantities,
// distinct categories and total inventory value.
func (h *ProductHandler) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		stats, err := h.productService.Stats(r.Context())

		if err != nil {
			slog.Error("Failed to compute inventory stats", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, stats)

	}
}
