package handlers

import (
	"net/http"
	"strconv"
)

func (h *Handler) SalesReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.Sales()
	if err != nil {
		h.Log.WithError(err).Error("failed to build sales report")
		http.Error(w, "failed to build sales report", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) FavoriteProducts(w http.ResponseWriter, r *http.Request) {
	limit := 4
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	favorites, err := h.Reports.Favorites(limit)
	if err != nil {
		h.Log.WithError(err).Error("failed to rank favorites")
		http.Error(w, "failed to rank favorites", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (h *Handler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.Reports.History()
	if err != nil {
		h.Log.WithError(err).Error("failed to build order history")
		http.Error(w, "failed to build order history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
