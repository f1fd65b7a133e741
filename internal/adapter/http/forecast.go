package httpadapter

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"adsim/internal/core/simulation"
)

// handleForecast returns the seven-day outlook shown on the budget step.
// It needs only an amount and an optional bid strategy, so it works before
// a session exists.
func (h *Handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		h.writeError(w, r, fmt.Errorf("%w: amount must be a positive number", errBadRequest))
		return
	}
	h.writeJSON(w, http.StatusOK, simulation.Forecast(amount, q.Get("bid_strategy")))
}
