package httpadapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adsim/internal/core/domain"
)

// streamEvent is one line of the NDJSON simulation stream.
type streamEvent struct {
	Type    string         `json:"type"`
	Percent int            `json:"percent,omitempty"`
	Report  *domain.Report `json:"report,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// handleSimulate runs the simulation for a session at the results step.
// With ?stream=true the response is NDJSON: one progress event per tick
// followed by a report event, or an error event if the run fails after
// streaming began. ?seed= replays a previous run.
func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query()

	var seed *int64
	if raw := q.Get("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: seed must be an integer", errBadRequest))
			return
		}
		seed = &v
	}

	stream, _ := strconv.ParseBool(q.Get("stream"))
	if !stream {
		report, err := h.campaigns.Simulate(r.Context(), id, seed, nil)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, report)
		return
	}

	rc := http.NewResponseController(w)
	enc := json.NewEncoder(w)
	started := false
	emit := func(ev streamEvent) {
		if !started {
			w.Header().Set("Content-Type", "application/x-ndjson")
			w.Header().Set("Cache-Control", "no-cache")
			w.WriteHeader(http.StatusOK)
			started = true
		}
		if err := enc.Encode(ev); err != nil {
			h.logger.Debug("stream write error", slog.Any("error", err))
			return
		}
		if err := rc.Flush(); err != nil {
			h.logger.Debug("stream flush error", slog.Any("error", err))
		}
	}

	report, err := h.campaigns.Simulate(r.Context(), id, seed, func(percent int) {
		emit(streamEvent{Type: "progress", Percent: percent})
	})
	if err != nil {
		if !started {
			h.writeError(w, r, err)
			return
		}
		if statusFor(err) == http.StatusInternalServerError {
			h.logger.Error("simulation stream failed", slog.String("session", id), slog.Any("error", err))
		}
		emit(streamEvent{Type: "error", Error: err.Error()})
		return
	}
	emit(streamEvent{Type: "report", Report: report})
}
