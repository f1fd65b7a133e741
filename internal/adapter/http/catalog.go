package httpadapter

import (
	"fmt"
	"net/http"

	"adsim/internal/core/catalog"
	"adsim/internal/core/domain"
)

func (h *Handler) handleObjectives(w http.ResponseWriter, r *http.Request) {
	p, err := platformParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, catalog.Objectives(p))
}

// handleCampaignTypes lists the types for a platform and objective. An
// empty objective yields an empty list rather than an error, matching
// the wizard's requirement that the objective is chosen first.
func (h *Handler) handleCampaignTypes(w http.ResponseWriter, r *http.Request) {
	p, err := platformParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNilOptions(catalog.CampaignTypes(p, r.URL.Query().Get("objective"))))
}

func (h *Handler) handleBidStrategies(w http.ResponseWriter, r *http.Request) {
	p, err := platformParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNilOptions(catalog.BidStrategies(p, r.URL.Query().Get("objective"))))
}

func (h *Handler) handleTargeting(w http.ResponseWriter, r *http.Request) {
	p, err := platformParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, catalog.Targeting(p))
}

func (h *Handler) handleCallsToAction(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, catalog.CallsToAction())
}

func platformParam(r *http.Request) (domain.Platform, error) {
	p := domain.Platform(r.URL.Query().Get("platform"))
	if !p.Valid() {
		return "", fmt.Errorf("%w: platform must be %q or %q", errBadRequest, domain.PlatformGoogle, domain.PlatformMeta)
	}
	return p, nil
}

func nonNilOptions(opts []catalog.Option) []catalog.Option {
	if opts == nil {
		return []catalog.Option{}
	}
	return opts
}
