package httpadapter

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adsim/internal/core/domain"
	"adsim/internal/core/wizard"
)

// sessionView is the session as the wizard UI renders it: the stored
// snapshot plus the derived progress bar and the open requirements of the
// current step.
type sessionView struct {
	*domain.Session
	StepName string   `json:"step_name"`
	Progress int      `json:"progress"`
	Missing  []string `json:"missing"`
}

func newSessionView(s *domain.Session) sessionView {
	st := wizard.FromSession(s)
	missing := st.Missing()
	if missing == nil {
		missing = []string{}
	}
	return sessionView{
		Session:  s,
		StepName: st.Step.String(),
		Progress: st.Progress(),
		Missing:  missing,
	}
}

type startSessionRequest struct {
	OwnerID string `json:"owner_id"`
}

// handleStartSession creates a session. The body is optional; when it
// names an owner, the owner's profile must exist.
func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		h.writeError(w, r, err)
		return
	}
	if req.OwnerID != "" {
		if _, err := h.profiles.Get(r.Context(), req.OwnerID); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	s, err := h.campaigns.StartSession(r.Context(), req.OwnerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/sessions/"+s.ID)
	h.writeJSON(w, http.StatusCreated, newSessionView(s))
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	h.respondSession(w, r)(h.campaigns.GetSession(r.Context(), chi.URLParam(r, "id")))
}

type platformRequest struct {
	Platform domain.Platform `json:"platform"`
}

func (h *Handler) handleSetPlatform(w http.ResponseWriter, r *http.Request) {
	var req platformRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondSession(w, r)(h.campaigns.SetPlatform(r.Context(), chi.URLParam(r, "id"), req.Platform))
}

type objectiveRequest struct {
	Objective string `json:"objective"`
}

func (h *Handler) handleSetObjective(w http.ResponseWriter, r *http.Request) {
	var req objectiveRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondSession(w, r)(h.campaigns.SetObjective(r.Context(), chi.URLParam(r, "id"), req.Objective))
}

type campaignTypeRequest struct {
	CampaignType string `json:"campaign_type"`
}

func (h *Handler) handleSetCampaignType(w http.ResponseWriter, r *http.Request) {
	var req campaignTypeRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondSession(w, r)(h.campaigns.SetCampaignType(r.Context(), chi.URLParam(r, "id"), req.CampaignType))
}

func (h *Handler) handleUpdateTargeting(w http.ResponseWriter, r *http.Request) {
	var patch wizard.TargetingPatch
	if err := decodeBody(r, &patch); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondSession(w, r)(h.campaigns.UpdateTargeting(r.Context(), chi.URLParam(r, "id"), patch))
}

func (h *Handler) handleUpdateCreative(w http.ResponseWriter, r *http.Request) {
	var patch wizard.CreativePatch
	if err := decodeBody(r, &patch); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondSession(w, r)(h.campaigns.UpdateCreative(r.Context(), chi.URLParam(r, "id"), patch))
}

func (h *Handler) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	var patch wizard.BudgetPatch
	if err := decodeBody(r, &patch); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondSession(w, r)(h.campaigns.UpdateBudget(r.Context(), chi.URLParam(r, "id"), patch))
}

func (h *Handler) handleNext(w http.ResponseWriter, r *http.Request) {
	h.respondSession(w, r)(h.campaigns.Next(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) handleBack(w http.ResponseWriter, r *http.Request) {
	h.respondSession(w, r)(h.campaigns.Back(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	h.respondSession(w, r)(h.campaigns.Reset(r.Context(), chi.URLParam(r, "id")))
}

// respondSession returns a writer for the common (session, error) result
// of the wizard endpoints.
func (h *Handler) respondSession(w http.ResponseWriter, r *http.Request) func(*domain.Session, error) {
	return func(s *domain.Session, err error) {
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, newSessionView(s))
	}
}
