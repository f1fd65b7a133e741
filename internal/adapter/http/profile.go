package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adsim/internal/core/port"
)

type loginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.profiles.Login(r.Context(), req.Email, req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/profiles/"+p.ID)
	h.writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch port.ProfilePatch
	if err := decodeBody(r, &patch); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.profiles.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// handleLogout deletes the profile. Deleting an unknown profile succeeds.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.Logout(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
