package httpadapter

import (
	"net/http"

	"dreamtraffic/internal/core/domain"
)

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var c domain.Campaign
	if err := decodeJSON(r, &c); err != nil {
		h.writeError(w, r, err)
		return
	}
	c.ID = 0
	if err := h.svc.Creatives.CreateCampaign(r.Context(), &c); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Creatives.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleListCreatives(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list, err := h.svc.Creatives.ListCreatives(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// handleCreateCreative stores a new creative. Any status in the body is
// ignored; creatives always start as drafts.
func (h *Handler) handleCreateCreative(w http.ResponseWriter, r *http.Request) {
	var c domain.Creative
	if err := decodeJSON(r, &c); err != nil {
		h.writeError(w, r, err)
		return
	}
	c.ID = 0
	if err := h.svc.Creatives.CreateCreative(r.Context(), &c); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGetCreative(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Creatives.GetCreative(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
