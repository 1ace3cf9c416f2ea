package httpadapter

import (
	"net/http"

	"dreamtraffic/internal/core/domain"
)

type trafficRequest struct {
	DSPs []string `json:"dsps"`
}

func (h *Handler) handleTraffic(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req trafficRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	records, err := h.svc.Trafficking.TrafficCreative(r.Context(), id, req.DSPs)
	h.writeRecords(w, r, http.StatusCreated, records, err)
}

func (h *Handler) handleListTrafficking(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	records, err := h.svc.Trafficking.ListRecords(r.Context(), id)
	h.writeRecords(w, r, http.StatusOK, records, err)
}

func (h *Handler) handleRefreshTrafficking(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	records, err := h.svc.Trafficking.RefreshAuditStatus(r.Context(), id)
	h.writeRecords(w, r, http.StatusOK, records, err)
}

func (h *Handler) writeRecords(w http.ResponseWriter, r *http.Request, status int, records []domain.TraffickingRecord, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, status, records)
}
