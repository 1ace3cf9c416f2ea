package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/rotisserie/eris"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

type routeRequest struct {
	DSP       string  `json:"dsp"`
	Placement string  `json:"placement_type"`
	BidCPM    float64 `json:"bid_cpm"`
}

type formatResponse struct {
	PathID  int64   `json:"path_id"`
	BaseCPM float64 `json:"base_cpm"`
	Text    string  `json:"text"`
}

// handleListPaths returns the fee breakdown of every stored supply path.
func (h *Handler) handleListPaths(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Supply.CalculateAllPaths(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if out == nil {
		out = []domain.FeeBreakdown{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreatePath(w http.ResponseWriter, r *http.Request) {
	var p domain.SupplyPath
	if err := decodeJSON(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	p.ID = 0
	if err := h.svc.Supply.CreateSupplyPath(r.Context(), &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// handleFormatPath renders a path at the optional cpm query parameter.
func (h *Handler) handleFormatPath(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var cpm float64
	if raw := r.URL.Query().Get("cpm"); raw != "" {
		if cpm, err = strconv.ParseFloat(raw, 64); err != nil {
			h.writeError(w, r, eris.Wrapf(port.ErrInvalidArgument, "invalid cpm %q", raw))
			return
		}
	}
	text, err := h.svc.Supply.FormatPath(r.Context(), id, cpm)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, formatResponse{PathID: id, BaseCPM: cpm, Text: text})
}

func (h *Handler) handleCompareDSPs(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Supply.CompareDSPs(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleSupplyMap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Supply.SupplyMap(r.Context()))
}

func (h *Handler) handleListSSPs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Supply.ListSSPs(r.Context()))
}

func (h *Handler) handleRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	out, err := h.svc.Supply.Route(r.Context(), domain.RouteRequest{
		DSP:       req.DSP,
		Placement: req.Placement,
		BidCPM:    req.BidCPM,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if out == nil {
		out = []domain.RouteResult{}
	}
	writeJSON(w, http.StatusOK, out)
}
