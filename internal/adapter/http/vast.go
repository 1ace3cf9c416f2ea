package httpadapter

import (
	"net/http"

	"github.com/rotisserie/eris"

	"dreamtraffic/internal/core/port"
)

type tagRequest struct {
	// Vendors selects measurement vendors by key. Omitted selects all; an
	// empty list renders the tag without verification.
	Vendors []string `json:"vendors"`
}

type wrapperRequest struct {
	VastAdTagURI string   `json:"vast_ad_tag_uri"`
	Vendors      []string `json:"vendors"`
}

func (h *Handler) handleGenerateTag(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req tagRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Tags.GenerateCreativeTag(r.Context(), id, req.Vendors)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// handleServeTag returns the cached InLine document so players can load a
// creative's tag URL directly.
func (h *Handler) handleServeTag(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	xml, err := h.svc.Tags.GetCreativeTag(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeXML(w, xml)
}

func (h *Handler) handleGenerateWrapper(w http.ResponseWriter, r *http.Request) {
	var req wrapperRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.VastAdTagURI == "" {
		h.writeError(w, r, eris.Wrap(port.ErrInvalidArgument, "vast_ad_tag_uri is required"))
		return
	}
	xml, err := h.svc.Tags.GenerateWrapper(r.Context(), req.VastAdTagURI, req.Vendors)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeXML(w, xml)
}

func (h *Handler) handleListVendors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Tags.ListVendors(r.Context()))
}

func writeXML(w http.ResponseWriter, doc string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
