package httpadapter

import (
	"context"
	"net/http"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

type reviewRequest struct {
	Reviewer string `json:"reviewer"`
	Notes    string `json:"notes"`
}

type transitionRequest struct {
	To       domain.ApprovalStatus `json:"to"`
	Reviewer string                `json:"reviewer"`
	Notes    string                `json:"notes"`
}

type statusResponse struct {
	CreativeID int64                 `json:"creative_id"`
	Status     domain.ApprovalStatus `json:"status"`
}

type transitionsResponse struct {
	CreativeID int64                   `json:"creative_id"`
	Valid      []domain.ApprovalStatus `json:"valid_transitions"`
}

func (h *Handler) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	status, err := h.svc.Approval.GetStatus(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{CreativeID: id, Status: status})
}

func (h *Handler) handleGetTransitions(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	valid, err := h.svc.Approval.GetValidTransitions(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transitionsResponse{CreativeID: id, Valid: valid})
}

func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req transitionRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Approval.Transition(r.Context(), id, req.To, req.Reviewer, req.Notes)
	h.writeTransition(w, r, res, err)
}

// reviewAction adapts one of the convenience wrappers to a handler that
// reads reviewer and notes from the optional request body.
func (h *Handler) reviewAction(act func(ctx context.Context, id int64, reviewer, notes string) (*port.TransitionResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		var req reviewRequest
		if err = decodeJSON(r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
		res, err := act(r.Context(), id, req.Reviewer, req.Notes)
		h.writeTransition(w, r, res, err)
	}
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	h.reviewAction(func(ctx context.Context, id int64, reviewer, _ string) (*port.TransitionResult, error) {
		return h.svc.Approval.SubmitForReview(ctx, id, reviewer)
	})(w, r)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.reviewAction(h.svc.Approval.Approve)(w, r)
}

func (h *Handler) handleRequestRevision(w http.ResponseWriter, r *http.Request) {
	h.reviewAction(h.svc.Approval.RequestRevision)(w, r)
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	h.reviewAction(h.svc.Approval.Pause)(w, r)
}

func (h *Handler) handleArchive(w http.ResponseWriter, r *http.Request) {
	h.reviewAction(h.svc.Approval.Archive)(w, r)
}

func (h *Handler) handleActivate(w http.ResponseWriter, r *http.Request) {
	h.reviewAction(func(ctx context.Context, id int64, _, _ string) (*port.TransitionResult, error) {
		return h.svc.Approval.Activate(ctx, id)
	})(w, r)
}

func (h *Handler) handleAuditTrail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	events, err := h.svc.Approval.GetAuditTrail(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *Handler) writeTransition(w http.ResponseWriter, r *http.Request, res *port.TransitionResult, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
