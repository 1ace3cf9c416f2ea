package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rotisserie/eris"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

// transitionErrorResponse reports a rejected transition. Valid is always
// present; a terminal status yields an empty list.
type transitionErrorResponse struct {
	Error string                  `json:"error"`
	Valid []domain.ApprovalStatus `json:"valid_transitions"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps use case errors onto status codes. Anything not
// recognised is logged and reported as a generic internal error.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *port.InvalidTransitionError
	switch {
	case errors.As(err, &invalid):
		valid := invalid.Valid
		if valid == nil {
			valid = []domain.ApprovalStatus{}
		}
		writeJSON(w, http.StatusConflict, transitionErrorResponse{Error: invalid.Error(), Valid: valid})
	case errors.Is(err, port.ErrNotApproved), errors.Is(err, port.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, port.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, port.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// decodeJSON reads the request body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return eris.Wrap(port.ErrInvalidArgument, "invalid JSON body")
	}
	return nil
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, eris.Wrapf(port.ErrInvalidArgument, "invalid id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}
