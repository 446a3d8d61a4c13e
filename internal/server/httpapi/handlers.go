package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/tafuta/internal/client/authapi"
	"github.com/dmitrijs2005/tafuta/internal/common"
	"github.com/dmitrijs2005/tafuta/internal/logging"
)

type handler struct {
	api    authapi.API
	logger logging.Logger
}

func newHandler(api authapi.API, logger logging.Logger) *handler {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &handler{api: api, logger: logger}
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	res, err := h.api.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeAuthError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	res, err := h.api.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeAuthError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, res)
}

func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.api.Logout(r.Context()); err != nil {
		h.writeJSON(w, http.StatusInternalServerError, authapi.ErrorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) decodeCredentials(w http.ResponseWriter, r *http.Request) (*authapi.CredentialsRequest, bool) {
	var req authapi.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, authapi.ErrorResponse{Error: "invalid request body"})
		return nil, false
	}
	return &req, true
}

// writeAuthError maps the service's error taxonomy onto HTTP statuses:
// invalid credentials -> 401, duplicate account -> 409, anything else -> 500.
func (h *handler) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrDuplicateAccount):
		status = http.StatusConflict
	default:
		h.logger.Error(r.Context(), "auth request failed", "error", err)
	}
	h.writeJSON(w, status, authapi.ErrorResponse{Error: err.Error()})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error(context.Background(), "failed to encode response", "error", err)
	}
}
