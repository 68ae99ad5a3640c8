package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/studynotes/internal/common"
	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps service errors onto HTTP statuses. Anything unrecognized is
// reported as a generic 500 so internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorInvalidCredentials):
		writeErrorMessage(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrRefreshTokenExpired):
		writeErrorMessage(w, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, common.ErrorForbidden):
		writeErrorMessage(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, common.ErrorNotFound):
		writeErrorMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		writeErrorMessage(w, http.StatusConflict, "already exists")
	default:
		writeErrorMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.ErrorValidation
	}
	return nil
}

// idParam parses the {id} URL parameter as int64.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.ErrorNotFound
	}
	return id, nil
}
