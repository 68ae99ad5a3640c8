package httpapi

import (
	"net/http"
)

type subjectRequest struct {
	Name string `json:"name"`
}

func (s *HTTPServer) handleListSubjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "missing token")
		return
	}

	list, err := s.subjects.List(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), "Listing subjects failed", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *HTTPServer) handleCreateSubject(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "missing token")
		return
	}

	var req subjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	subject, err := s.subjects.Create(r.Context(), userID, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, subject)
}

func (s *HTTPServer) handleGetSubject(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "missing token")
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	subject, err := s.subjects.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subject)
}

func (s *HTTPServer) handleRenameSubject(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "missing token")
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req subjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	subject, err := s.subjects.Rename(r.Context(), userID, id, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subject)
}

func (s *HTTPServer) handleDeleteSubject(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "missing token")
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.subjects.Delete(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
