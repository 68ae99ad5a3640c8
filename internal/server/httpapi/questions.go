package httpapi

import (
	"net/http"
)

type questionRequest struct {
	Title     string `json:"title"`
	Answer    string `json:"answer"`
	IsLearned *bool  `json:"is_learned"`
}

type learnedRequest struct {
	IsLearned bool `json:"is_learned"`
}

func (s *HTTPServer) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "missing token")
		return
	}

	subjectID, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	list, err := s.questions.List(r.Context(), userID, subjectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *HTTPServer) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "missing token")
		return
	}

	subjectID, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req questionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	isLearned := req.IsLearned != nil && *req.IsLearned
	question, err := s.questions.Create(r.Context(), userID, subjectID, req.Title, req.Answer, isLearned)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, question)
}

func (s *HTTPServer) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
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

	question, err := s.questions.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

func (s *HTTPServer) handleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
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

	var req questionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	question, err := s.questions.Update(r.Context(), userID, id, req.Title, req.Answer, req.IsLearned)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

func (s *HTTPServer) handleSetLearned(w http.ResponseWriter, r *http.Request) {
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

	var req learnedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.questions.SetLearned(r.Context(), userID, id, req.IsLearned); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
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

	if err := s.questions.Delete(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
