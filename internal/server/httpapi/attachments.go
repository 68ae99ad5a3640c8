package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/studynotes/internal/server/models"
)

type uploadRequest struct {
	FileName string `json:"file_name"`
}

type uploadResponse struct {
	Attachment *models.Attachment `json:"attachment"`
	UploadURL  string             `json:"upload_url"`
}

type urlResponse struct {
	URL string `json:"url"`
}

func (s *HTTPServer) handleRequestUpload(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "missing token")
		return
	}

	questionID, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req uploadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	task, err := s.attachments.RequestUpload(r.Context(), userID, questionID, req.FileName)
	if err != nil {
		s.logger.Error(r.Context(), "Upload request failed", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{Attachment: task.Attachment, UploadURL: task.UploadURL})
}

func (s *HTTPServer) handleListAttachments(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "missing token")
		return
	}

	questionID, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	list, err := s.attachments.List(r.Context(), userID, questionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *HTTPServer) handleAttachmentURL(w http.ResponseWriter, r *http.Request) {
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

	url, err := s.attachments.GetURL(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, urlResponse{URL: url})
}

func (s *HTTPServer) handleDeleteAttachment(w http.ResponseWriter, r *http.Request) {
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

	if err := s.attachments.Delete(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
