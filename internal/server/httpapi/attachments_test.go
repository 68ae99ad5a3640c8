package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/studynotes/internal/common"
	"github.com/dmitrijs2005/studynotes/internal/server/models"
	"github.com/dmitrijs2005/studynotes/internal/server/services"
)

func TestRequestUploadHandler(t *testing.T) {
	attachments := &fakeAttachments{uploadOut: &services.UploadTask{
		Attachment: &models.Attachment{ID: 1, QuestionID: 3, FileName: "notes.pdf"},
		UploadURL:  "http://presigned/put",
	}}
	srv := newTestServer(t, testDeps{attachments: attachments})

	req := httptest.NewRequest(http.MethodPost, "/api/questions/3/attachments", strings.NewReader(`{"file_name":"notes.pdf"}`))
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec := doRequest(t, srv, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
	}

	var resp uploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.UploadURL != "http://presigned/put" || resp.Attachment.FileName != "notes.pdf" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	// question outside the caller's subjects
	srv = newTestServer(t, testDeps{attachments: &fakeAttachments{uploadErr: common.ErrorForbidden}})
	req = httptest.NewRequest(http.MethodPost, "/api/questions/3/attachments", strings.NewReader(`{"file_name":"notes.pdf"}`))
	req.Header.Set("Authorization", bearerToken(t, 43))
	rec = doRequest(t, srv, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign question: status = %d, want 403", rec.Code)
	}
}

func TestListAttachmentsHandler(t *testing.T) {
	srv := newTestServer(t, testDeps{attachments: &fakeAttachments{
		listOut: []*models.Attachment{{ID: 1, QuestionID: 3, FileName: "notes.pdf"}},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/questions/3/attachments", nil)
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec := doRequest(t, srv, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAttachmentURLHandler(t *testing.T) {
	srv := newTestServer(t, testDeps{attachments: &fakeAttachments{urlOut: "http://presigned/get"}})

	req := httptest.NewRequest(http.MethodGet, "/api/attachments/1/url", nil)
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec := doRequest(t, srv, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp urlResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.URL != "http://presigned/get" {
		t.Fatalf("unexpected url: %q", resp.URL)
	}

	srv = newTestServer(t, testDeps{attachments: &fakeAttachments{urlErr: common.ErrorNotFound}})
	req = httptest.NewRequest(http.MethodGet, "/api/attachments/1/url", nil)
	req.Header.Set("Authorization", bearerToken(t, 43))
	rec = doRequest(t, srv, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign attachment: status = %d, want 404", rec.Code)
	}
}

func TestDeleteAttachmentHandler(t *testing.T) {
	srv := newTestServer(t, testDeps{attachments: &fakeAttachments{}})

	req := httptest.NewRequest(http.MethodDelete, "/api/attachments/1", nil)
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec := doRequest(t, srv, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
}
