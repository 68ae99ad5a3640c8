package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/studynotes/internal/common"
	"github.com/dmitrijs2005/studynotes/internal/server/models"
)

func TestListQuestions(t *testing.T) {
	questions := &fakeQuestions{listOut: []*models.Question{
		{ID: 1, SubjectID: 7, Title: "What is a goroutine?"},
	}}
	srv := newTestServer(t, testDeps{questions: questions})

	req := httptest.NewRequest(http.MethodGet, "/api/subjects/7/questions", nil)
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec := doRequest(t, srv, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var list []*models.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(list) != 1 || list[0].Title != "What is a goroutine?" {
		t.Fatalf("unexpected list: %+v", list)
	}

	// missing subject
	srv = newTestServer(t, testDeps{questions: &fakeQuestions{listErr: common.ErrorNotFound}})
	req = httptest.NewRequest(http.MethodGet, "/api/subjects/7/questions", nil)
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec = doRequest(t, srv, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing subject: status = %d, want 404", rec.Code)
	}
}

func TestCreateQuestion(t *testing.T) {
	questions := &fakeQuestions{createOut: &models.Question{ID: 1, SubjectID: 7, Title: "t"}}
	srv := newTestServer(t, testDeps{questions: questions})

	req := httptest.NewRequest(http.MethodPost, "/api/subjects/7/questions", strings.NewReader(`{"title":"t","answer":"a"}`))
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec := doRequest(t, srv, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}

	// subject owned by somebody else
	srv = newTestServer(t, testDeps{questions: &fakeQuestions{createErr: common.ErrorForbidden}})
	req = httptest.NewRequest(http.MethodPost, "/api/subjects/7/questions", strings.NewReader(`{"title":"t"}`))
	req.Header.Set("Authorization", bearerToken(t, 43))
	rec = doRequest(t, srv, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign subject: status = %d, want 403", rec.Code)
	}

	// blank title
	srv = newTestServer(t, testDeps{questions: &fakeQuestions{createErr: common.ErrorValidation}})
	req = httptest.NewRequest(http.MethodPost, "/api/subjects/7/questions", strings.NewReader(`{"title":""}`))
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec = doRequest(t, srv, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank title: status = %d, want 400", rec.Code)
	}
}

func TestGetQuestion(t *testing.T) {
	srv := newTestServer(t, testDeps{questions: &fakeQuestions{getOut: &models.Question{ID: 3, SubjectID: 7, Title: "t"}}})

	req := httptest.NewRequest(http.MethodGet, "/api/questions/3", nil)
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec := doRequest(t, srv, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	srv = newTestServer(t, testDeps{questions: &fakeQuestions{getErr: common.ErrorNotFound}})
	req = httptest.NewRequest(http.MethodGet, "/api/questions/3", nil)
	req.Header.Set("Authorization", bearerToken(t, 43))
	rec = doRequest(t, srv, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign question: status = %d, want 404", rec.Code)
	}
}

func TestUpdateQuestion(t *testing.T) {
	srv := newTestServer(t, testDeps{questions: &fakeQuestions{
		updateOut: &models.Question{ID: 3, SubjectID: 7, Title: "new", IsLearned: true},
	}})

	req := httptest.NewRequest(http.MethodPut, "/api/questions/3", strings.NewReader(`{"title":"new","answer":"a","is_learned":true}`))
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec := doRequest(t, srv, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var q models.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &q); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !q.IsLearned || q.Title != "new" {
		t.Fatalf("unexpected question: %+v", q)
	}
}

func TestSetLearned(t *testing.T) {
	questions := &fakeQuestions{}
	srv := newTestServer(t, testDeps{questions: questions})

	req := httptest.NewRequest(http.MethodPatch, "/api/questions/3/learned", strings.NewReader(`{"is_learned":true}`))
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec := doRequest(t, srv, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if !questions.lastLearned {
		t.Fatal("is_learned not passed through")
	}

	srv = newTestServer(t, testDeps{questions: &fakeQuestions{setLearnedErr: common.ErrorNotFound}})
	req = httptest.NewRequest(http.MethodPatch, "/api/questions/3/learned", strings.NewReader(`{"is_learned":true}`))
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec = doRequest(t, srv, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing question: status = %d, want 404", rec.Code)
	}
}

func TestDeleteQuestion(t *testing.T) {
	srv := newTestServer(t, testDeps{questions: &fakeQuestions{}})

	req := httptest.NewRequest(http.MethodDelete, "/api/questions/3", nil)
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec := doRequest(t, srv, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}

	srv = newTestServer(t, testDeps{questions: &fakeQuestions{deleteErr: common.ErrorNotFound}})
	req = httptest.NewRequest(http.MethodDelete, "/api/questions/3", nil)
	req.Header.Set("Authorization", bearerToken(t, 42))
	rec = doRequest(t, srv, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing question: status = %d, want 404", rec.Code)
	}
}
