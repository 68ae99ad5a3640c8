// Package httpapi exposes the study-notes service over HTTP/JSON using chi.
// Handlers translate between request payloads and the services layer; all
// authorization decisions live below, in services and repositories.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/studynotes/internal/logging"
	"github.com/dmitrijs2005/studynotes/internal/server/models"
	"github.com/dmitrijs2005/studynotes/internal/server/services"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// UserProvider covers authentication operations the API needs.
type UserProvider interface {
	Register(ctx context.Context, email string, password string) (*models.User, error)
	Login(ctx context.Context, email string, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// SubjectProvider covers subject CRUD scoped to the authenticated owner.
type SubjectProvider interface {
	Create(ctx context.Context, ownerID int64, name string) (*models.Subject, error)
	List(ctx context.Context, ownerID int64) ([]*models.Subject, error)
	Get(ctx context.Context, ownerID int64, subjectID int64) (*models.Subject, error)
	Rename(ctx context.Context, ownerID int64, subjectID int64, name string) (*models.Subject, error)
	Delete(ctx context.Context, ownerID int64, subjectID int64) error
}

// QuestionProvider covers question CRUD scoped to the authenticated owner.
type QuestionProvider interface {
	Create(ctx context.Context, ownerID int64, subjectID int64, title, answer string, isLearned bool) (*models.Question, error)
	List(ctx context.Context, ownerID int64, subjectID int64) ([]*models.Question, error)
	Get(ctx context.Context, ownerID int64, questionID int64) (*models.Question, error)
	Update(ctx context.Context, ownerID int64, questionID int64, title, answer string, isLearned *bool) (*models.Question, error)
	SetLearned(ctx context.Context, ownerID int64, questionID int64, isLearned bool) error
	Delete(ctx context.Context, ownerID int64, questionID int64) error
}

// AttachmentProvider covers attachment metadata plus presigned URL issuance.
type AttachmentProvider interface {
	RequestUpload(ctx context.Context, ownerID int64, questionID int64, fileName string) (*services.UploadTask, error)
	List(ctx context.Context, ownerID int64, questionID int64) ([]*models.Attachment, error)
	GetURL(ctx context.Context, ownerID int64, attachmentID int64) (string, error)
	Delete(ctx context.Context, ownerID int64, attachmentID int64) error
}

// HTTPServer serves the REST API.
type HTTPServer struct {
	address     string
	logger      logging.Logger
	users       UserProvider
	subjects    SubjectProvider
	questions   QuestionProvider
	attachments AttachmentProvider
	jwtSecret   []byte
}

// NewHTTPServer constructs an HTTPServer.
func NewHTTPServer(a string, l logging.Logger, us UserProvider, ss SubjectProvider,
	qs QuestionProvider, as AttachmentProvider, secretKey string) (*HTTPServer, error) {
	return &HTTPServer{
		address:     a,
		logger:      l.With("module", "http_server"),
		users:       us,
		subjects:    ss,
		questions:   qs,
		attachments: as,
		jwtSecret:   []byte(secretKey),
	}, nil
}

// Router assembles the chi routing tree. Public auth endpoints are open;
// everything else requires a Bearer access token.
func (s *HTTPServer) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Post("/api/auth/register", s.handleRegister)
	r.Post("/api/auth/login", s.handleLogin)
	r.Post("/api/auth/refresh", s.handleRefresh)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Get("/api/subjects", s.handleListSubjects)
		r.Post("/api/subjects", s.handleCreateSubject)
		r.Get("/api/subjects/{id}", s.handleGetSubject)
		r.Put("/api/subjects/{id}", s.handleRenameSubject)
		r.Delete("/api/subjects/{id}", s.handleDeleteSubject)

		r.Get("/api/subjects/{id}/questions", s.handleListQuestions)
		r.Post("/api/subjects/{id}/questions", s.handleCreateQuestion)
		r.Get("/api/questions/{id}", s.handleGetQuestion)
		r.Put("/api/questions/{id}", s.handleUpdateQuestion)
		r.Patch("/api/questions/{id}/learned", s.handleSetLearned)
		r.Delete("/api/questions/{id}", s.handleDeleteQuestion)

		r.Post("/api/questions/{id}/attachments", s.handleRequestUpload)
		r.Get("/api/questions/{id}/attachments", s.handleListAttachments)
		r.Get("/api/attachments/{id}/url", s.handleAttachmentURL)
		r.Delete("/api/attachments/{id}", s.handleDeleteAttachment)
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "Shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
