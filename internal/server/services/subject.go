package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studynotes/internal/common"
	"github.com/dmitrijs2005/studynotes/internal/dbx"
	"github.com/dmitrijs2005/studynotes/internal/server/models"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/repomanager"
)

// SubjectService manages a user's subjects. Every operation is scoped to the
// owner: another user's subject behaves exactly like a missing one.
type SubjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewSubjectService constructs a SubjectService.
func NewSubjectService(db *sql.DB, m repomanager.RepositoryManager) *SubjectService {
	return &SubjectService{db: db, repomanager: m}
}

// Create adds a subject owned by ownerID. A blank name yields ErrorValidation.
func (s *SubjectService) Create(ctx context.Context, ownerID int64, name string) (*models.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: subject name must not be blank", common.ErrorValidation)
	}
	repo := s.repomanager.Subjects(s.db)
	subject, err := repo.Create(ctx, name, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error creating subject: %v", err)
	}
	return subject, nil
}

// List returns all subjects owned by ownerID. The result is never nil.
func (s *SubjectService) List(ctx context.Context, ownerID int64) ([]*models.Subject, error) {
	repo := s.repomanager.Subjects(s.db)
	list, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %v", err)
	}
	return list, nil
}

// Get returns the subject if it exists and belongs to ownerID,
// ErrorNotFound otherwise.
func (s *SubjectService) Get(ctx context.Context, ownerID int64, subjectID int64) (*models.Subject, error) {
	repo := s.repomanager.Subjects(s.db)
	return repo.GetByIDForOwner(ctx, subjectID, ownerID)
}

// Rename changes the subject's name. A blank name yields ErrorValidation; a
// subject that does not exist or belongs to somebody else yields ErrorNotFound.
func (s *SubjectService) Rename(ctx context.Context, ownerID int64, subjectID int64, name string) (*models.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: subject name must not be blank", common.ErrorValidation)
	}
	repo := s.repomanager.Subjects(s.db)
	updated, err := repo.UpdateName(ctx, subjectID, ownerID, name)
	if err != nil {
		return nil, fmt.Errorf("error renaming subject: %v", err)
	}
	if !updated {
		return nil, common.ErrorNotFound
	}
	return &models.Subject{ID: subjectID, Name: name, OwnerID: ownerID}, nil
}

// Delete removes the subject and all of its questions in a single transaction,
// so a concurrently inserted question cannot survive as an orphan. A subject
// that does not exist or belongs to somebody else yields ErrorNotFound.
func (s *SubjectService) Delete(ctx context.Context, ownerID int64, subjectID int64) error {
	return dbx.WithTx(ctx, s.db, dbx.RepeatableRead, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Questions(tx).DeleteAllForSubject(ctx, subjectID, ownerID); err != nil {
			return fmt.Errorf("error deleting questions: %v", err)
		}
		deleted, err := s.repomanager.Subjects(tx).Delete(ctx, subjectID, ownerID)
		if err != nil {
			return fmt.Errorf("error deleting subject: %v", err)
		}
		if !deleted {
			return common.ErrorNotFound
		}
		return nil
	})
}
