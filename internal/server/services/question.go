package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studynotes/internal/common"
	"github.com/dmitrijs2005/studynotes/internal/server/models"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/repomanager"
)

// QuestionService manages questions inside a user's subjects. Ownership is
// enforced in the repository layer through joins against the subjects table,
// so there is no separate check-then-act window.
type QuestionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewQuestionService constructs a QuestionService.
func NewQuestionService(db *sql.DB, m repomanager.RepositoryManager) *QuestionService {
	return &QuestionService{db: db, repomanager: m}
}

// Create adds a question to the subject. A blank title yields ErrorValidation;
// a subject that does not exist or belongs to somebody else yields
// ErrorForbidden.
func (s *QuestionService) Create(ctx context.Context, ownerID int64, subjectID int64, title, answer string, isLearned bool) (*models.Question, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: question title must not be blank", common.ErrorValidation)
	}
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("%w: question answer must not be blank", common.ErrorValidation)
	}
	repo := s.repomanager.Questions(s.db)
	question, err := repo.Create(ctx, subjectID, ownerID, title, answer, isLearned)
	if err != nil {
		return nil, err
	}
	return question, nil
}

// List returns all questions in the subject. A subject that does not exist or
// belongs to somebody else yields ErrorNotFound.
func (s *QuestionService) List(ctx context.Context, ownerID int64, subjectID int64) ([]*models.Question, error) {
	if _, err := s.repomanager.Subjects(s.db).GetByIDForOwner(ctx, subjectID, ownerID); err != nil {
		return nil, err
	}
	repo := s.repomanager.Questions(s.db)
	list, err := repo.ListBySubject(ctx, subjectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing questions: %v", err)
	}
	return list, nil
}

// Get returns the question if its subject belongs to ownerID,
// ErrorNotFound otherwise.
func (s *QuestionService) Get(ctx context.Context, ownerID int64, questionID int64) (*models.Question, error) {
	repo := s.repomanager.Questions(s.db)
	return repo.GetByIDForOwner(ctx, questionID, ownerID)
}

// Update replaces the question's title and answer, and optionally its learned
// flag (nil leaves it unchanged). A blank title yields ErrorValidation.
func (s *QuestionService) Update(ctx context.Context, ownerID int64, questionID int64, title, answer string, isLearned *bool) (*models.Question, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: question title must not be blank", common.ErrorValidation)
	}
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("%w: question answer must not be blank", common.ErrorValidation)
	}
	repo := s.repomanager.Questions(s.db)
	updated, err := repo.Update(ctx, questionID, ownerID, title, answer, isLearned)
	if err != nil {
		return nil, fmt.Errorf("error updating question: %v", err)
	}
	if !updated {
		return nil, common.ErrorNotFound
	}
	return repo.GetByIDForOwner(ctx, questionID, ownerID)
}

// SetLearned flips the question's learned flag.
func (s *QuestionService) SetLearned(ctx context.Context, ownerID int64, questionID int64, isLearned bool) error {
	repo := s.repomanager.Questions(s.db)
	updated, err := repo.SetLearned(ctx, questionID, ownerID, isLearned)
	if err != nil {
		return fmt.Errorf("error updating question: %v", err)
	}
	if !updated {
		return common.ErrorNotFound
	}
	return nil
}

// Delete removes the question. A question that does not exist or whose subject
// belongs to somebody else yields ErrorNotFound.
func (s *QuestionService) Delete(ctx context.Context, ownerID int64, questionID int64) error {
	repo := s.repomanager.Questions(s.db)
	deleted, err := repo.Delete(ctx, questionID, ownerID)
	if err != nil {
		return fmt.Errorf("error deleting question: %v", err)
	}
	if !deleted {
		return common.ErrorNotFound
	}
	return nil
}
