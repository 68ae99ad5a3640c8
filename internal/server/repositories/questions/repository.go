package questions

import (
	"context"

	"github.com/dmitrijs2005/studynotes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, subjectID int64, ownerID int64, title, answer string, isLearned bool) (*models.Question, error)
	ListBySubject(ctx context.Context, subjectID int64, ownerID int64) ([]*models.Question, error)
	GetByIDForOwner(ctx context.Context, questionID int64, ownerID int64) (*models.Question, error)
	Update(ctx context.Context, questionID int64, ownerID int64, title, answer string, isLearned *bool) (bool, error)
	SetLearned(ctx context.Context, questionID int64, ownerID int64, isLearned bool) (bool, error)
	Delete(ctx context.Context, questionID int64, ownerID int64) (bool, error)
	DeleteAllForSubject(ctx context.Context, subjectID int64, ownerID int64) (int64, error)
}
