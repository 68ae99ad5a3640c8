package subjects

import (
	"context"

	"github.com/dmitrijs2005/studynotes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, name string, ownerID int64) (*models.Subject, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Subject, error)
	GetByIDForOwner(ctx context.Context, subjectID int64, ownerID int64) (*models.Subject, error)
	UpdateName(ctx context.Context, subjectID int64, ownerID int64, name string) (bool, error)
	Delete(ctx context.Context, subjectID int64, ownerID int64) (bool, error)
}
