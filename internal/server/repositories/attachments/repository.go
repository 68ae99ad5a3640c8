package attachments

import (
	"context"

	"github.com/dmitrijs2005/studynotes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, questionID int64, ownerID int64, fileName, storageKey string) (*models.Attachment, error)
	ListByQuestion(ctx context.Context, questionID int64, ownerID int64) ([]*models.Attachment, error)
	GetByIDForOwner(ctx context.Context, attachmentID int64, ownerID int64) (*models.Attachment, error)
	Delete(ctx context.Context, attachmentID int64, ownerID int64) (bool, error)
}
