package users

import (
	"context"

	"github.com/dmitrijs2005/studynotes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, email string, passwordHash string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
