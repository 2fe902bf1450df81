package users

import (
	"context"

	"github.com/Yashraj9595/mealmate/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, name, address *string) (*models.User, error)
	UpdatePassword(ctx context.Context, email string, passwordHash []byte) error
	Count(ctx context.Context) (int, error)
}
