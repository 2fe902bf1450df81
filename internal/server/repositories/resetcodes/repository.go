package resetcodes

import (
	"context"

	"github.com/Yashraj9595/mealmate/internal/server/models"
)

// Repository stores pending password-recovery codes, one per email.
// Replace on re-request; delete on successful reset.
type Repository interface {
	Upsert(ctx context.Context, code *models.ResetCode) error
	Find(ctx context.Context, email string) (*models.ResetCode, error)
	Delete(ctx context.Context, email string) error
}
