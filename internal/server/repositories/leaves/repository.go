package leaves

import (
	"context"

	"github.com/Yashraj9595/mealmate/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, req *models.LeaveRequest) (*models.LeaveRequest, error)
	ListByUser(ctx context.Context, userID string) ([]models.LeaveRequest, error)
	CountUpcoming(ctx context.Context, userID string) (int, error)
}
