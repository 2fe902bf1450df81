package messes

import (
	"context"

	"github.com/Yashraj9595/mealmate/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Mess, error)
	GetByID(ctx context.Context, id string) (*models.Mess, error)
	GetByOwner(ctx context.Context, ownerID string) (*models.Mess, error)
	Count(ctx context.Context) (int, error)
	SetImageKey(ctx context.Context, messID, key string) error

	Menu(ctx context.Context, messID string) ([]models.MenuItem, error)
	Plans(ctx context.Context, messID string) ([]models.Plan, error)
	Announcements(ctx context.Context, messID string) ([]models.Announcement, error)

	Feedbacks(ctx context.Context, messID string) ([]models.Feedback, error)
	CreateFeedback(ctx context.Context, fb *models.Feedback) error

	Subscribe(ctx context.Context, sub *models.Subscription) error
	SubscriptionByUser(ctx context.Context, userID string) (*models.Subscription, error)
	CountSubscribers(ctx context.Context, messID string) (int, error)
}
