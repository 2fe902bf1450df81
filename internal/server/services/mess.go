package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/server/models"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/repomanager"
)

type MessService struct {
	repomanager repomanager.RepositoryManager
}

func NewMessService(m repomanager.RepositoryManager) *MessService {
	return &MessService{repomanager: m}
}

func (s *MessService) List(ctx context.Context) ([]models.Mess, error) {
	return s.repomanager.Messes().List(ctx)
}

func (s *MessService) Menu(ctx context.Context, messID string) ([]models.MenuItem, error) {
	if _, err := s.repomanager.Messes().GetByID(ctx, messID); err != nil {
		return nil, err
	}
	return s.repomanager.Messes().Menu(ctx, messID)
}

// Subscribe links the user to a mess, replacing any previous subscription.
func (s *MessService) Subscribe(ctx context.Context, userID, messID, planID string) (*models.Subscription, error) {
	if _, err := s.repomanager.Messes().GetByID(ctx, messID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: mess not found", common.ErrorValidation)
		}
		return nil, err
	}

	sub := &models.Subscription{UserID: userID, MessID: messID, PlanID: planID}
	if err := s.repomanager.Messes().Subscribe(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// subscribedMess resolves the mess the user is currently subscribed to.
func (s *MessService) subscribedMess(ctx context.Context, userID string) (string, error) {
	sub, err := s.repomanager.Messes().SubscriptionByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", fmt.Errorf("%w: no active subscription", common.ErrorValidation)
		}
		return "", err
	}
	return sub.MessID, nil
}

// Plans lists the subscription plans of the caller's mess.
func (s *MessService) Plans(ctx context.Context, userID string) ([]models.Plan, error) {
	messID, err := s.subscribedMess(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Messes().Plans(ctx, messID)
}

func (s *MessService) Announcements(ctx context.Context, userID string) ([]models.Announcement, error) {
	messID, err := s.subscribedMess(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Messes().Announcements(ctx, messID)
}

func (s *MessService) Feedbacks(ctx context.Context, userID string) ([]models.Feedback, error) {
	messID, err := s.subscribedMess(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Messes().Feedbacks(ctx, messID)
}

func (s *MessService) SubmitFeedback(ctx context.Context, userID string, rating float64, content string) (*models.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", common.ErrorValidation)
	}

	messID, err := s.subscribedMess(ctx, userID)
	if err != nil {
		return nil, err
	}

	fb := &models.Feedback{MessID: messID, UserID: userID, Rating: rating, Content: content}
	if err := s.repomanager.Messes().CreateFeedback(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// OwnedMess resolves the mess owned by the given mess owner.
func (s *MessService) OwnedMess(ctx context.Context, ownerID string) (*models.Mess, error) {
	return s.repomanager.Messes().GetByOwner(ctx, ownerID)
}

// SetPhoto records the storage key of a freshly uploaded mess photo.
func (s *MessService) SetPhoto(ctx context.Context, ownerID, key string) error {
	mess, err := s.repomanager.Messes().GetByOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	return s.repomanager.Messes().SetImageKey(ctx, mess.ID, key)
}
