package services

import (
	"context"
	"errors"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/server/models"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/repomanager"
)

// Dashboard is the role-dependent summary served by GET /dashboard.
type Dashboard struct {
	Balance          float64
	ActivePlan       *models.Plan
	PendingBills     int
	UpcomingLeaves   int
	Announcements    []models.Announcement
	TotalSubscribers int
	TotalUsers       int
	TotalMesses      int
}

type DashboardService struct {
	repomanager repomanager.RepositoryManager
}

func NewDashboardService(m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{repomanager: m}
}

// Get assembles the summary for the caller's role. Missing optional pieces
// (no subscription, no plans) leave their fields zero-valued rather than
// failing the whole dashboard.
func (s *DashboardService) Get(ctx context.Context, user *models.User) (*Dashboard, error) {
	switch user.Role {
	case models.RoleAdmin:
		return s.adminDashboard(ctx)
	case models.RoleMessOwner:
		return s.ownerDashboard(ctx, user.ID)
	default:
		return s.userDashboard(ctx, user)
	}
}

func (s *DashboardService) adminDashboard(ctx context.Context) (*Dashboard, error) {
	totalUsers, err := s.repomanager.Users().Count(ctx)
	if err != nil {
		return nil, err
	}
	totalMesses, err := s.repomanager.Messes().Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Dashboard{TotalUsers: totalUsers, TotalMesses: totalMesses}, nil
}

func (s *DashboardService) ownerDashboard(ctx context.Context, ownerID string) (*Dashboard, error) {
	mess, err := s.repomanager.Messes().GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &Dashboard{}, nil
		}
		return nil, err
	}

	subscribers, err := s.repomanager.Messes().CountSubscribers(ctx, mess.ID)
	if err != nil {
		return nil, err
	}

	announcements, err := s.repomanager.Messes().Announcements(ctx, mess.ID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{TotalSubscribers: subscribers, Announcements: announcements}, nil
}

func (s *DashboardService) userDashboard(ctx context.Context, user *models.User) (*Dashboard, error) {
	d := &Dashboard{Balance: user.Balance}

	pending, err := s.repomanager.Billing().PendingBillsCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	d.PendingBills = pending

	upcoming, err := s.repomanager.Leaves().CountUpcoming(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	d.UpcomingLeaves = upcoming

	sub, err := s.repomanager.Messes().SubscriptionByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return d, nil
		}
		return nil, err
	}

	announcements, err := s.repomanager.Messes().Announcements(ctx, sub.MessID)
	if err != nil {
		return nil, err
	}
	d.Announcements = announcements

	if sub.PlanID != "" {
		plans, err := s.repomanager.Messes().Plans(ctx, sub.MessID)
		if err != nil {
			return nil, err
		}
		for i := range plans {
			if plans[i].ID == sub.PlanID {
				d.ActivePlan = &plans[i]
				break
			}
		}
	}

	return d, nil
}
