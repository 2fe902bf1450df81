package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/server/models"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/repomanager"
)

type LeaveService struct {
	repomanager repomanager.RepositoryManager
}

func NewLeaveService(m repomanager.RepositoryManager) *LeaveService {
	return &LeaveService{repomanager: m}
}

const dateLayout = "2006-01-02"

// Submit files an absence request after validating the type and date range.
func (s *LeaveService) Submit(ctx context.Context, userID, kind, reason, startDate, endDate string) (*models.LeaveRequest, error) {
	if kind != "mess" && kind != "hostel" {
		return nil, fmt.Errorf("%w: leave type must be mess or hostel", common.ErrorValidation)
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", common.ErrorValidation)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date", common.ErrorValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", common.ErrorValidation)
	}

	return s.repomanager.Leaves().Create(ctx, &models.LeaveRequest{
		UserID:    userID,
		Type:      kind,
		Reason:    reason,
		StartDate: startDate,
		EndDate:   endDate,
	})
}

func (s *LeaveService) List(ctx context.Context, userID string) ([]models.LeaveRequest, error) {
	return s.repomanager.Leaves().ListByUser(ctx, userID)
}
