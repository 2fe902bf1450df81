package services

import (
	"context"
	"fmt"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/server/models"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/repomanager"
)

type MoneyService struct {
	repomanager repomanager.RepositoryManager
}

func NewMoneyService(m repomanager.RepositoryManager) *MoneyService {
	return &MoneyService{repomanager: m}
}

// AddMoney credits the wallet and returns the new balance.
func (s *MoneyService) AddMoney(ctx context.Context, userID string, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", common.ErrorValidation)
	}
	return s.repomanager.Billing().Credit(ctx, userID, amount, "wallet top-up")
}

func (s *MoneyService) Transactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.repomanager.Billing().Transactions(ctx, userID)
}
