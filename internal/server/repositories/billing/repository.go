package billing

import (
	"context"

	"github.com/Yashraj9595/mealmate/internal/server/models"
)

// Repository maintains the wallet ledger. Credit and Debit adjust the
// user's balance and record the matching transaction atomically; Debit
// fails with common.ErrorInsufficientBalance on overdraft.
type Repository interface {
	Credit(ctx context.Context, userID string, amount float64, note string) (float64, error)
	Debit(ctx context.Context, userID string, amount float64, note string) (float64, error)
	Transactions(ctx context.Context, userID string) ([]models.Transaction, error)
	PendingBillsCount(ctx context.Context, userID string) (int, error)
}
