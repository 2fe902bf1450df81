package billing

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Yashraj9595/mealmate/internal/server/models"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/users"
)

// InMemoryRepository records transactions in a slice and delegates balance
// arithmetic to the users repository so both views stay consistent.
type InMemoryRepository struct {
	mu    sync.Mutex
	users *users.InMemoryRepository
	txs   []models.Transaction
	bills []models.Bill
}

func NewInMemoryRepository(users *users.InMemoryRepository) *InMemoryRepository {
	return &InMemoryRepository{users: users}
}

func (r *InMemoryRepository) Credit(ctx context.Context, userID string, amount float64, note string) (float64, error) {
	return r.apply(ctx, userID, amount, models.TxCredit, note)
}

func (r *InMemoryRepository) Debit(ctx context.Context, userID string, amount float64, note string) (float64, error) {
	return r.apply(ctx, userID, -amount, models.TxDebit, note)
}

func (r *InMemoryRepository) apply(ctx context.Context, userID string, delta float64, kind, note string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balance, err := r.users.AdjustBalance(ctx, userID, delta)
	if err != nil {
		return 0, err
	}

	amount := delta
	if amount < 0 {
		amount = -amount
	}
	r.txs = append(r.txs, models.Transaction{
		ID:     uuid.NewString(),
		UserID: userID,
		Amount: amount,
		Kind:   kind,
		Note:   note,
		Date:   time.Now(),
	})
	return balance, nil
}

func (r *InMemoryRepository) Transactions(_ context.Context, userID string) ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Transaction
	for _, tx := range r.txs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *InMemoryRepository) PendingBillsCount(_ context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, b := range r.bills {
		if b.UserID == userID && b.Status == "pending" {
			n++
		}
	}
	return n, nil
}

// AddBill installs a fixture bill. Test helper.
func (r *InMemoryRepository) AddBill(b models.Bill) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	r.bills = append(r.bills, b)
}
