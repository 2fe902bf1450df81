package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/server/models"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/repomanager"
)

func seedWalletUser(t *testing.T, m *repomanager.InMemoryRepositoryManager) *models.User {
	t.Helper()
	u, err := m.Users().Create(context.Background(), &models.User{
		Name: "Wallet", Email: "wallet@example.com", Role: models.RoleUser,
	})
	if err != nil {
		t.Fatalf("Create user error: %v", err)
	}
	return u
}

func TestAddMoney_CreditsAndRecords(t *testing.T) {
	m := repomanager.NewInMemoryRepositoryManager()
	u := seedWalletUser(t, m)
	svc := NewMoneyService(m)
	ctx := context.Background()

	balance, err := svc.AddMoney(ctx, u.ID, 500)
	if err != nil {
		t.Fatalf("AddMoney error: %v", err)
	}
	if balance != 500 {
		t.Errorf("expected balance 500, got %v", balance)
	}

	balance, err = svc.AddMoney(ctx, u.ID, 250)
	if err != nil {
		t.Fatalf("AddMoney error: %v", err)
	}
	if balance != 750 {
		t.Errorf("expected balance 750, got %v", balance)
	}

	txs, err := svc.Transactions(ctx, u.ID)
	if err != nil {
		t.Fatalf("Transactions error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	for _, tx := range txs {
		if tx.Kind != models.TxCredit {
			t.Errorf("expected credit, got %+v", tx)
		}
	}
}

func TestAddMoney_RejectsNonPositiveAmounts(t *testing.T) {
	m := repomanager.NewInMemoryRepositoryManager()
	u := seedWalletUser(t, m)
	svc := NewMoneyService(m)

	for _, amount := range []float64{0, -10} {
		if _, err := svc.AddMoney(context.Background(), u.ID, amount); !errors.Is(err, common.ErrorValidation) {
			t.Errorf("amount %v: expected validation error, got %v", amount, err)
		}
	}
}

func TestAddMoney_UnknownUser(t *testing.T) {
	m := repomanager.NewInMemoryRepositoryManager()
	svc := NewMoneyService(m)

	if _, err := svc.AddMoney(context.Background(), "ghost", 100); !errors.Is(err, common.ErrorNotFound) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestDebit_OverdraftRejected(t *testing.T) {
	m := repomanager.NewInMemoryRepositoryManager()
	u := seedWalletUser(t, m)
	ctx := context.Background()

	if _, err := m.Billing().Credit(ctx, u.ID, 100, "top-up"); err != nil {
		t.Fatalf("Credit error: %v", err)
	}
	if _, err := m.Billing().Debit(ctx, u.ID, 150, "meal charge"); !errors.Is(err, common.ErrorInsufficientBalance) {
		t.Errorf("expected insufficient balance, got %v", err)
	}

	balance, err := m.Billing().Debit(ctx, u.ID, 40, "meal charge")
	if err != nil {
		t.Fatalf("Debit error: %v", err)
	}
	if balance != 60 {
		t.Errorf("expected balance 60, got %v", balance)
	}
}
