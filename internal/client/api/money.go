package api

import (
	"context"
	"net/http"

	"github.com/Yashraj9595/mealmate/internal/client/models"
)

// AddMoney tops up the wallet and returns the new balance. POST /money/add.
func (c *Client) AddMoney(ctx context.Context, amount float64) (float64, error) {
	payload := map[string]float64{"amount": amount}
	var out struct {
		Balance float64 `json:"balance"`
	}
	if err := c.callData(ctx, http.MethodPost, "/money/add", payload, &out); err != nil {
		return 0, err
	}
	return out.Balance, nil
}

// GetTransactions lists the wallet ledger. GET /money/transactions.
func (c *Client) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	var out struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := c.callData(ctx, http.MethodGet, "/money/transactions", nil, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}
