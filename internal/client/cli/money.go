package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Yashraj9595/mealmate/internal/client/api"
)

// AddMoney prompts for an amount and tops up the wallet.
func (a *App) AddMoney(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Amount to add", os.Stdout)
	if err != nil {
		return err
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount <= 0 {
		fmt.Println("Amount must be a positive number")
		return nil
	}

	balance, err := a.client.AddMoney(ctx, amount)
	if err != nil {
		log.Printf("Top-up unsuccessful: %s", api.UserMessage(err))
		return err
	}

	fmt.Printf("New balance: %.2f\n", balance)
	return nil
}

// Transactions prints the wallet ledger, newest first as returned by the server.
func (a *App) Transactions(ctx context.Context) error {
	txs, err := a.client.GetTransactions(ctx)
	if err != nil {
		log.Printf("Transactions unavailable: %s", api.UserMessage(err))
		return err
	}

	if len(txs) == 0 {
		fmt.Println("No transactions yet")
		return nil
	}
	for _, tx := range txs {
		sign := "+"
		if tx.Kind == "debit" {
			sign = "-"
		}
		fmt.Printf("%s  %s%.2f  %s\n", tx.Date, sign, tx.Amount, tx.Note)
	}
	return nil
}
