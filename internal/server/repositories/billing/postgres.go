package billing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/dbx"
	"github.com/Yashraj9595/mealmate/internal/server/models"
)

// PostgresRepository holds a *sql.DB rather than a DBTX: balance updates
// and ledger inserts must share a transaction.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Credit(ctx context.Context, userID string, amount float64, note string) (float64, error) {
	return r.apply(ctx, userID, amount, models.TxCredit, note)
}

func (r *PostgresRepository) Debit(ctx context.Context, userID string, amount float64, note string) (float64, error) {
	return r.apply(ctx, userID, -amount, models.TxDebit, note)
}

func (r *PostgresRepository) apply(ctx context.Context, userID string, delta float64, kind, note string) (float64, error) {
	var balance float64

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		err := tx.QueryRowContext(ctx,
			`UPDATE users SET balance = balance + $2
			 WHERE id = $1 AND balance + $2 >= 0
			 RETURNING balance`, userID, delta).Scan(&balance)

		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Either the user is gone or the overdraft guard fired.
				if exists, eerr := r.userExists(ctx, tx, userID); eerr == nil && exists {
					return common.ErrorInsufficientBalance
				}
				return common.ErrorNotFound
			}
			return fmt.Errorf("db error: %w", err)
		}

		amount := delta
		if amount < 0 {
			amount = -amount
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (user_id, amount, kind, note) VALUES ($1, $2, $3, $4)`,
			userID, amount, kind, note); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})

	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *PostgresRepository) userExists(ctx context.Context, tx dbx.DBTX, userID string) (bool, error) {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) Transactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, amount, kind, note, date
		 FROM transactions WHERE user_id = $1 ORDER BY date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Kind, &tx.Note, &tx.Date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) PendingBillsCount(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM bills WHERE user_id = $1 AND status = 'pending'`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
