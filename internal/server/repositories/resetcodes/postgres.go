package resetcodes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/dbx"
	"github.com/Yashraj9595/mealmate/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, code *models.ResetCode) error {
	query :=
		`INSERT INTO reset_codes (email, code, expires)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE SET code = EXCLUDED.code, expires = EXCLUDED.expires, created_at = now()
		 `
	if _, err := r.db.ExecContext(ctx, query, code.Email, code.Code, code.Expires); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, email string) (*models.ResetCode, error) {
	query :=
		`SELECT email, code, expires, created_at FROM reset_codes
		 WHERE email = $1
		 `

	code := &models.ResetCode{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&code.Email, &code.Code, &code.Expires, &code.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return code, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, email string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reset_codes WHERE email = $1`, email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
