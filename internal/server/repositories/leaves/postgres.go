package leaves

import (
	"context"
	"fmt"

	"github.com/Yashraj9595/mealmate/internal/dbx"
	"github.com/Yashraj9595/mealmate/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, req *models.LeaveRequest) (*models.LeaveRequest, error) {
	query :=
		`INSERT INTO leave_requests (user_id, type, reason, start_date, end_date, status)
		 VALUES ($1, $2, $3, $4, $5, 'pending')
		 RETURNING id, status, submitted_at
		 `
	err := r.db.QueryRowContext(ctx, query,
		req.UserID, req.Type, req.Reason, req.StartDate, req.EndDate).
		Scan(&req.ID, &req.Status, &req.SubmittedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return req, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.LeaveRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, type, reason, start_date, end_date, status, submitted_at
		 FROM leave_requests WHERE user_id = $1 ORDER BY submitted_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.LeaveRequest
	for rows.Next() {
		var lr models.LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.UserID, &lr.Type, &lr.Reason,
			&lr.StartDate, &lr.EndDate, &lr.Status, &lr.SubmittedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) CountUpcoming(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM leave_requests
		 WHERE user_id = $1 AND status <> 'rejected' AND end_date >= to_char(now(), 'YYYY-MM-DD')`,
		userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
