package messes

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

const messColumns = `id, owner_id, name, description, location, contact, rating, image_key`

func (r *PostgresRepository) List(ctx context.Context) ([]models.Mess, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+messColumns+` FROM messes ORDER BY rating DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Mess
	for rows.Next() {
		var m models.Mess
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.Name, &m.Description,
			&m.Location, &m.Contact, &m.Rating, &m.ImageKey); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Mess, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+messColumns+` FROM messes WHERE id = $1`, id))
}

func (r *PostgresRepository) GetByOwner(ctx context.Context, ownerID string) (*models.Mess, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+messColumns+` FROM messes WHERE owner_id = $1`, ownerID))
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM messes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) SetImageKey(ctx context.Context, messID, key string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE messes SET image_key = $2 WHERE id = $1`, messID, key); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Menu(ctx context.Context, messID string) ([]models.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT mess_id, day, meal, name FROM menu_items WHERE mess_id = $1 ORDER BY id`, messID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.MenuItem
	for rows.Next() {
		var it models.MenuItem
		if err := rows.Scan(&it.MessID, &it.Day, &it.Meal, &it.Name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Plans(ctx context.Context, messID string) ([]models.Plan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, mess_id, name, price, duration, breakfast, lunch, dinner, features
		 FROM plans WHERE mess_id = $1 ORDER BY price`, messID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Plan
	for rows.Next() {
		var p models.Plan
		var features []byte
		if err := rows.Scan(&p.ID, &p.MessID, &p.Name, &p.Price, &p.Duration,
			&p.Breakfast, &p.Lunch, &p.Dinner, &features); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		p.Features = splitFeatures(features)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Announcements(ctx context.Context, messID string) ([]models.Announcement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, mess_id, title, content, type, date
		 FROM announcements WHERE mess_id = $1 ORDER BY date DESC`, messID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.MessID, &a.Title, &a.Content, &a.Type, &a.Date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Feedbacks(ctx context.Context, messID string) ([]models.Feedback, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, mess_id, user_id, rating, content, date
		 FROM feedbacks WHERE mess_id = $1 ORDER BY date DESC`, messID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Feedback
	for rows.Next() {
		var fb models.Feedback
		if err := rows.Scan(&fb.ID, &fb.MessID, &fb.UserID, &fb.Rating, &fb.Content, &fb.Date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, fb)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) CreateFeedback(ctx context.Context, fb *models.Feedback) error {
	query :=
		`INSERT INTO feedbacks (mess_id, user_id, rating, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, date
		 `
	err := r.db.QueryRowContext(ctx, query, fb.MessID, fb.UserID, fb.Rating, fb.Content).
		Scan(&fb.ID, &fb.Date)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Subscribe(ctx context.Context, sub *models.Subscription) error {
	query :=
		`INSERT INTO subscriptions (user_id, mess_id, plan_id)
		 VALUES ($1, $2, NULLIF($3, ''))
		 ON CONFLICT (user_id) DO UPDATE SET mess_id = EXCLUDED.mess_id, plan_id = EXCLUDED.plan_id, since = now()
		 RETURNING id, since
		 `
	err := r.db.QueryRowContext(ctx, query, sub.UserID, sub.MessID, sub.PlanID).
		Scan(&sub.ID, &sub.Since)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SubscriptionByUser(ctx context.Context, userID string) (*models.Subscription, error) {
	sub := &models.Subscription{}
	var planID sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, mess_id, plan_id, since FROM subscriptions WHERE user_id = $1`, userID).
		Scan(&sub.ID, &sub.UserID, &sub.MessID, &planID, &sub.Since)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	sub.PlanID = planID.String
	return sub, nil
}

func (r *PostgresRepository) CountSubscribers(ctx context.Context, messID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM subscriptions WHERE mess_id = $1`, messID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Mess, error) {
	m := &models.Mess{}
	err := row.Scan(&m.ID, &m.OwnerID, &m.Name, &m.Description,
		&m.Location, &m.Contact, &m.Rating, &m.ImageKey)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}
