package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Yashraj9595/mealmate/internal/server/migrations"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/billing"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/leaves"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/messes"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/resetcodes"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/users"
)

type PostgresRepositoryManager struct {
	db *sql.DB
}

func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	return &PostgresRepositoryManager{db: db}, nil
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return users.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) ResetCodes() resetcodes.Repository {
	return resetcodes.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Messes() messes.Repository {
	return messes.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Billing() billing.Repository {
	return billing.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Leaves() leaves.Repository {
	return leaves.NewPostgresRepository(m.db)
}
