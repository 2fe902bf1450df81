package repomanager

import (
	"context"
	"database/sql"

	"github.com/Yashraj9595/mealmate/internal/server/repositories/billing"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/leaves"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/messes"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/resetcodes"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	ResetCodes() resetcodes.Repository
	Messes() messes.Repository
	Billing() billing.Repository
	Leaves() leaves.Repository
}
