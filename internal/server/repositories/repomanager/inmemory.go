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

// InMemoryRepositoryManager backs every repository with process-local maps.
// Used by tests and by development setups without a database.
type InMemoryRepositoryManager struct {
	users      *users.InMemoryRepository
	resetCodes *resetcodes.InMemoryRepository
	messes     *messes.InMemoryRepository
	billing    *billing.InMemoryRepository
	leaves     *leaves.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	u := users.NewInMemoryRepository()
	return &InMemoryRepositoryManager{
		users:      u,
		resetCodes: resetcodes.NewInMemoryRepository(),
		messes:     messes.NewInMemoryRepository(),
		billing:    billing.NewInMemoryRepository(u),
		leaves:     leaves.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB { return nil }

func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Users() users.Repository           { return m.users }
func (m *InMemoryRepositoryManager) ResetCodes() resetcodes.Repository { return m.resetCodes }
func (m *InMemoryRepositoryManager) Messes() messes.Repository         { return m.messes }
func (m *InMemoryRepositoryManager) Billing() billing.Repository       { return m.billing }
func (m *InMemoryRepositoryManager) Leaves() leaves.Repository         { return m.leaves }

// SeedMesses exposes the mess fixture helper for tests and dev bootstrap.
func (m *InMemoryRepositoryManager) SeedMesses() *messes.InMemoryRepository { return m.messes }

// SeedBilling exposes the billing fixture helper for tests.
func (m *InMemoryRepositoryManager) SeedBilling() *billing.InMemoryRepository { return m.billing }
