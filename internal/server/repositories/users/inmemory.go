package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/server/models"
)

// InMemoryRepository keeps users in a map. Used by tests and by the
// in-memory repository manager for local development.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User // by id
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: map[string]*models.User{}}
}

func (r *InMemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	cp := *user
	cp.ID = uuid.NewString()
	cp.CreatedAt = time.Now()
	r.users[cp.ID] = &cp

	out := cp
	return &out, nil
}

func (r *InMemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *InMemoryRepository) UpdateProfile(_ context.Context, id string, name, address *string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if name != nil {
		u.Name = *name
	}
	if address != nil {
		u.Address = *address
	}
	cp := *u
	return &cp, nil
}

func (r *InMemoryRepository) UpdatePassword(_ context.Context, email string, passwordHash []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			u.PasswordHash = append([]byte(nil), passwordHash...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (r *InMemoryRepository) Count(context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

// AdjustBalance applies a delta to a user's balance, failing on overdraft.
// The billing repository calls this through the manager.
func (r *InMemoryRepository) AdjustBalance(_ context.Context, id string, delta float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return 0, common.ErrorNotFound
	}
	if u.Balance+delta < 0 {
		return 0, common.ErrorInsufficientBalance
	}
	u.Balance += delta
	return u.Balance, nil
}
