package resetcodes

import (
	"context"
	"sync"
	"time"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/server/models"
)

type InMemoryRepository struct {
	mu    sync.Mutex
	codes map[string]*models.ResetCode // by email
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{codes: map[string]*models.ResetCode{}}
}

func (r *InMemoryRepository) Upsert(_ context.Context, code *models.ResetCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *code
	cp.CreatedAt = time.Now()
	r.codes[code.Email] = &cp
	return nil
}

func (r *InMemoryRepository) Find(_ context.Context, email string) (*models.ResetCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.codes[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.codes, email)
	return nil
}
