package leaves

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Yashraj9595/mealmate/internal/server/models"
)

type InMemoryRepository struct {
	mu       sync.Mutex
	requests []models.LeaveRequest
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(_ context.Context, req *models.LeaveRequest) (*models.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.ID = uuid.NewString()
	req.Status = "pending"
	req.SubmittedAt = time.Now()
	r.requests = append(r.requests, *req)

	cp := *req
	return &cp, nil
}

func (r *InMemoryRepository) ListByUser(_ context.Context, userID string) ([]models.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.LeaveRequest
	for _, lr := range r.requests {
		if lr.UserID == userID {
			out = append(out, lr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (r *InMemoryRepository) CountUpcoming(_ context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	today := time.Now().Format("2006-01-02")
	n := 0
	for _, lr := range r.requests {
		if lr.UserID == userID && lr.Status != "rejected" && lr.EndDate >= today {
			n++
		}
	}
	return n, nil
}
