package messes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/server/models"
)

type InMemoryRepository struct {
	mu            sync.RWMutex
	messes        map[string]*models.Mess
	menu          []models.MenuItem
	plans         []models.Plan
	announcements []models.Announcement
	feedbacks     []models.Feedback
	subs          map[string]*models.Subscription // by user id
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		messes: map[string]*models.Mess{},
		subs:   map[string]*models.Subscription{},
	}
}

// Seed installs fixture data. Test and development helper.
func (r *InMemoryRepository) Seed(messes []models.Mess, menu []models.MenuItem, plans []models.Plan, announcements []models.Announcement) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range messes {
		m := messes[i]
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		r.messes[m.ID] = &m
	}
	r.menu = append(r.menu, menu...)
	r.plans = append(r.plans, plans...)
	r.announcements = append(r.announcements, announcements...)
}

func (r *InMemoryRepository) List(context.Context) ([]models.Mess, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Mess, 0, len(r.messes))
	for _, m := range r.messes {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*models.Mess, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.messes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *InMemoryRepository) GetByOwner(_ context.Context, ownerID string) (*models.Mess, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.messes {
		if m.OwnerID == ownerID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) Count(context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messes), nil
}

func (r *InMemoryRepository) SetImageKey(_ context.Context, messID, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.messes[messID]
	if !ok {
		return common.ErrorNotFound
	}
	m.ImageKey = key
	return nil
}

func (r *InMemoryRepository) Menu(_ context.Context, messID string) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.MenuItem
	for _, it := range r.menu {
		if it.MessID == messID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Plans(_ context.Context, messID string) ([]models.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Plan
	for _, p := range r.plans {
		if p.MessID == messID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out, nil
}

func (r *InMemoryRepository) Announcements(_ context.Context, messID string) ([]models.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Announcement
	for _, a := range r.announcements {
		if a.MessID == messID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *InMemoryRepository) Feedbacks(_ context.Context, messID string) ([]models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Feedback
	for _, fb := range r.feedbacks {
		if fb.MessID == messID {
			out = append(out, fb)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *InMemoryRepository) CreateFeedback(_ context.Context, fb *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fb.ID = uuid.NewString()
	fb.Date = time.Now()
	r.feedbacks = append(r.feedbacks, *fb)
	return nil
}

func (r *InMemoryRepository) Subscribe(_ context.Context, sub *models.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub.ID = uuid.NewString()
	sub.Since = time.Now()
	cp := *sub
	r.subs[sub.UserID] = &cp
	return nil
}

func (r *InMemoryRepository) SubscriptionByUser(_ context.Context, userID string) (*models.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.subs[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *InMemoryRepository) CountSubscribers(_ context.Context, messID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, s := range r.subs {
		if s.MessID == messID {
			n++
		}
	}
	return n, nil
}
