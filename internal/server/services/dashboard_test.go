package services

import (
	"context"
	"testing"
	"time"

	"github.com/Yashraj9595/mealmate/internal/server/models"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/repomanager"
)

func TestDashboard_Admin(t *testing.T) {
	m := repomanager.NewInMemoryRepositoryManager()
	seedOneMess(m)
	ctx := context.Background()
	for _, email := range []string{"a@example.com", "b@example.com"} {
		if _, err := m.Users().Create(ctx, &models.User{Name: "u", Email: email, Role: models.RoleUser}); err != nil {
			t.Fatalf("Create user error: %v", err)
		}
	}

	d, err := NewDashboardService(m).Get(ctx, &models.User{ID: "adm", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if d.TotalUsers != 2 || d.TotalMesses != 1 {
		t.Errorf("unexpected counts: %+v", d)
	}
}

func TestDashboard_Owner(t *testing.T) {
	m := repomanager.NewInMemoryRepositoryManager()
	seedOneMess(m)
	ctx := context.Background()

	for _, uid := range []string{"u1", "u2", "u3"} {
		err := m.Messes().Subscribe(ctx, &models.Subscription{UserID: uid, MessID: "m1", PlanID: "p1"})
		if err != nil {
			t.Fatalf("Subscribe error: %v", err)
		}
	}

	d, err := NewDashboardService(m).Get(ctx, &models.User{ID: "owner-1", Role: models.RoleMessOwner})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if d.TotalSubscribers != 3 {
		t.Errorf("expected 3 subscribers, got %d", d.TotalSubscribers)
	}
	if len(d.Announcements) != 1 {
		t.Errorf("expected 1 announcement, got %d", len(d.Announcements))
	}
}

func TestDashboard_OwnerWithoutMess(t *testing.T) {
	m := repomanager.NewInMemoryRepositoryManager()

	d, err := NewDashboardService(m).Get(context.Background(), &models.User{ID: "new-owner", Role: models.RoleMessOwner})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if d.TotalSubscribers != 0 || len(d.Announcements) != 0 {
		t.Errorf("expected empty dashboard, got %+v", d)
	}
}

func TestDashboard_User(t *testing.T) {
	m := repomanager.NewInMemoryRepositoryManager()
	seedOneMess(m)
	ctx := context.Background()

	user, err := m.Users().Create(ctx, &models.User{Name: "Asha", Email: "asha@example.com", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Create user error: %v", err)
	}
	if _, err := m.Billing().Credit(ctx, user.ID, 800, "top-up"); err != nil {
		t.Fatalf("Credit error: %v", err)
	}
	m.SeedBilling().AddBill(models.Bill{UserID: user.ID, Amount: 120, Status: "pending"})
	m.SeedBilling().AddBill(models.Bill{UserID: user.ID, Amount: 90, Status: "paid"})

	if err := m.Messes().Subscribe(ctx, &models.Subscription{UserID: user.ID, MessID: "m1", PlanID: "p2"}); err != nil {
		t.Fatalf("Subscribe error: %v", err)
	}

	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	_, err = m.Leaves().Create(ctx, &models.LeaveRequest{
		UserID: user.ID, Type: "mess", StartDate: future, EndDate: future,
	})
	if err != nil {
		t.Fatalf("Create leave error: %v", err)
	}

	fresh, err := m.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}

	d, err := NewDashboardService(m).Get(ctx, fresh)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if d.Balance != 800 {
		t.Errorf("expected balance 800, got %v", d.Balance)
	}
	if d.PendingBills != 1 {
		t.Errorf("expected 1 pending bill, got %d", d.PendingBills)
	}
	if d.UpcomingLeaves != 1 {
		t.Errorf("expected 1 upcoming leave, got %d", d.UpcomingLeaves)
	}
	if d.ActivePlan == nil || d.ActivePlan.ID != "p2" {
		t.Errorf("unexpected active plan: %+v", d.ActivePlan)
	}
	if len(d.Announcements) != 1 {
		t.Errorf("expected 1 announcement, got %d", len(d.Announcements))
	}
}

func TestDashboard_UserWithoutSubscription(t *testing.T) {
	m := repomanager.NewInMemoryRepositoryManager()
	ctx := context.Background()

	user, err := m.Users().Create(ctx, &models.User{Name: "New", Email: "new@example.com", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Create user error: %v", err)
	}

	d, err := NewDashboardService(m).Get(ctx, user)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if d.ActivePlan != nil || len(d.Announcements) != 0 {
		t.Errorf("expected bare dashboard, got %+v", d)
	}
}
