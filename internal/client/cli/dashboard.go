package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/Yashraj9595/mealmate/internal/client/api"
	"github.com/Yashraj9595/mealmate/internal/client/models"
)

// Dashboard fetches and prints the role-dependent summary.
func (a *App) Dashboard(ctx context.Context) error {
	d, err := a.client.GetDashboard(ctx)
	if err != nil {
		log.Printf("Dashboard unavailable: %s", api.UserMessage(err))
		return err
	}

	switch a.currentRole() {
	case models.RoleAdmin:
		fmt.Printf("Users: %d  Messes: %d\n", d.TotalUsers, d.TotalMesses)
	case models.RoleMessOwner:
		fmt.Printf("Subscribers: %d\n", d.TotalSubscribers)
	default:
		fmt.Printf("Balance: %.2f  Pending bills: %d  Upcoming leaves: %d\n",
			d.Balance, d.PendingBills, d.UpcomingLeaves)
		if d.ActivePlan != nil {
			fmt.Printf("Active plan: %s (%.2f / %s)\n",
				d.ActivePlan.Name, d.ActivePlan.Price, d.ActivePlan.Duration)
		}
	}

	for _, an := range d.Announcements {
		fmt.Printf("[%s] %s — %s\n", an.Type, an.Title, an.Content)
	}
	return nil
}
