package api

import (
	"context"
	"net/http"

	"github.com/Yashraj9595/mealmate/internal/client/models"
)

// GetDashboard fetches the role-dependent summary. GET /dashboard.
func (c *Client) GetDashboard(ctx context.Context) (*models.DashboardData, error) {
	var data models.DashboardData
	if err := c.callData(ctx, http.MethodGet, "/dashboard", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
