package api

import (
	"context"
	"net/http"

	"github.com/Yashraj9595/mealmate/internal/client/models"
)

// LeaveInput is the payload for POST /leave/request.
type LeaveInput struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
	Type      string `json:"type"` // mess or hostel
}

// SubmitLeaveRequest files an absence request. POST /leave/request.
func (c *Client) SubmitLeaveRequest(ctx context.Context, in LeaveInput) (*models.LeaveRequest, error) {
	var out models.LeaveRequest
	if err := c.callData(ctx, http.MethodPost, "/leave/request", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLeaveRequests lists the caller's leave requests. GET /leave/requests.
func (c *Client) GetLeaveRequests(ctx context.Context) ([]models.LeaveRequest, error) {
	var out struct {
		Requests []models.LeaveRequest `json:"requests"`
	}
	if err := c.callData(ctx, http.MethodGet, "/leave/requests", nil, &out); err != nil {
		return nil, err
	}
	return out.Requests, nil
}
