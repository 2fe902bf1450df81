package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Yashraj9595/mealmate/internal/client/models"
)

// ListMesses lists the mess directory. GET /mess/list.
func (c *Client) ListMesses(ctx context.Context) ([]models.Mess, error) {
	var out struct {
		Messes []models.Mess `json:"messes"`
	}
	if err := c.callData(ctx, http.MethodGet, "/mess/list", nil, &out); err != nil {
		return nil, err
	}
	return out.Messes, nil
}

// Subscribe enrolls the caller with a mess. POST /mess/subscribe.
func (c *Client) Subscribe(ctx context.Context, messID string) error {
	payload := map[string]string{"messId": messID}
	return c.callData(ctx, http.MethodPost, "/mess/subscribe", payload, nil)
}

// GetMenu fetches a mess's weekly menu. GET /mess/{id}/menu.
func (c *Client) GetMenu(ctx context.Context, messID string) ([]models.DayMenu, error) {
	var out struct {
		Menu []models.DayMenu `json:"menu"`
	}
	path := "/mess/" + url.PathEscape(messID) + "/menu"
	if err := c.callData(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Menu, nil
}

// GetPlans lists available meal plans. GET /mess/plans.
func (c *Client) GetPlans(ctx context.Context) ([]models.Plan, error) {
	var out struct {
		Plans []models.Plan `json:"plans"`
	}
	if err := c.callData(ctx, http.MethodGet, "/mess/plans", nil, &out); err != nil {
		return nil, err
	}
	return out.Plans, nil
}

// GetAnnouncements lists current announcements. GET /mess/announcements.
func (c *Client) GetAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	var out struct {
		Announcements []models.Announcement `json:"announcements"`
	}
	if err := c.callData(ctx, http.MethodGet, "/mess/announcements", nil, &out); err != nil {
		return nil, err
	}
	return out.Announcements, nil
}

// GetFeedbacks lists feedback visible to the caller. GET /mess/feedbacks.
func (c *Client) GetFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	var out struct {
		Feedbacks []models.Feedback `json:"feedbacks"`
	}
	if err := c.callData(ctx, http.MethodGet, "/mess/feedbacks", nil, &out); err != nil {
		return nil, err
	}
	return out.Feedbacks, nil
}

// SubmitFeedback posts a rating and comment. POST /mess/feedback.
func (c *Client) SubmitFeedback(ctx context.Context, fb models.Feedback) error {
	payload := map[string]any{"rating": fb.Rating, "content": fb.Content}
	if fb.MessID != "" {
		payload["messId"] = fb.MessID
	}
	return c.callData(ctx, http.MethodPost, "/mess/feedback", payload, nil)
}

// PhotoUpload holds a presigned upload slot for a mess photo.
type PhotoUpload struct {
	Key       string `json:"key"`
	UploadURL string `json:"uploadUrl"`
}

// GetPhotoUploadURL requests a presigned PUT URL for a mess photo.
// POST /mess/photo-upload. Mess owners only.
func (c *Client) GetPhotoUploadURL(ctx context.Context) (*PhotoUpload, error) {
	var out PhotoUpload
	if err := c.callData(ctx, http.MethodPost, "/mess/photo-upload", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
