package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Yashraj9595/mealmate/internal/client/models"
)

// AuthResult is the top-level body of POST /auth/login and /auth/register:
// unlike every other endpoint, the token and user ride beside the success flag
// rather than inside data.
type AuthResult struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
	Message string      `json:"message,omitempty"`
}

// RegisterInput is the payload for /auth/register and /auth/create-admin.
type RegisterInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role,omitempty"`
	Address  string      `json:"address,omitempty"`
}

// UpdateProfileInput carries partial profile fields for PUT /auth/update.
// Nil pointers are omitted from the payload.
type UpdateProfileInput struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (c *Client) decodeAuthResult(ctx context.Context, method, path string, payload any) (*AuthResult, error) {
	raw, err := c.do(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	var res AuthResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &CallError{Message: "invalid response from server", Err: ErrServer}
	}
	if !res.Success || res.Token == "" {
		return nil, &CallError{Message: res.Message, Err: ErrRejected}
	}
	return &res, nil
}

// Login authenticates with email and password. POST /auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	payload := map[string]string{"email": email, "password": password}
	return c.decodeAuthResult(ctx, http.MethodPost, "/auth/login", payload)
}

// Register creates a new account and logs it in. POST /auth/register.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	return c.decodeAuthResult(ctx, http.MethodPost, "/auth/register", in)
}

// CreateAdmin provisions an administrator account. POST /auth/create-admin.
// Requires an authenticated admin caller; no session is established for the
// created account.
func (c *Client) CreateAdmin(ctx context.Context, in RegisterInput) error {
	return c.callData(ctx, http.MethodPost, "/auth/create-admin", in, nil)
}

// ForgotPassword requests a one-time code for the given email.
// POST /auth/forgot-password.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	return c.callData(ctx, http.MethodPost, "/auth/forgot-password", payload, nil)
}

// VerifyOTP checks a one-time code without consuming it. POST /auth/verify-otp.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	payload := map[string]string{"email": email, "otp": otp}
	return c.callData(ctx, http.MethodPost, "/auth/verify-otp", payload, nil)
}

// ResetPassword sets a new password using a one-time code.
// POST /auth/reset-password.
func (c *Client) ResetPassword(ctx context.Context, email, otp, password string) error {
	payload := map[string]string{"email": email, "otp": otp, "password": password}
	return c.callData(ctx, http.MethodPost, "/auth/reset-password", payload, nil)
}

// GetProfile fetches the profile matching the attached credential.
// GET /auth/me.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.callData(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies partial profile changes and returns the server's
// representation. PUT /auth/update.
func (c *Client) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	var user models.User
	if err := c.callData(ctx, http.MethodPut, "/auth/update", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
