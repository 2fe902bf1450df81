// Package services contains application services for the MealMate client.
// This file defines the session service: the single authority over "who is
// logged in" and the only writer of the persisted credential/user store.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Yashraj9595/mealmate/internal/client/api"
	"github.com/Yashraj9595/mealmate/internal/client/models"
	"github.com/Yashraj9595/mealmate/internal/client/repositories/session"
	"github.com/Yashraj9595/mealmate/internal/common"
)

// State describes the session lifecycle position.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
)

// ErrNotAuthenticated is returned by operations that require a live session.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthService owns the session state machine.
//
// Contract:
//   - Restore: resolve a persisted credential into a live session on startup.
//   - Login / Register: establish a session; credential and user are persisted
//     together, or not at all.
//   - Logout: unconditionally clear the session; idempotent.
//   - ForgotPassword / VerifyOTP / ResetPassword: recovery flows; they toggle
//     the loading flag but never touch the authenticated state.
//   - UpdateProfile: replace the user record; requires an active session.
//
// All methods honor context cancellation. Failures are re-raised to the
// caller after the service records them; presentation is the caller's job.
type AuthService interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, in api.RegisterInput) (*models.User, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, otp, password string) error
	UpdateProfile(ctx context.Context, in api.UpdateProfileInput) (*models.User, error)
	CreateAdmin(ctx context.Context, in api.RegisterInput) error

	State() State
	CurrentUser() *models.User
	Loading() bool
	LastError() string

	// Token is the api.TokenSource consulted before every outbound request.
	Token(ctx context.Context) string
	// HandleAuthFailure is the api.AuthFailureHook: it purges the persisted
	// credential and user whenever any endpoint answers 401.
	HandleAuthFailure(ctx context.Context)
}

type authService struct {
	client Client
	repo   session.Repository

	// op serializes session transitions so overlapping login/logout calls
	// cannot interleave their store writes.
	op sync.Mutex

	// mu guards the fields below; it is never held across a network call.
	mu      sync.RWMutex
	state   State
	user    *models.User
	token   string
	loading bool
	lastErr string
}

// Client is the slice of the API client the session service uses.
// *api.Client satisfies it; tests substitute a fake.
type Client interface {
	Login(ctx context.Context, email, password string) (*api.AuthResult, error)
	Register(ctx context.Context, in api.RegisterInput) (*api.AuthResult, error)
	CreateAdmin(ctx context.Context, in api.RegisterInput) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, otp, password string) error
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, in api.UpdateProfileInput) (*models.User, error)
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client Client, repo session.Repository) AuthService {
	return &authService{client: client, repo: repo, state: StateUnauthenticated}
}

func (a *authService) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *authService) CurrentUser() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *authService) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

func (a *authService) LastError() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastErr
}

func (a *authService) Token(ctx context.Context) string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// HandleAuthFailure purges the persisted credential and cached user. It is
// invoked by the API client on any 401, possibly in the middle of one of this
// service's own operations, so it must not take the op mutex.
func (a *authService) HandleAuthFailure(ctx context.Context) {
	_ = a.repo.Delete(ctx, common.SessionKeyToken)
	_ = a.repo.Delete(ctx, common.SessionKeyUser)

	a.mu.Lock()
	a.token = ""
	a.user = nil
	a.state = StateUnauthenticated
	a.mu.Unlock()
}

// Restore resolves a previously persisted credential into a live session.
// Storage read errors are treated as "no stored session". A profile fetch
// rejected with 401 leaves the store purged (the client's hook already ran);
// transport failures leave the stored credential in place for a later retry
// but still resolve to Unauthenticated.
func (a *authService) Restore(ctx context.Context) error {
	a.op.Lock()
	defer a.op.Unlock()

	a.setAuthenticating()

	stored, err := a.repo.Get(ctx, common.SessionKeyToken)
	if err != nil || len(stored) == 0 {
		a.setUnauthenticated("")
		return nil
	}

	a.mu.Lock()
	a.token = string(stored)
	a.mu.Unlock()

	user, err := a.client.GetProfile(ctx)
	if err != nil {
		a.mu.Lock()
		a.token = ""
		a.user = nil
		a.mu.Unlock()
		a.setUnauthenticated(api.UserMessage(err))
		if errors.Is(err, api.ErrUnauthorized) {
			// Hook purged the store; a dead credential is not a startup error.
			return nil
		}
		return err
	}

	if raw, err := json.Marshal(user); err == nil {
		_ = a.repo.Set(ctx, common.SessionKeyUser, raw)
	}

	a.mu.Lock()
	a.user = user
	a.state = StateAuthenticated
	a.loading = false
	a.lastErr = ""
	a.mu.Unlock()
	return nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	a.op.Lock()
	defer a.op.Unlock()

	a.setAuthenticating()

	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.setUnauthenticated(api.UserMessage(err))
		return nil, err
	}

	if err := a.establish(ctx, res.Token, &res.User); err != nil {
		a.setUnauthenticated(api.UserMessage(err))
		return nil, err
	}
	return &res.User, nil
}

func (a *authService) Register(ctx context.Context, in api.RegisterInput) (*models.User, error) {
	a.op.Lock()
	defer a.op.Unlock()

	a.setAuthenticating()

	res, err := a.client.Register(ctx, in)
	if err != nil {
		a.setUnauthenticated(api.UserMessage(err))
		return nil, err
	}

	if err := a.establish(ctx, res.Token, &res.User); err != nil {
		a.setUnauthenticated(api.UserMessage(err))
		return nil, err
	}
	return &res.User, nil
}

// establish persists the credential and user together and only then exposes
// them in memory, so no request can observe a half-written session.
func (a *authService) establish(ctx context.Context, token string, user *models.User) error {
	if err := a.repo.Set(ctx, common.SessionKeyToken, []byte(token)); err != nil {
		return err
	}
	raw, err := json.Marshal(user)
	if err == nil {
		err = a.repo.Set(ctx, common.SessionKeyUser, raw)
	}
	if err != nil {
		// Do not leave a credential without its user record.
		_ = a.repo.Delete(ctx, common.SessionKeyToken)
		return err
	}

	a.mu.Lock()
	a.token = token
	a.user = user
	a.state = StateAuthenticated
	a.loading = false
	a.lastErr = ""
	a.mu.Unlock()
	return nil
}

// Logout unconditionally clears the persisted and in-memory session. Calling
// it without a session is a no-op; it never leaves a stale credential behind.
func (a *authService) Logout(ctx context.Context) error {
	a.op.Lock()
	defer a.op.Unlock()

	errToken := a.repo.Delete(ctx, common.SessionKeyToken)
	errUser := a.repo.Delete(ctx, common.SessionKeyUser)

	a.mu.Lock()
	a.token = ""
	a.user = nil
	a.state = StateUnauthenticated
	a.loading = false
	a.lastErr = ""
	a.mu.Unlock()

	return errors.Join(errToken, errUser)
}

func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	return a.recovery(func() error { return a.client.ForgotPassword(ctx, email) })
}

func (a *authService) VerifyOTP(ctx context.Context, email, otp string) error {
	return a.recovery(func() error { return a.client.VerifyOTP(ctx, email, otp) })
}

func (a *authService) ResetPassword(ctx context.Context, email, otp, password string) error {
	return a.recovery(func() error { return a.client.ResetPassword(ctx, email, otp, password) })
}

// recovery runs a password-recovery call: loading flag on, delegate, record
// the outcome. The authenticated/unauthenticated state is left untouched.
func (a *authService) recovery(call func() error) error {
	a.mu.Lock()
	a.loading = true
	a.lastErr = ""
	a.mu.Unlock()

	err := call()

	a.mu.Lock()
	a.loading = false
	if err != nil {
		a.lastErr = api.UserMessage(err)
	}
	a.mu.Unlock()
	return err
}

func (a *authService) UpdateProfile(ctx context.Context, in api.UpdateProfileInput) (*models.User, error) {
	a.op.Lock()
	defer a.op.Unlock()

	if a.State() != StateAuthenticated {
		return nil, ErrNotAuthenticated
	}

	a.mu.Lock()
	a.loading = true
	a.lastErr = ""
	a.mu.Unlock()

	user, err := a.client.UpdateProfile(ctx, in)

	a.mu.Lock()
	a.loading = false
	if err != nil {
		a.lastErr = api.UserMessage(err)
		a.mu.Unlock()
		// Prior user record stays as it was.
		return nil, err
	}
	a.user = user
	a.mu.Unlock()

	if raw, err := json.Marshal(user); err == nil {
		_ = a.repo.Set(ctx, common.SessionKeyUser, raw)
	}
	return user, nil
}

func (a *authService) CreateAdmin(ctx context.Context, in api.RegisterInput) error {
	return a.recovery(func() error { return a.client.CreateAdmin(ctx, in) })
}

func (a *authService) setAuthenticating() {
	a.mu.Lock()
	a.state = StateAuthenticating
	a.loading = true
	a.lastErr = ""
	a.mu.Unlock()
}

func (a *authService) setUnauthenticated(errMsg string) {
	a.mu.Lock()
	a.state = StateUnauthenticated
	a.loading = false
	a.lastErr = errMsg
	a.mu.Unlock()
}
