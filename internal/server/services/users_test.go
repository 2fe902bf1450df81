package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/server/auth"
	"github.com/Yashraj9595/mealmate/internal/server/config"
	"github.com/Yashraj9595/mealmate/internal/server/models"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/repomanager"
)

// --- helpers ---

type fakeMailer struct {
	mu       sync.Mutex
	lastTo   string
	lastCode string
	err      error
}

func (m *fakeMailer) SendResetCode(_ context.Context, recipient, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.lastTo = recipient
	m.lastCode = code
	return nil
}

func newUserSvcForTest(t *testing.T) (*UserService, *repomanager.InMemoryRepositoryManager, *fakeMailer) {
	t.Helper()
	m := repomanager.NewInMemoryRepositoryManager()
	mail := &fakeMailer{}
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
		OTPValidityDuration:   5 * time.Minute,
		OTPLength:             6,
	}
	return NewUserService(m, mail, cfg), m, mail
}

func register(t *testing.T, svc *UserService, email string) *models.User {
	t.Helper()
	u, _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Test User",
		Email:    email,
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	return u
}

// --- tests ---

func TestRegister_DefaultsRoleAndSignsToken(t *testing.T) {
	svc, _, _ := newUserSvcForTest(t)

	user, token, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
		Address:  "Hostel 4",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.Role != models.RoleUser {
		t.Errorf("expected default role %q, got %q", models.RoleUser, user.Role)
	}
	if user.ID == "" {
		t.Errorf("expected assigned id")
	}

	claims, err := auth.ParseToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != models.RoleUser {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestRegister_RejectsAdminAndUnknownRoles(t *testing.T) {
	svc, _, _ := newUserSvcForTest(t)

	for _, role := range []string{models.RoleAdmin, "superuser"} {
		_, _, err := svc.Register(context.Background(), RegisterInput{
			Name: "x", Email: "x@example.com", Password: "secret1", Role: role,
		})
		if !errors.Is(err, common.ErrorValidation) {
			t.Errorf("role %q: expected validation error, got %v", role, err)
		}
	}
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc, _, _ := newUserSvcForTest(t)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "x", Email: "x@example.com", Password: "12345",
	})
	if !errors.Is(err, common.ErrorValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newUserSvcForTest(t)
	register(t, svc, "dup@example.com")

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Other", Email: "dup@example.com", Password: "secret1",
	})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Errorf("expected already-exists error, got %v", err)
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	svc, _, _ := newUserSvcForTest(t)
	created := register(t, svc, "login@example.com")

	user, token, err := svc.Login(context.Background(), "login@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("expected user %s, got %s", created.ID, user.ID)
	}
	if _, err := auth.ParseToken(token, []byte("k")); err != nil {
		t.Errorf("token does not verify: %v", err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, _, _ := newUserSvcForTest(t)
	register(t, svc, "login@example.com")

	if _, _, err := svc.Login(context.Background(), "login@example.com", "wrong-pass"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Errorf("wrong password: expected unauthorized, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "missing@example.com", "secret1"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Errorf("unknown email: expected unauthorized, got %v", err)
	}
}

func TestCreateAdmin_AssignsAdminRole(t *testing.T) {
	svc, _, _ := newUserSvcForTest(t)

	user, err := svc.CreateAdmin(context.Background(), RegisterInput{
		Name: "Root", Email: "root@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("CreateAdmin error: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("expected admin role, got %q", user.Role)
	}
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	svc, _, _ := newUserSvcForTest(t)
	created := register(t, svc, "profile@example.com")

	name := "Renamed"
	updated, err := svc.UpdateProfile(context.Background(), created.ID, &name, nil)
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("name not updated: %q", updated.Name)
	}
	if updated.Address != created.Address {
		t.Errorf("address must be preserved, got %q", updated.Address)
	}

	if _, err := svc.UpdateProfile(context.Background(), created.ID, nil, nil); !errors.Is(err, common.ErrorValidation) {
		t.Errorf("empty update: expected validation error, got %v", err)
	}
}

func TestForgotPassword_ResetFlow(t *testing.T) {
	svc, _, mail := newUserSvcForTest(t)
	register(t, svc, "reset@example.com")
	ctx := context.Background()

	if err := svc.ForgotPassword(ctx, "reset@example.com"); err != nil {
		t.Fatalf("ForgotPassword error: %v", err)
	}
	if mail.lastTo != "reset@example.com" || len(mail.lastCode) != 6 {
		t.Fatalf("unexpected mail: to=%q code=%q", mail.lastTo, mail.lastCode)
	}

	if err := svc.VerifyOTP(ctx, "reset@example.com", mail.lastCode); err != nil {
		t.Fatalf("VerifyOTP error: %v", err)
	}
	// verification does not consume the code
	if err := svc.VerifyOTP(ctx, "reset@example.com", mail.lastCode); err != nil {
		t.Fatalf("second VerifyOTP error: %v", err)
	}

	if err := svc.ResetPassword(ctx, "reset@example.com", mail.lastCode, "newsecret"); err != nil {
		t.Fatalf("ResetPassword error: %v", err)
	}

	if _, _, err := svc.Login(ctx, "reset@example.com", "newsecret"); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
	if _, _, err := svc.Login(ctx, "reset@example.com", "secret1"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Errorf("old password must be rejected, got %v", err)
	}

	// code is consumed by the reset
	if err := svc.ResetPassword(ctx, "reset@example.com", mail.lastCode, "another1"); !errors.Is(err, common.ErrCodeMismatch) {
		t.Errorf("replayed code: expected mismatch, got %v", err)
	}
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	svc, _, mail := newUserSvcForTest(t)

	if err := svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
	if mail.lastTo != "" {
		t.Errorf("no mail must be sent, got %q", mail.lastTo)
	}
}

func TestVerifyOTP_MismatchAndExpiry(t *testing.T) {
	svc, m, mail := newUserSvcForTest(t)
	register(t, svc, "otp@example.com")
	ctx := context.Background()

	if err := svc.ForgotPassword(ctx, "otp@example.com"); err != nil {
		t.Fatalf("ForgotPassword error: %v", err)
	}

	if err := svc.VerifyOTP(ctx, "otp@example.com", "000000"); !errors.Is(err, common.ErrCodeMismatch) {
		t.Errorf("wrong code: expected mismatch, got %v", err)
	}
	if err := svc.VerifyOTP(ctx, "other@example.com", mail.lastCode); !errors.Is(err, common.ErrCodeMismatch) {
		t.Errorf("unknown email: expected mismatch, got %v", err)
	}

	err := m.ResetCodes().Upsert(ctx, &models.ResetCode{
		Email:   "otp@example.com",
		Code:    mail.lastCode,
		Expires: time.Now().Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if err := svc.VerifyOTP(ctx, "otp@example.com", mail.lastCode); !errors.Is(err, common.ErrCodeExpired) {
		t.Errorf("expired code: expected expiry error, got %v", err)
	}
}

func TestResetPassword_RejectsShortPassword(t *testing.T) {
	svc, _, mail := newUserSvcForTest(t)
	register(t, svc, "short@example.com")
	ctx := context.Background()

	if err := svc.ForgotPassword(ctx, "short@example.com"); err != nil {
		t.Fatalf("ForgotPassword error: %v", err)
	}
	if err := svc.ResetPassword(ctx, "short@example.com", mail.lastCode, "12345"); !errors.Is(err, common.ErrorValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
