package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/server/auth"
	"github.com/Yashraj9595/mealmate/internal/server/config"
	"github.com/Yashraj9595/mealmate/internal/server/mailer"
	"github.com/Yashraj9595/mealmate/internal/server/models"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/repomanager"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Address  string
}

type UserService struct {
	repomanager           repomanager.RepositoryManager
	mailer                mailer.Mailer
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	otpValidityDuration   time.Duration
	otpLength             int
}

func NewUserService(m repomanager.RepositoryManager, mail mailer.Mailer, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:           m,
		mailer:                mail,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		otpValidityDuration:   cfg.OTPValidityDuration,
		otpLength:             cfg.OTPLength,
	}
}

func (s *UserService) hashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

func (s *UserService) generateToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.tokenValidityDuration)
}

// Register creates an account and returns it together with a signed token,
// so new users land in an authenticated session. Admin accounts cannot be
// self-registered; see CreateAdmin.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	if in.Role == "" {
		in.Role = models.RoleUser
	}
	if in.Role == models.RoleAdmin || !models.ValidRole(in.Role) {
		return nil, "", fmt.Errorf("%w: role %q", common.ErrorValidation, in.Role)
	}
	if in.Name == "" || in.Email == "" || len(in.Password) < 6 {
		return nil, "", fmt.Errorf("%w: name, email and a password of at least 6 characters are required", common.ErrorValidation)
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	user, err := s.repomanager.Users().Create(ctx, &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Address:      in.Address,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", fmt.Errorf("%w: email already registered", common.ErrorAlreadyExists)
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// CreateAdmin provisions an admin account. The HTTP layer restricts this
// operation to authenticated admins.
func (s *UserService) CreateAdmin(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" || len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: name, email and a password of at least 6 characters are required", common.ErrorValidation)
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := s.repomanager.Users().Create(ctx, &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Address:      in.Address,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, fmt.Errorf("%w: email already registered", common.ErrorAlreadyExists)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.repomanager.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users().GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, name, address *string) (*models.User, error) {
	if name == nil && address == nil {
		return nil, fmt.Errorf("%w: nothing to update", common.ErrorValidation)
	}
	if name != nil && *name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", common.ErrorValidation)
	}
	return s.repomanager.Users().UpdateProfile(ctx, userID, name, address)
}

// ForgotPassword issues a recovery code and emails it. To avoid disclosing
// which addresses are registered, an unknown email succeeds silently.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := s.repomanager.Users().GetByEmail(ctx, email); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return common.ErrorInternal
	}

	code, err := common.MakeRandDigitCode(s.otpLength)
	if err != nil {
		return common.ErrorInternal
	}

	err = s.repomanager.ResetCodes().Upsert(ctx, &models.ResetCode{
		Email:   email,
		Code:    code,
		Expires: time.Now().Add(s.otpValidityDuration),
	})
	if err != nil {
		return common.ErrorInternal
	}

	if err := s.mailer.SendResetCode(ctx, email, code); err != nil {
		return fmt.Errorf("sending reset code: %w", err)
	}
	return nil
}

// VerifyOTP checks a recovery code without consuming it, so the client can
// validate user input before asking for the new password.
func (s *UserService) VerifyOTP(ctx context.Context, email, code string) error {
	stored, err := s.repomanager.ResetCodes().Find(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrCodeMismatch
		}
		return common.ErrorInternal
	}

	if time.Now().After(stored.Expires) {
		return common.ErrCodeExpired
	}
	if subtle.ConstantTimeCompare([]byte(stored.Code), []byte(code)) != 1 {
		return common.ErrCodeMismatch
	}
	return nil
}

// ResetPassword re-verifies the code, replaces the password and consumes
// the code so it cannot be replayed.
func (s *UserService) ResetPassword(ctx context.Context, email, code, password string) error {
	if err := s.VerifyOTP(ctx, email, code); err != nil {
		return err
	}
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", common.ErrorValidation)
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return common.ErrorInternal
	}

	if err := s.repomanager.Users().UpdatePassword(ctx, email, hash); err != nil {
		return common.ErrorInternal
	}

	return s.repomanager.ResetCodes().Delete(ctx, email)
}
