package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Yashraj9595/mealmate/internal/client/api"
	"github.com/Yashraj9595/mealmate/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates a new account via the
// AuthService. A successful registration also signs the user in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	role, err := getSimpleText(a.reader, "Role (user/mess_owner)", os.Stdout)
	if err != nil {
		return err
	}
	if role == "" {
		role = string(models.RoleUser)
	}
	if !models.Role(role).Valid() || models.Role(role) == models.RoleAdmin {
		fmt.Println("Role must be user or mess_owner")
		return nil
	}

	address, err := getSimpleText(a.reader, "Address (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	user, err := a.authService.Register(ctx, api.RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     models.Role(role),
		Address:  address,
	})
	if err != nil {
		log.Printf("Registration unsuccessful: %s", api.UserMessage(err))
		return err
	}

	fmt.Printf("Welcome, %s!\n", user.Name)
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// On failure the server's message (or a generic fallback) is shown and
// the session state is left untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", api.UserMessage(err))
		return err
	}

	log.Printf("Login successful (%s)", user.Role)
	return nil
}

// Logout clears the persisted credential and in-memory session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

// ForgotPassword walks the email → OTP → new password recovery flow.
// Each step reports server rejections and aborts the flow.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.ForgotPassword(ctx, email); err != nil {
		log.Printf("Request unsuccessful: %s", api.UserMessage(err))
		return err
	}
	fmt.Println("A verification code was sent to your email.")

	otp, err := getSimpleText(a.reader, "Enter verification code", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.VerifyOTP(ctx, email, otp); err != nil {
		log.Printf("Verification unsuccessful: %s", api.UserMessage(err))
		return err
	}

	password, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}

	if err := a.authService.ResetPassword(ctx, email, otp, password); err != nil {
		log.Printf("Reset unsuccessful: %s", api.UserMessage(err))
		return err
	}

	fmt.Println("Password updated, you can log in now.")
	return nil
}
