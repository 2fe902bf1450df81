package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Yashraj9595/mealmate/internal/client/api"
	"github.com/Yashraj9595/mealmate/internal/client/models"
)

// CreateAdmin provisions another admin account. The server enforces that
// only admins may call this; the local role check just saves a round trip.
func (a *App) CreateAdmin(ctx context.Context) error {
	if a.currentRole() != models.RoleAdmin {
		fmt.Println("Only admins can create admin accounts")
		return nil
	}

	name, err := getSimpleText(a.reader, "Admin name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Admin email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Admin password")
	if err != nil {
		return err
	}

	if err := a.authService.CreateAdmin(ctx, api.RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     models.RoleAdmin,
	}); err != nil {
		log.Printf("Creation unsuccessful: %s", api.UserMessage(err))
		return err
	}

	fmt.Println("Admin account created")
	return nil
}
