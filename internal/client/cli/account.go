package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Yashraj9595/mealmate/internal/client/api"
)

// Profile prints the cached account details of the current session.
func (a *App) Profile(ctx context.Context) error {
	u := a.authService.CurrentUser()
	if u == nil {
		fmt.Println("Not logged in")
		return nil
	}

	fmt.Printf("Name:    %s\n", u.Name)
	fmt.Printf("Email:   %s\n", u.Email)
	fmt.Printf("Role:    %s\n", u.Role)
	fmt.Printf("Balance: %.2f\n", u.Balance)
	if u.Address != "" {
		fmt.Printf("Address: %s\n", u.Address)
	}
	if u.MessDetails != nil {
		fmt.Printf("Mess:    %s (%s), rating %.1f\n",
			u.MessDetails.Description, u.MessDetails.Location, u.MessDetails.Rating)
	}
	return nil
}

// UpdateProfile prompts for new profile values. Empty input keeps the
// current value; fields the user skips are left out of the request.
func (a *App) UpdateProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	address, err := getSimpleText(a.reader, "New address (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	var in api.UpdateProfileInput
	if name != "" {
		in.Name = &name
	}
	if address != "" {
		in.Address = &address
	}
	if in.Name == nil && in.Address == nil {
		fmt.Println("Nothing to update")
		return nil
	}

	u, err := a.authService.UpdateProfile(ctx, in)
	if err != nil {
		log.Printf("Update unsuccessful: %s", api.UserMessage(err))
		return err
	}

	fmt.Printf("Profile updated: %s\n", u.Name)
	return nil
}
