package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Yashraj9595/mealmate/internal/client/api"
	"github.com/Yashraj9595/mealmate/internal/client/config"
	"github.com/Yashraj9595/mealmate/internal/client/repositories/session"
	"github.com/Yashraj9595/mealmate/internal/client/models"
	"github.com/Yashraj9595/mealmate/internal/client/services"
	"github.com/Yashraj9595/mealmate/internal/client/storage"
)

type App struct {
	config      *config.Config
	client      *api.Client
	authService services.AuthService
	reader      *bufio.Reader
}

// NewApp wires the session store, API client and auth service together.
// The client's token source and 401 hook both point at the auth service,
// so every request carries the current credential and any rejection
// purges it.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	repo := session.NewSQLiteRepository(db)

	var auth services.AuthService
	client := api.New(c.BaseURL, c.RequestTimeout,
		api.WithTokenSource(func(ctx context.Context) string { return auth.Token(ctx) }),
		api.WithAuthFailureHook(func(ctx context.Context) { auth.HandleAuthFailure(ctx) }),
	)
	auth = services.NewAuthService(client, repo)

	return &App{config: c, client: client, authService: auth, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.authService.State() == services.StateAuthenticated
}

// getStatus renders the REPL prompt suffix, e.g. "(user@test.com user)".
func (a *App) getStatus() string {
	u := a.authService.CurrentUser()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Email, u.Role)
}

// Run restores a persisted session (if any) and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.authService.Restore(ctx); err != nil {
		log.Printf("session restore: %s", api.UserMessage(err))
	}
	if u := a.authService.CurrentUser(); u != nil {
		log.Printf("Welcome back, %s", u.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// currentRole reports the caller's role, or empty when logged out.
func (a *App) currentRole() models.Role {
	u := a.authService.CurrentUser()
	if u == nil {
		return ""
	}
	return u.Role
}
