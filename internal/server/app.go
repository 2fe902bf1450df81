// Package server initializes and runs the MealMate backend. It wires the
// repository manager, mailer and services into the HTTP API, runs database
// migrations on startup and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Yashraj9595/mealmate/internal/logging"
	"github.com/Yashraj9595/mealmate/internal/server/config"
	"github.com/Yashraj9595/mealmate/internal/server/httpapi"
	"github.com/Yashraj9595/mealmate/internal/server/mailer"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/repomanager"
	"github.com/Yashraj9595/mealmate/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	api    *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	rm, err := repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var mail mailer.Mailer
	if c.MailerAPIKey == "" {
		// development fallback, codes go to the log instead of an inbox
		mail = mailer.NewLogMailer(logger)
	} else {
		mail = mailer.NewResendMailer(c.MailerAPIKey, c.MailerSender)
	}

	us := services.NewUserService(rm, mail, c)
	ms := services.NewMessService(rm)
	mos := services.NewMoneyService(rm)
	ls := services.NewLeaveService(rm)
	ds := services.NewDashboardService(rm)
	ps := services.NewPhotoService(c)

	api := httpapi.NewServer(c, logger, us, ms, mos, ls, ds, ps)

	return &App{config: c, logger: logger, repos: rm, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.api.Routes(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "listening", "addr", app.config.EndpointAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repos.RunMigrations(ctx); err != nil {
		app.logger.Error(ctx, "migrations failed", "error", err)
		return
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if conn := app.repos.Conn(); conn != nil {
		if err := conn.Close(); err != nil {
			app.logger.Error(ctx, "closing db", "error", err)
		}
	}
}
