// Package httpapi is the REST transport of the MealMate backend. It decodes
// requests, delegates to the service layer and shapes responses into the
// envelope the mobile app expects.
package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/Yashraj9595/mealmate/internal/logging"
	"github.com/Yashraj9595/mealmate/internal/server/config"
	"github.com/Yashraj9595/mealmate/internal/server/models"
	"github.com/Yashraj9595/mealmate/internal/server/services"
)

type Server struct {
	log          logging.Logger
	jwtSecret    []byte
	imageBaseURL string

	users     *services.UserService
	messes    *services.MessService
	money     *services.MoneyService
	leaves    *services.LeaveService
	dashboard *services.DashboardService
	photos    *services.PhotoService

	forgotLimiter *emailLimiter
}

func NewServer(cfg *config.Config, log logging.Logger,
	users *services.UserService, messes *services.MessService,
	money *services.MoneyService, leaves *services.LeaveService,
	dashboard *services.DashboardService, photos *services.PhotoService,
) *Server {
	s := &Server{
		log:       log,
		jwtSecret: []byte(cfg.SecretKey),
		users:     users,
		messes:    messes,
		money:     money,
		leaves:    leaves,
		dashboard: dashboard,
		photos:    photos,
		// one recovery mail per minute per address, small initial burst
		forgotLimiter: newEmailLimiter(rate.Every(time.Minute), 3),
	}
	if cfg.S3BaseEndpoint != "" {
		s.imageBaseURL = strings.TrimRight(cfg.S3BaseEndpoint, "/") + "/" + cfg.S3Bucket
	}
	return s
}

// Routes assembles the router. All feature endpoints live under /api and,
// except for the auth entry points, require a bearer token.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondMessage(w, "ok")
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", s.login)
		api.Post("/auth/register", s.register)
		api.Post("/auth/forgot-password", s.forgotPassword)
		api.Post("/auth/verify-otp", s.verifyOTP)
		api.Post("/auth/reset-password", s.resetPassword)

		api.Group(func(priv chi.Router) {
			priv.Use(s.authenticate)

			priv.Get("/auth/me", s.me)
			priv.Put("/auth/update", s.updateProfile)
			priv.Post("/auth/create-admin", requireRole(models.RoleAdmin, s.createAdmin))

			priv.Get("/dashboard", s.getDashboard)

			priv.Post("/money/add", s.addMoney)
			priv.Get("/money/transactions", s.listTransactions)

			priv.Get("/mess/list", s.listMesses)
			priv.Post("/mess/subscribe", s.subscribe)
			priv.Get("/mess/{id}/menu", s.getMenu)
			priv.Get("/mess/plans", s.listPlans)
			priv.Get("/mess/announcements", s.listAnnouncements)
			priv.Get("/mess/feedbacks", s.listFeedbacks)
			priv.Post("/mess/feedback", s.submitFeedback)
			priv.Post("/mess/photo-upload", requireRole(models.RoleMessOwner, s.photoUpload))

			priv.Post("/leave/request", s.submitLeave)
			priv.Get("/leave/requests", s.listLeaves)
		})
	})

	return r
}
