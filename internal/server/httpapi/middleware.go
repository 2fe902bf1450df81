package httpapi

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/server/auth"
)

type ctxKey int

const claimsKey ctxKey = 0

// claimsFromContext returns the token claims stored by the auth middleware.
func claimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok
}

// authenticate verifies the bearer token and stores its claims in the
// request context. Requests without a valid token are rejected with 401.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthHeaderName)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			respondError(w, common.ErrorUnauthorized)
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, common.BearerPrefix), s.jwtSecret)
		if err != nil {
			respondError(w, common.ErrorUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// requireRole gates a handler to a single role. Runs after authenticate.
func requireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r.Context())
		if !ok {
			respondError(w, common.ErrorUnauthorized)
			return
		}
		if claims.Role != role {
			respondError(w, common.ErrorForbidden)
			return
		}
		next(w, r)
	}
}

// emailLimiter throttles password-recovery requests per email address so the
// mailer cannot be used to flood an inbox.
type emailLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newEmailLimiter(limit rate.Limit, burst int) *emailLimiter {
	return &emailLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (l *emailLimiter) Allow(email string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[email]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[email] = lim
	}
	return lim.Allow()
}
