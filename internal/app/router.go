package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/config"
	"github.com/peaklearn/peaklearn-backend/internal/transport/middleware"
	"github.com/peaklearn/peaklearn-backend/internal/transport/rest"
)

// tokenValidator resolves an access token to a user ID.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Logger      *slog.Logger
	Tokens      tokenValidator
	CORS        config.CORSConfig
	RateLimiter *middleware.RateLimiter
	// AuthPerMinute limits unauthenticated auth endpoints per client IP.
	// Zero disables the limit.
	AuthPerMinute int

	Health     *rest.HealthHandler
	Auth       *rest.AuthHandler
	User       *rest.UserHandler
	Documents  *rest.DocumentHandler
	StudyPlans *rest.StudyPlanHandler
}

// NewRouter builds the HTTP routing tree. Health probes sit outside the API
// middleware so they stay cheap and unauthenticated.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	api := middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
		middleware.Logger(d.Logger),
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(api)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if d.RateLimiter != nil && d.AuthPerMinute > 0 {
					r.Use(d.RateLimiter.Limit(d.AuthPerMinute))
				}
				r.Post("/signup", d.Auth.Signup)
				r.Post("/login", d.Auth.Login)
				r.Post("/refresh", d.Auth.Refresh)
				r.Post("/forgot-password", d.Auth.ForgotPassword)
			})
			r.With(middleware.RequireUser).Post("/logout", d.Auth.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Get("/user/me", d.User.Me)
			r.Put("/user/profile", d.User.UpdateProfile)
			r.Put("/user/password", d.User.ChangePassword)

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", d.Documents.List)
				r.Post("/upload", d.Documents.Upload)
				r.Get("/{id}", d.Documents.Get)
				r.Get("/{id}/download", d.Documents.Download)
				r.Delete("/{id}", d.Documents.Delete)
			})

			r.Route("/study-plans", func(r chi.Router) {
				r.Get("/", d.StudyPlans.List)
				r.Get("/{planId}", d.StudyPlans.Get)
				r.Patch("/{planId}", d.StudyPlans.SetPlanCompletion)
				r.Get("/{planId}/history", d.StudyPlans.History)
				r.Patch("/{planId}/topics/{topicIndex}", d.StudyPlans.SetTopicCompletion)
			})
		})
	})

	return r
}
