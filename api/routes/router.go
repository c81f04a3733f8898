package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/myryde/myryde-backend/api/controllers"
	"github.com/myryde/myryde-backend/api/handlers"
	"github.com/myryde/myryde-backend/api/middleware"
	"github.com/myryde/myryde-backend/api/pages"
	"github.com/myryde/myryde-backend/internal/auth"
	"github.com/myryde/myryde-backend/internal/booking"
	"github.com/myryde/myryde-backend/internal/theme"
	"github.com/myryde/myryde-backend/pkg/config"
	"github.com/myryde/myryde-backend/pkg/kv"
	"github.com/myryde/myryde-backend/pkg/logger"
	"github.com/myryde/myryde-backend/pkg/metrics"
)

// Deps bundles everything the router wires together.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Pinger      kv.Pinger
	RateLimiter *kv.RedisStore
	Auth        auth.Service
	Recovery    auth.RecoveryService
	Booking     *booking.Service
	Theme       *theme.Store
	Pages       *pages.Renderer
	Registry    *prometheus.Registry
}

// sessionChecker adapts the auth service to the route-guard middleware.
type sessionChecker struct {
	svc auth.Service
}

func (s sessionChecker) IsAuthenticated(ctx context.Context) bool {
	return s.svc.IsAuthenticated(ctx)
}

func (s sessionChecker) CurrentUserID(ctx context.Context) string {
	if user, ok := s.svc.CurrentUser(ctx); ok {
		return user.ID
	}
	return ""
}

// NewRouter assembles the full HTTP surface: health, metrics, pages, and the
// JSON API.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(deps.Registry)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		httpMetrics.Middleware,
		middleware.CORS(),
	)

	checker := sessionChecker{svc: deps.Auth}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginIDLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterIDLimit,
	)

	// The limiter is absent when running against the in-memory store.
	throttle := func(policy middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
		if deps.RateLimiter == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return middleware.AuthRateLimit(policy, deps.RateLimiter, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", handlers.Healthz(cfg, logg))
		r.Get("/ready", handlers.Readyz(cfg, deps.Pinger, logg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(throttle(loginPolicy)).Post("/login", controllers.AuthLogin(deps.Auth, logg))
		r.With(throttle(registerPolicy)).Post("/register", controllers.AuthRegister(deps.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(deps.Auth, logg))
		r.Post("/password-strength", controllers.PasswordStrength(logg))
		r.Post("/forgot-password", controllers.AuthForgotPassword(deps.Recovery, logg))
		r.Post("/reset-password", controllers.AuthResetPassword(deps.Recovery, logg))
		r.Post("/resend-verification", controllers.AuthResendVerification(deps.Recovery, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(checker, logg))
			r.Get("/me", controllers.AuthMe(deps.Auth, logg))
			r.Post("/profile", controllers.AuthUpdateProfile(deps.Auth, logg))
		})
	})

	r.Route("/api/v1/bookings", func(r chi.Router) {
		r.Get("/options", controllers.BookingOptions(deps.Booking))
		r.With(middleware.RequireSession(checker, logg)).Post("/handoff", controllers.BookingHandoff(deps.Booking, deps.Auth, logg))
	})

	r.Route("/api/v1/rides", func(r chi.Router) {
		r.Use(middleware.RequireSession(checker, logg))
		r.Get("/", controllers.RideHistory())
	})

	r.Route("/api/v1/theme", func(r chi.Router) {
		r.Get("/", controllers.ThemeGet(deps.Theme, logg))
		r.Post("/", controllers.ThemeSet(deps.Theme, logg))
		r.Post("/toggle", controllers.ThemeToggle(deps.Theme, logg))
	})

	if deps.Pages != nil {
		p := deps.Pages

		r.Handle("/static/*", pages.Static())
		r.Get("/", p.Home)
		r.Post("/logout", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			_ = deps.Auth.Logout(req.Context())
			http.Redirect(w, req, "/", http.StatusSeeOther)
		}))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RedirectIfAuthenticated(checker, "/dashboard"))
			r.Get("/login", p.Login)
			r.Get("/signup", p.Signup)
		})

		r.Get("/forgot-password", p.ForgotPassword)
		r.Get("/reset-password", p.ResetPassword)
		r.Get("/verify-email", p.VerifyEmail)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSessionPage(checker, "/login"))
			r.Get("/dashboard", p.Dashboard)
			r.Post("/dashboard/book", p.BookRide)
			r.Get("/settings", p.Settings)
		})
	}

	return r
}
