package middleware

import (
	"context"
	"net/http"

	"github.com/myryde/myryde-backend/api/responses"
	pkgerrors "github.com/myryde/myryde-backend/pkg/errors"
	"github.com/myryde/myryde-backend/pkg/logger"
)

// SessionChecker reports whether a signed-in user exists and, when one does,
// identifies it. The auth service's session pointer satisfies this.
type SessionChecker interface {
	IsAuthenticated(ctx context.Context) bool
	CurrentUserID(ctx context.Context) string
}

// RequireSession guards JSON API routes. Requests without a current session
// get a 401 envelope; authenticated requests continue with the user id seeded
// into the context and log fields.
func RequireSession(checker SessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if !checker.IsAuthenticated(ctx) {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in required"))
				return
			}

			userID := checker.CurrentUserID(ctx)
			ctx = WithUserID(ctx, userID)
			if logg != nil && userID != "" {
				ctx = logg.WithFields(ctx, map[string]any{"user_id": userID})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSessionPage guards server-rendered pages. Requests without a current
// session are redirected to the login page with 303 See Other.
func RequireSessionPage(checker SessionChecker, loginPath string) func(http.Handler) http.Handler {
	if loginPath == "" {
		loginPath = "/login"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if !checker.IsAuthenticated(ctx) {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, checker.CurrentUserID(ctx))))
		})
	}
}

// RedirectIfAuthenticated sends signed-in users away from guest-only pages,
// such as login and signup, to the dashboard.
func RedirectIfAuthenticated(checker SessionChecker, target string) func(http.Handler) http.Handler {
	if target == "" {
		target = "/dashboard"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if checker.IsAuthenticated(r.Context()) {
				http.Redirect(w, r, target, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
