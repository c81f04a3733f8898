package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/myryde/myryde-backend/api/pages"
	"github.com/myryde/myryde-backend/internal/auth"
	"github.com/myryde/myryde-backend/internal/booking"
	"github.com/myryde/myryde-backend/internal/session"
	"github.com/myryde/myryde-backend/internal/theme"
	"github.com/myryde/myryde-backend/internal/users"
	"github.com/myryde/myryde-backend/pkg/config"
	"github.com/myryde/myryde-backend/pkg/kv"
	"github.com/myryde/myryde-backend/pkg/logger"
)

func buildRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{Env: "test"},
		Storage: config.StorageConfig{
			UsersKey:       "myryde_users",
			CurrentUserKey: "myryde_current_user",
			ThemeKey:       "myryde-theme",
		},
		ResetToken: config.ResetTokenConfig{Secret: "secret", Issuer: "myryde", TTLMinutes: 15},
		Password: config.PasswordConfig{
			ArgonMemoryKB:    8,
			ArgonTime:        1,
			ArgonParallelism: 1,
			ArgonSaltLen:     8,
			ArgonKeyLen:      16,
			MinStrengthScore: 3,
		},
		Booking: config.BookingConfig{WhatsAppNumber: "2348109600178"},
	}

	mem := kv.NewMemory()
	ptr, err := session.NewPointer(mem, cfg.Storage.CurrentUserKey)
	if err != nil {
		t.Fatalf("new pointer: %v", err)
	}
	store := users.NewStore(mem, cfg.Storage.UsersKey)

	authSvc, err := auth.NewService(auth.ServiceParams{
		UserStore:      store,
		SessionPointer: ptr,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	recoverySvc, err := auth.NewRecoveryService(auth.RecoveryServiceParams{
		UserStore:      store,
		ResetToken:     cfg.ResetToken,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		t.Fatalf("new recovery service: %v", err)
	}
	themeStore, err := theme.NewStore(mem, cfg.Storage.ThemeKey)
	if err != nil {
		t.Fatalf("new theme store: %v", err)
	}
	bookingSvc := booking.NewService(cfg.Booking)

	renderer, err := pages.NewRenderer(authSvc, bookingSvc, themeStore, cfg.Password, nil)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	return NewRouter(Deps{
		Config:   cfg,
		Logger:   logger.New(logger.Options{Output: io.Discard}),
		Pinger:   mem,
		Auth:     authSvc,
		Recovery: recoverySvc,
		Booking:  bookingSvc,
		Theme:    themeStore,
		Pages:    renderer,
		Registry: prometheus.NewRegistry(),
	})
}

func TestRouterHealthAndMetrics(t *testing.T) {
	router := buildRouter(t)

	for _, path := range []string{"/health/live", "/health/ready", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouterHomeRenders(t *testing.T) {
	router := buildRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "wa.me") {
		t.Fatal("homepage missing quick link")
	}
}

func TestRouterGuardsPagesAndAPI(t *testing.T) {
	router := buildRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 for guest dashboard, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rides/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest API, got %d", rec.Code)
	}
}

func TestRouterRegisterThenMe(t *testing.T) {
	router := buildRouter(t)

	body := `{
		"fullName": "Ade Bello",
		"username": "ade",
		"email": "a@x.com",
		"phone": "+2348012345678",
		"password": "Abcdef1!",
		"location": "Ogbomoso",
		"gender": "male",
		"agreeToTerms": true
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"a@x.com"`) {
		t.Fatalf("unexpected me payload %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard: expected 200 once signed in, got %d", rec.Code)
	}
}
