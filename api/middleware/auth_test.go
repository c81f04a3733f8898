package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/myryde/myryde-backend/pkg/errors"
)

type fakeSessionChecker struct {
	authenticated bool
	userID        string
}

func (f fakeSessionChecker) IsAuthenticated(context.Context) bool { return f.authenticated }
func (f fakeSessionChecker) CurrentUserID(context.Context) string { return f.userID }

func TestRequireSession_Unauthenticated(t *testing.T) {
	handler := RequireSession(fakeSessionChecker{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error.Code != string(pkgerrors.CodeUnauthorized) {
		t.Fatalf("unexpected code %q", payload.Error.Code)
	}
}

func TestRequireSession_SeedsUserID(t *testing.T) {
	checker := fakeSessionChecker{authenticated: true, userID: "u-1"}
	handler := RequireSession(checker, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := UserIDFromContext(r.Context()); got != "u-1" {
			t.Fatalf("expected user id in context, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireSessionPage_RedirectsToLogin(t *testing.T) {
	handler := RequireSessionPage(fakeSessionChecker{}, "/login")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestRedirectIfAuthenticated(t *testing.T) {
	checker := fakeSessionChecker{authenticated: true, userID: "u-1"}
	handler := RedirectIfAuthenticated(checker, "/dashboard")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}
