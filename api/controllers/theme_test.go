package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/myryde/myryde-backend/internal/theme"
	"github.com/myryde/myryde-backend/pkg/kv"
)

func buildThemeStore(t *testing.T) *theme.Store {
	t.Helper()
	store, err := theme.NewStore(kv.NewMemory(), "myryde-theme")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestThemeGetDefaultsToLight(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/theme", nil)
	rec := httptest.NewRecorder()
	ThemeGet(buildThemeStore(t), nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"theme":"light"`) {
		t.Fatalf("unexpected payload %s", rec.Body.String())
	}
}

func TestThemeSetAndToggle(t *testing.T) {
	store := buildThemeStore(t)

	rec := postJSON(t, ThemeSet(store, nil), "/api/v1/theme", `{"theme":"dark"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/theme/toggle", nil)
	toggleRec := httptest.NewRecorder()
	ThemeToggle(store, nil).ServeHTTP(toggleRec, req)
	if toggleRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", toggleRec.Code)
	}
	if !strings.Contains(toggleRec.Body.String(), `"theme":"light"`) {
		t.Fatalf("toggle from dark should yield light: %s", toggleRec.Body.String())
	}
}

func TestThemeSetRejectsUnknownValue(t *testing.T) {
	rec := postJSON(t, ThemeSet(buildThemeStore(t), nil), "/api/v1/theme", `{"theme":"sepia"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
