package auth

import (
	"context"
	"testing"

	"github.com/myryde/myryde-backend/internal/users"
	"github.com/myryde/myryde-backend/pkg/config"
	pkgerrors "github.com/myryde/myryde-backend/pkg/errors"
	"github.com/myryde/myryde-backend/pkg/kv"
	"github.com/myryde/myryde-backend/pkg/security"
)

var testResetCfg = config.ResetTokenConfig{
	Secret:     "test-reset-secret",
	Issuer:     "myryde-api",
	TTLMinutes: 30,
}

func buildRecoveryService(t *testing.T, store userStore) RecoveryService {
	t.Helper()
	svc, err := NewRecoveryService(RecoveryServiceParams{
		UserStore:      store,
		ResetToken:     testResetCfg,
		PasswordConfig: testPasswordCfg,
	})
	if err != nil {
		t.Fatalf("new recovery service: %v", err)
	}
	return svc
}

func seedUserStore(t *testing.T, mem *kv.Memory) *users.Store {
	t.Helper()
	store := users.NewStore(mem, usersKey)
	err := store.Save(context.Background(), []users.User{{
		ID:       "u-1",
		FullName: "Ade Bello",
		Username: "ade",
		Email:    "a@x.com",
		Phone:    "+2348012345678",
		JoinDate: "2025-01-01T00:00:00Z",
	}})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := buildRecoveryService(t, seedUserStore(t, kv.NewMemory()))

	token, err := svc.ForgotPassword(ctx, "nobody@x.com")
	if err != nil {
		t.Fatalf("unknown email should not error: %v", err)
	}
	if token != "" {
		t.Fatalf("unknown email should mint no token, got %q", token)
	}
}

func TestForgotResetRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	store := seedUserStore(t, mem)
	svc := buildRecoveryService(t, store)

	token, err := svc.ForgotPassword(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("forgot: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token for a known email")
	}

	if err := svc.ResetPassword(ctx, token, "Abcdef1!"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	records, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 1 || records[0].PasswordHash == "" {
		t.Fatalf("expected a stored hash after reset: %+v", records)
	}
	ok, err := security.VerifyPassword("Abcdef1!", records[0].PasswordHash)
	if err != nil || !ok {
		t.Fatalf("new password should verify against stored hash: ok=%v err=%v", ok, err)
	}
}

func TestResetPasswordInvalidToken(t *testing.T) {
	ctx := context.Background()
	svc := buildRecoveryService(t, seedUserStore(t, kv.NewMemory()))

	err := svc.ResetPassword(ctx, "not-a-token", "Abcdef1!")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestResetPasswordWeakPassword(t *testing.T) {
	ctx := context.Background()
	svc := buildRecoveryService(t, seedUserStore(t, kv.NewMemory()))

	token, err := svc.ForgotPassword(ctx, "a@x.com")
	if err != nil || token == "" {
		t.Fatalf("forgot: token=%q err=%v", token, err)
	}

	err = svc.ResetPassword(ctx, token, "abc")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResendVerificationAlwaysSucceeds(t *testing.T) {
	svc := buildRecoveryService(t, seedUserStore(t, kv.NewMemory()))
	if err := svc.ResendVerification(context.Background(), "nobody@x.com"); err != nil {
		t.Fatalf("resend: %v", err)
	}
}
