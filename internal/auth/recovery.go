package auth

import (
	"context"
	"fmt"
	"time"

	pkgauth "github.com/myryde/myryde-backend/pkg/auth"
	"github.com/myryde/myryde-backend/pkg/config"
	pkgerrors "github.com/myryde/myryde-backend/pkg/errors"
	"github.com/myryde/myryde-backend/pkg/security"
)

// RecoveryService covers the forgot/reset password and verification-resend
// flows. No mailer exists: minted reset tokens are returned to the caller,
// and each entry point sleeps for a configured duration to mimic a mail
// provider round trip.
type RecoveryService interface {
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	ResendVerification(ctx context.Context, email string) error
}

type recoveryService struct {
	store       userStore
	resetCfg    config.ResetTokenConfig
	passwordCfg config.PasswordConfig
	latency     time.Duration
	now         func() time.Time
}

// RecoveryServiceParams packages the dependencies for the recovery flows.
type RecoveryServiceParams struct {
	UserStore      userStore
	ResetToken     config.ResetTokenConfig
	PasswordConfig config.PasswordConfig
	MailLatency    time.Duration
	Now            func() time.Time
}

// NewRecoveryService builds the recovery service with the provided dependencies.
func NewRecoveryService(params RecoveryServiceParams) (RecoveryService, error) {
	if params.UserStore == nil {
		return nil, fmt.Errorf("user store is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &recoveryService{
		store:       params.UserStore,
		resetCfg:    params.ResetToken,
		passwordCfg: params.PasswordConfig,
		latency:     params.MailLatency,
		now:         now,
	}, nil
}

// ForgotPassword mints a reset token for a known email. Unknown emails return
// an empty token with no error so the endpoint cannot be used to enumerate
// accounts; the page shows the same confirmation either way.
func (s *recoveryService) ForgotPassword(ctx context.Context, email string) (string, error) {
	s.simulateMail()

	records, err := s.store.Load(ctx)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "password recovery failed")
	}

	for _, user := range records {
		if user.Email != email {
			continue
		}
		token, err := pkgauth.MintResetToken(s.resetCfg, s.now().UTC(), user.ID, user.Email)
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "password recovery failed")
		}
		return token, nil
	}

	return "", nil
}

func (s *recoveryService) ResetPassword(ctx context.Context, token, newPassword string) error {
	s.simulateMail()

	claims, err := pkgauth.ParseResetToken(s.resetCfg, token)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid or expired reset token")
	}

	if !security.CheckStrength(newPassword).Meets(s.passwordCfg.MinStrengthScore) {
		return pkgerrors.New(pkgerrors.CodeValidation, "password is too weak")
	}

	records, err := s.store.Load(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "password reset failed")
	}

	for i := range records {
		if records[i].ID != claims.UserID {
			continue
		}
		hash, err := security.HashPassword(newPassword, s.passwordCfg)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "password reset failed")
		}
		records[i].PasswordHash = hash
		if err := s.store.Save(ctx, records); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "password reset failed")
		}
		return nil
	}

	return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
}

// ResendVerification always succeeds; there is no verification state to flip.
func (s *recoveryService) ResendVerification(ctx context.Context, email string) error {
	_ = ctx
	_ = email
	s.simulateMail()
	return nil
}

func (s *recoveryService) simulateMail() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}
