package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/myryde/myryde-backend/pkg/config"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// ResetTokenClaims is the payload carried by a password-reset token.
type ResetTokenClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// MintResetToken issues a signed, short-lived token that authorizes a single
// password reset for the given account.
func MintResetToken(cfg config.ResetTokenConfig, now time.Time, userID, email string) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("reset token secret is required")
	}
	if cfg.Issuer == "" {
		return "", fmt.Errorf("reset token issuer is required")
	}
	if cfg.TTL() <= 0 {
		return "", fmt.Errorf("reset token ttl must be positive")
	}
	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("user id is required")
	}

	claims := ResetTokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL())),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing reset token: %w", err)
	}
	return signed, nil
}

// ParseResetToken validates the token string and returns typed claims.
func ParseResetToken(cfg config.ResetTokenConfig, tokenString string) (*ResetTokenClaims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("reset token secret is required")
	}

	claims := &ResetTokenClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		return nil, err
	}

	return claims, nil
}
