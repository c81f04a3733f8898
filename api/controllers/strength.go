package controllers

import (
	"net/http"

	"github.com/myryde/myryde-backend/api/responses"
	"github.com/myryde/myryde-backend/api/validators"
	"github.com/myryde/myryde-backend/pkg/logger"
	"github.com/myryde/myryde-backend/pkg/security"
)

type strengthRequest struct {
	Password string `json:"password" validate:"required"`
}

type strengthResponse struct {
	Score    int      `json:"score"`
	Label    string   `json:"label"`
	Color    string   `json:"color"`
	Feedback []string `json:"feedback"`
}

// PasswordStrength scores a candidate password for the signup meter.
func PasswordStrength(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body strengthRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		strength := security.CheckStrength(body.Password)
		responses.WriteSuccess(w, strengthResponse{
			Score:    strength.Score,
			Label:    strength.Label(),
			Color:    strength.Color(),
			Feedback: strength.Feedback,
		})
	}
}
