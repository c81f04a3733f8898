package controllers

import (
	"net/http"

	"github.com/myryde/myryde-backend/api/responses"
	"github.com/myryde/myryde-backend/api/validators"
	"github.com/myryde/myryde-backend/internal/theme"
	pkgerrors "github.com/myryde/myryde-backend/pkg/errors"
	"github.com/myryde/myryde-backend/pkg/logger"
)

type themeRequest struct {
	Theme string `json:"theme" validate:"required"`
}

// ThemeGet returns the stored display preference.
func ThemeGet(store *theme.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := store.Current(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]theme.Theme{"theme": current})
	}
}

// ThemeSet stores a display preference.
func ThemeSet(store *theme.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "theme store unavailable"))
			return
		}

		var body themeRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.Set(r.Context(), theme.Theme(body.Theme)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"theme": body.Theme})
	}
}

// ThemeToggle flips the stored preference.
func ThemeToggle(store *theme.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next, err := store.Toggle(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]theme.Theme{"theme": next})
	}
}
