package handlers

import (
	"net/http"

	"github.com/myryde/myryde-backend/api/responses"
	"github.com/myryde/myryde-backend/pkg/config"
	pkgerrors "github.com/myryde/myryde-backend/pkg/errors"
	"github.com/myryde/myryde-backend/pkg/kv"
	"github.com/myryde/myryde-backend/pkg/logger"
)

// Healthz reports process liveness.
func Healthz(cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithFields(r.Context(), map[string]any{
			"env":  cfg.App.Env,
			"path": r.URL.Path,
		})
		logg.Info(ctx, "health.check")

		w.Header().Set("X-MyRyde-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// Readyz reports readiness, including the storage dependency.
func Readyz(cfg *config.Config, pinger kv.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MyRyde-Env", cfg.App.Env)

		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storage unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
