package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/naturesnacks/snackstore/api/responses"
	"github.com/naturesnacks/snackstore/pkg/config"
	pkgerrors "github.com/naturesnacks/snackstore/pkg/errors"
	"github.com/naturesnacks/snackstore/pkg/logger"
)

const readyTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Snackstore-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the order backup store.
func HealthReady(cfg *config.Config, logg *logger.Logger, backup Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Snackstore-Env", cfg.App.Env)
		if backup != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
			defer cancel()
			if err := backup.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "backup store unavailable").
					WithDetails(map[string]string{"dependency": cfg.Backup.Driver}))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready", "backup": cfg.Backup.Driver})
	}
}
