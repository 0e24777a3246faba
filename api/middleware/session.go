package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/naturesnacks/snackstore/api/responses"
	"github.com/naturesnacks/snackstore/pkg/config"
	pkgerrors "github.com/naturesnacks/snackstore/pkg/errors"
	"github.com/naturesnacks/snackstore/pkg/logger"
	"github.com/naturesnacks/snackstore/pkg/session"
)

const SessionTokenHeader = "X-Session-Token"

// Session resolves the anonymous storefront session. Requests without a token get a
// freshly minted one in the response header; a token that fails verification is rejected.
func Session(cfg config.SessionConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			raw := strings.TrimSpace(r.Header.Get(SessionTokenHeader))

			var sessionID string
			if raw == "" {
				id := uuid.New()
				token, err := session.Mint(cfg, time.Now(), id)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "issue session"))
					return
				}
				sessionID = id.String()
				w.Header().Set(SessionTokenHeader, token)
			} else {
				claims, err := session.Parse(cfg, raw)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid session token"))
					return
				}
				sessionID = claims.SessionID.String()
			}

			ctx = WithSessionID(ctx, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
