package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naturesnacks/snackstore/api/responses"
	"github.com/naturesnacks/snackstore/api/validators"
	"github.com/naturesnacks/snackstore/internal/orders"
	"github.com/naturesnacks/snackstore/pkg/logger"
)

// OrderList returns the session's most recent backed-up order summaries, newest first.
func OrderList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", orders.DefaultRecentLimit, 1, orders.MaxRecentLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		list, err := svc.Recent(r.Context(), sessionID, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if list == nil {
			list = []orders.Summary{}
		}
		responses.WriteSuccess(w, list)
	}
}

// OrderDetail returns one of the session's orders with its tracking timeline.
func OrderDetail(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		tracking, err := svc.Track(r.Context(), sessionID, chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, tracking)
	}
}
