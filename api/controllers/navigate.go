package controllers

import (
	"net/http"

	"github.com/naturesnacks/snackstore/api/middleware"
	"github.com/naturesnacks/snackstore/api/responses"
	"github.com/naturesnacks/snackstore/internal/navigation"
	"github.com/naturesnacks/snackstore/internal/storefront"
	"github.com/naturesnacks/snackstore/pkg/logger"
)

// Navigate resolves ?to=<page>?<params> and renders the resulting view.
func Navigate(renderer storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route, err := navigation.Parse(r.URL.Query().Get("to"))
		if err != nil && logg != nil {
			logg.Debug(logg.WithField(r.Context(), "error", err.Error()), "navigate target has malformed parameters")
		}
		view := renderer.Render(r.Context(), middleware.SessionIDFromContext(r.Context()), route)
		if logg != nil {
			logg.Debug(logg.WithField(r.Context(), "page", view.Page.String()), "navigate")
		}
		responses.WriteSuccess(w, view)
	}
}
