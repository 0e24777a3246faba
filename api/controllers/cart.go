package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naturesnacks/snackstore/api/middleware"
	"github.com/naturesnacks/snackstore/api/responses"
	"github.com/naturesnacks/snackstore/api/validators"
	"github.com/naturesnacks/snackstore/internal/cart"
	"github.com/naturesnacks/snackstore/internal/catalog"
	pkgerrors "github.com/naturesnacks/snackstore/pkg/errors"
	"github.com/naturesnacks/snackstore/pkg/logger"
)

// CartProvider returns the cart owned by a session.
type CartProvider interface {
	Get(sessionID string) *cart.Store
}

func sessionCart(w http.ResponseWriter, r *http.Request, carts CartProvider, logg *logger.Logger) (*cart.Store, bool) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session missing"))
		return nil, false
	}
	return carts.Get(sessionID), true
}

func CartFetch(carts CartProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionCart(w, r, carts, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, store.Snapshot())
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1,max=99"`
}

// CartAddItem adds quantity units of a product, merging with an existing line.
func CartAddItem(carts CartProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionCart(w, r, carts, logg)
		if !ok {
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		p, found := catalog.FindByID(payload.ProductID)
		if !found {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		if !p.InStock {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeStateConflict, "Product is out of stock").
				WithDetails(map[string]string{"product_id": p.ID}))
			return
		}

		quantity := payload.Quantity
		if quantity == 0 {
			quantity = 1
		}
		store.AddItems(p, quantity)
		responses.WriteSuccessStatus(w, http.StatusCreated, store.Snapshot())
	}
}

type updateItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0,max=99"`
}

// CartUpdateItem sets a line's quantity; zero removes the line.
func CartUpdateItem(carts CartProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionCart(w, r, carts, logg)
		if !ok {
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.UpdateQuantity(chi.URLParam(r, "productId"), payload.Quantity)
		responses.WriteSuccess(w, store.Snapshot())
	}
}

func CartRemoveItem(carts CartProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionCart(w, r, carts, logg)
		if !ok {
			return
		}
		store.RemoveItem(chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, store.Snapshot())
	}
}

func CartClear(carts CartProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionCart(w, r, carts, logg)
		if !ok {
			return
		}
		store.ClearCart()
		responses.WriteSuccess(w, store.Snapshot())
	}
}
