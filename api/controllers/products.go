package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naturesnacks/snackstore/api/responses"
	"github.com/naturesnacks/snackstore/api/validators"
	"github.com/naturesnacks/snackstore/internal/catalog"
	pkgerrors "github.com/naturesnacks/snackstore/pkg/errors"
	"github.com/naturesnacks/snackstore/pkg/logger"
)

const (
	maxQueryLen  = 100
	relatedLimit = 4
)

// ProductList filters the catalog by q, category, min_price, max_price and sort.
func ProductList(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		minPrice, err := validators.ParseOptionalInt64(r, "min_price", 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		maxPrice, err := validators.ParseOptionalInt64(r, "max_price", 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result := catalog.List(catalog.ListInput{
			Query:    validators.SanitizeString(q.Get("q"), maxQueryLen),
			Category: validators.SanitizeString(q.Get("category"), maxQueryLen),
			MinPrice: minPrice,
			MaxPrice: maxPrice,
			Sort:     q.Get("sort"),
		})
		responses.WriteSuccess(w, result)
	}
}

type productDetailResponse struct {
	Product         catalog.Product   `json:"product"`
	DiscountPercent int64             `json:"discount_percent"`
	Related         []catalog.Product `json:"related"`
}

func ProductDetail(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "productId")
		p, ok := catalog.FindByID(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, productDetailResponse{
			Product:         p,
			DiscountPercent: catalog.DiscountPercent(p),
			Related:         catalog.Related(p, relatedLimit),
		})
	}
}

func CategoryList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, catalog.Categories())
	}
}
