// Package storefront assembles the view model for each storefront page.
package storefront

import (
	"context"
	"fmt"

	"github.com/naturesnacks/snackstore/internal/cart"
	"github.com/naturesnacks/snackstore/internal/catalog"
	"github.com/naturesnacks/snackstore/internal/navigation"
	"github.com/naturesnacks/snackstore/pkg/enums"
	"github.com/naturesnacks/snackstore/pkg/logger"
)

const relatedLimit = 4

type cartProvider interface {
	Get(sessionID string) *cart.Store
}

type paymentReadiness interface {
	PaymentReady() bool
}

// View is the rendered page. Exactly one of the page-specific fields is set.
type View struct {
	Page  enums.Page       `json:"page"`
	Route navigation.Route `json:"route"`

	Home     *HomeView     `json:"home,omitempty"`
	Products *ProductsView `json:"products,omitempty"`
	Product  *ProductView  `json:"product,omitempty"`
	Cart     *CartView     `json:"cart,omitempty"`
	Checkout *CheckoutView `json:"checkout,omitempty"`
	Success  *SuccessView  `json:"order_success,omitempty"`
	Content  *Content      `json:"content,omitempty"`
}

type HomeView struct {
	Featured   []catalog.Product  `json:"featured"`
	Categories []catalog.Category `json:"categories"`
}

type ProductsView struct {
	catalog.ListResult
	Categories []string `json:"categories"`
}

type ProductView struct {
	Product         catalog.Product   `json:"product"`
	DiscountPercent int64             `json:"discount_percent"`
	InCart          int               `json:"in_cart"`
	Related         []catalog.Product `json:"related"`
}

type CartView struct {
	cart.Snapshot
	Empty bool `json:"empty"`
}

type CheckoutView struct {
	cart.Snapshot
	Empty        bool `json:"empty"`
	PaymentReady bool `json:"payment_ready"`
}

type SuccessView struct {
	OrderID string `json:"order_id"`
}

// Renderer builds views from the catalog and session state.
type Renderer interface {
	Render(ctx context.Context, sessionID string, route navigation.Route) View
}

type renderer struct {
	carts   cartProvider
	payment paymentReadiness
	logg    *logger.Logger
}

func NewRenderer(carts cartProvider, payment paymentReadiness, logg *logger.Logger) (Renderer, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart provider required")
	}
	if payment == nil {
		return nil, fmt.Errorf("payment readiness required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &renderer{carts: carts, payment: payment, logg: logg}, nil
}

func (r *renderer) Render(ctx context.Context, sessionID string, route navigation.Route) View {
	switch route.Page {
	case enums.PageProducts:
		return View{Page: route.Page, Route: route, Products: r.products(route)}
	case enums.PageProductDetails:
		p, ok := catalog.FindByID(route.Param(navigation.ParamID))
		if !ok {
			r.logg.Debug(r.logg.WithField(ctx, "product_id", route.Param(navigation.ParamID)), "product not found, showing home")
			return r.home()
		}
		return View{Page: route.Page, Route: route, Product: r.product(sessionID, p)}
	case enums.PageCart:
		snap := r.carts.Get(sessionID).Snapshot()
		return View{Page: route.Page, Route: route, Cart: &CartView{Snapshot: snap, Empty: snap.Empty()}}
	case enums.PageCheckout:
		snap := r.carts.Get(sessionID).Snapshot()
		return View{Page: route.Page, Route: route, Checkout: &CheckoutView{
			Snapshot:     snap,
			Empty:        snap.Empty(),
			PaymentReady: r.payment.PaymentReady(),
		}}
	case enums.PageOrderSuccess:
		return View{Page: route.Page, Route: route, Success: &SuccessView{OrderID: route.Param(navigation.ParamOrderID)}}
	case enums.PageHome:
		return r.home()
	}
	if content, ok := StaticContent(route.Page); ok {
		return View{Page: route.Page, Route: route, Content: &content}
	}
	return r.home()
}

func (r *renderer) home() View {
	return View{
		Page:  enums.PageHome,
		Route: navigation.Route{Page: enums.PageHome, Params: map[string]string{}},
		Home:  &HomeView{Featured: catalog.Featured(), Categories: catalog.Categories()},
	}
}

func (r *renderer) products(route navigation.Route) *ProductsView {
	result := catalog.List(catalog.ListInput{
		Query:    route.Param(navigation.ParamSearch),
		Category: route.Param(navigation.ParamCategory),
	})
	return &ProductsView{
		ListResult: result,
		Categories: catalog.CategoryNames(),
	}
}

func (r *renderer) product(sessionID string, p catalog.Product) *ProductView {
	inCart := 0
	for _, line := range r.carts.Get(sessionID).Lines() {
		if line.ProductID == p.ID {
			inCart = line.Quantity
			break
		}
	}
	return &ProductView{
		Product:         p,
		DiscountPercent: catalog.DiscountPercent(p),
		InCart:          inCart,
		Related:         catalog.Related(p, relatedLimit),
	}
}
