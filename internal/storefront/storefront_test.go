package storefront

import (
	"context"
	"testing"

	"github.com/naturesnacks/snackstore/internal/cart"
	"github.com/naturesnacks/snackstore/internal/catalog"
	"github.com/naturesnacks/snackstore/internal/navigation"
	"github.com/naturesnacks/snackstore/pkg/enums"
	"github.com/naturesnacks/snackstore/pkg/logger"
)

type readiness bool

func (r readiness) PaymentReady() bool { return bool(r) }

func newTestRenderer(t *testing.T, ready bool) (Renderer, *cart.Registry) {
	t.Helper()
	carts := cart.NewRegistry()
	r, err := NewRenderer(carts, readiness(ready), logger.Nop())
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r, carts
}

func TestRenderHome(t *testing.T) {
	r, _ := newTestRenderer(t, true)
	view := r.Render(context.Background(), "s1", navigation.Navigate("home"))
	if view.Page != enums.PageHome || view.Home == nil {
		t.Fatalf("expected home view, got %+v", view)
	}
	if len(view.Home.Featured) != 8 {
		t.Fatalf("expected 8 featured products, got %d", len(view.Home.Featured))
	}
}

func TestRenderProductsUsesParams(t *testing.T) {
	r, _ := newTestRenderer(t, true)
	view := r.Render(context.Background(), "s1", navigation.Navigate("products?category=Nuts"))
	if view.Products == nil {
		t.Fatal("expected products view")
	}
	if view.Products.Category != "Nuts" || view.Products.Total == 0 {
		t.Fatalf("unexpected listing %+v", view.Products.ListResult)
	}
	for _, p := range view.Products.Products {
		if p.Category != "Nuts" {
			t.Fatalf("unexpected product %s in Nuts listing", p.ID)
		}
	}
	if view.Products.Categories[0] != catalog.AllCategories {
		t.Fatalf("expected All first, got %v", view.Products.Categories)
	}
}

func TestRenderProductDetails(t *testing.T) {
	r, carts := newTestRenderer(t, true)
	p, _ := catalog.FindByID("1")
	carts.Get("s1").AddItems(p, 3)

	view := r.Render(context.Background(), "s1", navigation.Navigate("product-details?id=1"))
	if view.Product == nil {
		t.Fatalf("expected product view, got %+v", view)
	}
	if view.Product.InCart != 3 {
		t.Fatalf("expected 3 in cart, got %d", view.Product.InCart)
	}
	if view.Product.DiscountPercent != 14 {
		t.Fatalf("expected 14%% discount, got %d", view.Product.DiscountPercent)
	}
	for _, rel := range view.Product.Related {
		if rel.ID == p.ID || rel.Category != p.Category {
			t.Fatalf("unexpected related product %+v", rel)
		}
	}
}

func TestRenderProductDetailsFallsBackToHome(t *testing.T) {
	r, _ := newTestRenderer(t, true)
	for _, target := range []string{"product-details", "product-details?id=missing"} {
		if view := r.Render(context.Background(), "s1", navigation.Navigate(target)); view.Page != enums.PageHome {
			t.Fatalf("%s: expected home, got %s", target, view.Page)
		}
	}
}

func TestRenderCheckout(t *testing.T) {
	r, carts := newTestRenderer(t, false)
	view := r.Render(context.Background(), "s1", navigation.Navigate("checkout"))
	if view.Checkout == nil || !view.Checkout.Empty || view.Checkout.PaymentReady {
		t.Fatalf("expected empty checkout without payment, got %+v", view.Checkout)
	}

	p, _ := catalog.FindByID("5")
	carts.Get("s1").AddItem(p)
	view = r.Render(context.Background(), "s1", navigation.Navigate("checkout"))
	if view.Checkout.Empty || view.Checkout.Total != 648 {
		t.Fatalf("unexpected checkout view %+v", view.Checkout)
	}
}

func TestRenderOrderSuccessAndStatic(t *testing.T) {
	r, _ := newTestRenderer(t, true)
	view := r.Render(context.Background(), "s1", navigation.Navigate("order-success?orderId=NS1ABCDE"))
	if view.Success == nil || view.Success.OrderID != "NS1ABCDE" {
		t.Fatalf("unexpected success view %+v", view)
	}

	for _, page := range []enums.Page{enums.PageProfile, enums.PageTrackOrder, enums.PageAbout, enums.PageContact, enums.PagePrivacy, enums.PageTerms, enums.PageRefund} {
		view := r.Render(context.Background(), "s1", navigation.Navigate(page.String()))
		if view.Page != page || view.Content == nil || view.Content.Title == "" {
			t.Fatalf("%s: expected static content, got %+v", page, view)
		}
	}
}
