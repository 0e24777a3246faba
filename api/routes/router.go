package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/naturesnacks/snackstore/api/controllers"
	"github.com/naturesnacks/snackstore/api/middleware"
	"github.com/naturesnacks/snackstore/internal/checkout"
	"github.com/naturesnacks/snackstore/internal/orders"
	"github.com/naturesnacks/snackstore/internal/storefront"
	"github.com/naturesnacks/snackstore/pkg/config"
	"github.com/naturesnacks/snackstore/pkg/logger"
	"github.com/naturesnacks/snackstore/pkg/redis"
)

const checkoutRateLimitName = "checkout"

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	backup controllers.Pinger,
	limiter redis.RateLimiter,
	gatherer prometheus.Gatherer,
	carts controllers.CartProvider,
	renderer storefront.Renderer,
	checkoutService checkout.Service,
	ordersService orders.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.AllowedOrigins),
	)

	checkoutPolicy := middleware.RateLimitPolicy{
		Name:   checkoutRateLimitName,
		Window: cfg.RateLimit.CheckoutWindow,
		Limit:  cfg.RateLimit.CheckoutLimit,
	}
	checkoutLimit := middleware.SessionRateLimit(checkoutPolicy, limiter, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, backup))
	})
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ProductList(logg))
		r.Get("/products/{productId}", controllers.ProductDetail(logg))
		r.Get("/categories", controllers.CategoryList())

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(cfg.Session, logg))

			r.Get("/navigate", controllers.Navigate(renderer, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(carts, logg))
				r.Delete("/", controllers.CartClear(carts, logg))
				r.Get("/events", controllers.CartEvents(carts, logg))
				r.Post("/items", controllers.CartAddItem(carts, logg))
				r.Put("/items/{productId}", controllers.CartUpdateItem(carts, logg))
				r.Delete("/items/{productId}", controllers.CartRemoveItem(carts, logg))
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Get("/", controllers.CheckoutState(checkoutService, logg))
				r.With(checkoutLimit).Post("/", controllers.CheckoutBegin(checkoutService, logg))
				r.With(checkoutLimit).Post("/confirm", controllers.CheckoutConfirm(checkoutService, logg))
				r.With(checkoutLimit).Post("/confirm-manual", controllers.CheckoutConfirmManual(checkoutService, logg))
				r.Post("/dismiss", controllers.CheckoutDismiss(checkoutService, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.OrderList(ordersService, logg))
				r.Get("/{orderId}", controllers.OrderDetail(ordersService, logg))
			})
		})
	})

	return r
}
