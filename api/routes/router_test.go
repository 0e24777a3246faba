package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/naturesnacks/snackstore/api/middleware"
	"github.com/naturesnacks/snackstore/internal/cart"
	"github.com/naturesnacks/snackstore/internal/checkout"
	"github.com/naturesnacks/snackstore/internal/orders"
	"github.com/naturesnacks/snackstore/internal/payment"
	"github.com/naturesnacks/snackstore/internal/storefront"
	"github.com/naturesnacks/snackstore/internal/submission"
	"github.com/naturesnacks/snackstore/pkg/config"
	"github.com/naturesnacks/snackstore/pkg/kvstore"
	"github.com/naturesnacks/snackstore/pkg/logger"
	"github.com/naturesnacks/snackstore/pkg/metrics"
	"github.com/naturesnacks/snackstore/pkg/redis"
)

type testEnv struct {
	handler  http.Handler
	webhooks *atomic.Int32
}

func testConfig() *config.Config {
	return &config.Config{
		App:       config.AppConfig{Env: "test", AllowedOrigins: []string{"http://localhost:5173"}},
		Session:   config.SessionConfig{Secret: "test-secret", Issuer: "naturesnacks", TTL: time.Hour},
		Backup:    config.BackupConfig{Driver: config.BackupDriverMemory},
		Payment:   config.PaymentConfig{KeyID: "rzp_test_key", Currency: "INR", MerchantName: "NatureSnacks"},
		Breaker:   config.BreakerConfig{MaxConsecutiveFailures: 3, OpenTimeout: time.Minute},
		RateLimit: config.RateLimitConfig{CheckoutWindow: time.Minute, CheckoutLimit: 10},
	}
}

func newTestEnv(t *testing.T, cfg *config.Config, limiter redis.RateLimiter) testEnv {
	t.Helper()
	logg := logger.Nop()

	var webhooks atomic.Int32
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webhooks.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(hook.Close)
	cfg.Webhook = config.WebhookConfig{URL: hook.URL, Timeout: time.Second}

	store := kvstore.NewMemory(0)
	reg := prometheus.NewRegistry()
	seq, err := submission.NewSequencer(
		submission.NewStoreBackup(store),
		submission.NewEmailJS(cfg.EmailJS, cfg.Breaker, hook.Client()),
		submission.NewWebhook(cfg.Webhook, hook.Client()),
		metrics.NewSubmissionMetrics(reg),
		logg,
	)
	if err != nil {
		t.Fatalf("sequencer: %v", err)
	}

	carts := cart.NewRegistry()
	checkoutSvc, err := checkout.NewService(carts, payment.NewWidget(cfg.Payment), seq, logg)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	renderer, err := storefront.NewRenderer(carts, checkoutSvc, logg)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	ordersSvc, err := orders.NewService(store)
	if err != nil {
		t.Fatalf("orders: %v", err)
	}

	h := NewRouter(cfg, logg, store, limiter, reg, carts, renderer, checkoutSvc, ordersSvc)
	return testEnv{handler: h, webhooks: &webhooks}
}

func call(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set(middleware.SessionTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func data(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	envelope := struct {
		Data any `json:"data"`
	}{Data: dest}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
}

const detailsBody = `{"name":"Asha Rao","email":"asha@example.com","phone":"+91 98765 43210","address":"12 MG Road","city":"Bengaluru","state":"Karnataka","pincode":"560001","terms_accepted":true}`

func TestHealthAndMetrics(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	for _, path := range []string{"/health/live", "/health/ready", "/metrics"} {
		if rec := call(t, env.handler, http.MethodGet, path, "", ""); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, rec.Code)
		}
	}
}

func TestCatalogRoutesArePublic(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	rec := call(t, env.handler, http.MethodGet, "/api/v1/products?q=seeds", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if rec.Header().Get(middleware.SessionTokenHeader) != "" {
		t.Fatal("catalog routes should not issue sessions")
	}
}

func TestCheckoutFlowEndToEnd(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	h := env.handler

	rec := call(t, h, http.MethodGet, "/api/v1/cart", "", "")
	token := rec.Header().Get(middleware.SessionTokenHeader)
	if token == "" {
		t.Fatal("expected session token to be issued")
	}

	if rec := call(t, h, http.MethodPost, "/api/v1/cart/items", token, `{"product_id":"5","quantity":2}`); rec.Code != http.StatusCreated {
		t.Fatalf("add item: %d %s", rec.Code, rec.Body.String())
	}

	var view storefront.View
	data(t, call(t, h, http.MethodGet, "/api/v1/navigate?to="+"checkout", token, ""), &view)
	if view.Checkout == nil || view.Checkout.Total != 1296 || !view.Checkout.PaymentReady {
		t.Fatalf("unexpected checkout view %+v", view.Checkout)
	}

	rec = call(t, h, http.MethodPost, "/api/v1/checkout", token, detailsBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("begin: %d %s", rec.Code, rec.Body.String())
	}
	var begin checkout.BeginResult
	data(t, rec, &begin)
	if begin.Widget == nil || begin.Widget.Amount != 129600 {
		t.Fatalf("unexpected widget options %+v", begin.Widget)
	}

	rec = call(t, h, http.MethodPost, "/api/v1/checkout/confirm", token, `{"payment_id":"pay_abc"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("confirm: %d %s", rec.Code, rec.Body.String())
	}
	var confirm checkout.ConfirmResult
	data(t, rec, &confirm)
	if confirm.Outcome != "fallback" || confirm.Redirect != "order-success?orderId="+begin.OrderID {
		t.Fatalf("unexpected confirm %+v", confirm)
	}
	if env.webhooks.Load() != 1 {
		t.Fatalf("expected one webhook post, got %d", env.webhooks.Load())
	}

	var snap cart.Snapshot
	data(t, call(t, h, http.MethodGet, "/api/v1/cart", token, ""), &snap)
	if snap.ItemCount != 0 {
		t.Fatalf("expected cart cleared, got %+v", snap)
	}

	var tracking orders.Tracking
	data(t, call(t, h, http.MethodGet, "/api/v1/orders/"+begin.OrderID, token, ""), &tracking)
	if tracking.Order.PaymentID != "pay_abc" || tracking.Order.Total != 1296 {
		t.Fatalf("unexpected stored order %+v", tracking.Order)
	}

	stranger := call(t, h, http.MethodGet, "/api/v1/cart", "", "").Header().Get(middleware.SessionTokenHeader)
	if rec := call(t, h, http.MethodGet, "/api/v1/orders/"+begin.OrderID, stranger, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another session, got %d", rec.Code)
	}
	var strangerList []orders.Summary
	data(t, call(t, h, http.MethodGet, "/api/v1/orders", stranger, ""), &strangerList)
	if len(strangerList) != 0 {
		t.Fatalf("expected no orders for another session, got %+v", strangerList)
	}
	var ownList []orders.Summary
	data(t, call(t, h, http.MethodGet, "/api/v1/orders", token, ""), &ownList)
	if len(ownList) != 1 || ownList[0].OrderID != begin.OrderID {
		t.Fatalf("unexpected own orders %+v", ownList)
	}

	data(t, call(t, h, http.MethodGet, "/api/v1/navigate?to=order-success%3ForderId%3D"+begin.OrderID, token, ""), &view)
	if view.Success == nil || view.Success.OrderID != begin.OrderID {
		t.Fatalf("unexpected success view %+v", view)
	}
}

func TestCheckoutRateLimitedWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.RateLimit.CheckoutLimit = 1
	cfg.Redis = config.RedisConfig{Address: mr.Addr()}
	client, err := redis.New(context.Background(), cfg.Redis, logger.Nop())
	if err != nil {
		t.Fatalf("redis: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	env := newTestEnv(t, cfg, client)
	token := call(t, env.handler, http.MethodGet, "/api/v1/cart", "", "").Header().Get(middleware.SessionTokenHeader)

	if rec := call(t, env.handler, http.MethodPost, "/api/v1/checkout", token, detailsBody); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected empty-cart rejection first, got %d", rec.Code)
	}
	if rec := call(t, env.handler, http.MethodPost, "/api/v1/checkout", token, detailsBody); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestInvalidSessionTokenRejected(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	if rec := call(t, env.handler, http.MethodGet, "/api/v1/cart", "not-a-jwt", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}
