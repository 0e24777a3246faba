package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/naturesnacks/snackstore/internal/orders"
	"github.com/naturesnacks/snackstore/internal/submission"
	"github.com/naturesnacks/snackstore/pkg/config"
	pkgerrors "github.com/naturesnacks/snackstore/pkg/errors"
	"github.com/naturesnacks/snackstore/pkg/kvstore"
	"github.com/naturesnacks/snackstore/pkg/logger"
)

func newOrdersRouter(t *testing.T, store kvstore.Store) http.Handler {
	t.Helper()
	svc, err := orders.NewService(store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	r := chi.NewRouter()
	r.Get("/orders", OrderList(svc, logger.Nop()))
	r.Get("/orders/{orderId}", OrderDetail(svc, logger.Nop()))
	return r
}

func seedOrder(t *testing.T, store kvstore.Store, sessionID, id string) {
	t.Helper()
	rec := orders.Record{
		OrderID:   id,
		SessionID: sessionID,
		Customer:  orders.Customer{Name: "Asha Rao"},
		Items:     []orders.Item{{Name: "Medjool Dates", Quantity: 1, Price: 549}},
		Subtotal:  549,
		Tax:       99,
		Total:     648,
		CreatedAt: time.Now(),
	}
	if err := submission.NewStoreBackup(store).Save(context.Background(), rec); err != nil {
		t.Fatalf("seed order: %v", err)
	}
}

func TestOrderListNewestFirst(t *testing.T) {
	store := kvstore.NewMemory(0)
	seedOrder(t, store, "s1", "NS1")
	seedOrder(t, store, "s2", "NSX")
	seedOrder(t, store, "s1", "NS2")
	h := newOrdersRouter(t, store)

	var list []orders.Summary
	decodeData(t, doRequest(t, h, http.MethodGet, "/orders?limit=5", "s1", ""), &list)
	if len(list) != 2 || list[0].OrderID != "NS2" || list[1].OrderID != "NS1" {
		t.Fatalf("unexpected list %+v", list)
	}

	if rec := doRequest(t, h, http.MethodGet, "/orders", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rec.Code)
	}
	if rec := doRequest(t, h, http.MethodGet, "/orders?limit=1000", "s1", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for limit out of range, got %d", rec.Code)
	}
}

func TestOrderListEmpty(t *testing.T) {
	store := kvstore.NewMemory(0)
	seedOrder(t, store, "someone-else", "NS1")
	rec := doRequest(t, newOrdersRouter(t, store), http.MethodGet, "/orders", "s1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var list []orders.Summary
	decodeData(t, rec, &list)
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty array, got %v", list)
	}
}

func TestOrderDetail(t *testing.T) {
	store := kvstore.NewMemory(0)
	seedOrder(t, store, "s1", "NS1")
	h := newOrdersRouter(t, store)

	var tracking orders.Tracking
	decodeData(t, doRequest(t, h, http.MethodGet, "/orders/NS1", "s1", ""), &tracking)
	if tracking.Order.Total != 648 || len(tracking.Steps) != 4 {
		t.Fatalf("unexpected tracking %+v", tracking)
	}
	if tracking.Steps[0].Status != orders.StepCurrent {
		t.Fatalf("expected fresh order to be at the first step, got %+v", tracking.Steps)
	}

	rec := doRequest(t, h, http.MethodGet, "/orders/missing", "s1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	rec = doRequest(t, h, http.MethodGet, "/orders/NS1", "s2", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another session's order, got %d", rec.Code)
	}
}

type failingPinger struct{ err error }

func (f failingPinger) Ping(context.Context) error { return f.err }

func TestHealth(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "test"}, Backup: config.BackupConfig{Driver: "memory"}}
	r := chi.NewRouter()
	r.Get("/live", HealthLive(cfg))
	r.Get("/ready", HealthReady(cfg, logger.Nop(), failingPinger{}))
	r.Get("/down", HealthReady(cfg, logger.Nop(), failingPinger{err: errors.New("dial tcp: refused")}))

	if rec := doRequest(t, r, http.MethodGet, "/live", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected live 200 got %d", rec.Code)
	}
	if rec := doRequest(t, r, http.MethodGet, "/ready", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected ready 200 got %d", rec.Code)
	}
	rec := doRequest(t, r, http.MethodGet, "/down", "", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != string(pkgerrors.CodeDependency) {
		t.Fatalf("unexpected code %s", code)
	}
}
