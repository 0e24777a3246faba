// Package payment prepares the hosted checkout widget invocation.
// Payment capture happens inside the widget; the success callback is taken as proof of payment.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/naturesnacks/snackstore/pkg/config"
	pkgerrors "github.com/naturesnacks/snackstore/pkg/errors"
	"github.com/naturesnacks/snackstore/pkg/money"
)

// Request carries what the checkout flow knows when the pay action fires.
type Request struct {
	OrderID string
	Amount  int64 // whole rupees
	Name    string
	Email   string
	Phone   string
	Items   []Item
}

type Item struct {
	Name     string
	Quantity int
}

type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type Notes struct {
	OrderID string `json:"orderId"`
	Items   string `json:"items"`
}

type Theme struct {
	Color string `json:"color"`
}

// Options is handed to the widget script as-is. Amount is in paise.
type Options struct {
	Key         string  `json:"key"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	OrderID     string  `json:"order_id"`
	Prefill     Prefill `json:"prefill"`
	Notes       Notes   `json:"notes"`
	Theme       Theme   `json:"theme"`
}

// Widget tracks whether the hosted checkout can be opened.
type Widget struct {
	cfg   config.PaymentConfig
	ready atomic.Bool
}

// NewWidget is ready as soon as a key id is configured.
func NewWidget(cfg config.PaymentConfig) *Widget {
	w := &Widget{cfg: cfg}
	w.ready.Store(strings.TrimSpace(cfg.KeyID) != "")
	return w
}

func (w *Widget) Ready() bool {
	return w != nil && w.ready.Load()
}

// SetReady toggles availability, e.g. when the widget provider is under maintenance.
func (w *Widget) SetReady(ready bool) {
	w.ready.Store(ready && strings.TrimSpace(w.cfg.KeyID) != "")
}

// Open builds the widget options or fails with PAYMENT_UNAVAILABLE.
func (w *Widget) Open(ctx context.Context, req Request) (Options, error) {
	if !w.Ready() {
		return Options{}, pkgerrors.New(pkgerrors.CodePaymentUnavailable, "payment widget not ready")
	}
	if req.Amount <= 0 {
		return Options{}, pkgerrors.New(pkgerrors.CodeValidation, "payment amount must be positive")
	}

	labels := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		labels = append(labels, fmt.Sprintf("%s x %d", item.Name, item.Quantity))
	}
	encoded, err := json.Marshal(labels)
	if err != nil {
		return Options{}, pkgerrors.Wrap(pkgerrors.CodePaymentUnavailable, err, "encode payment notes")
	}

	return Options{
		Key:         w.cfg.KeyID,
		Amount:      money.Paise(req.Amount),
		Currency:    w.cfg.Currency,
		Name:        w.cfg.MerchantName,
		Description: w.cfg.Description,
		OrderID:     req.OrderID,
		Prefill: Prefill{
			Name:    req.Name,
			Email:   req.Email,
			Contact: req.Phone,
		},
		Notes: Notes{OrderID: req.OrderID, Items: string(encoded)},
		Theme: Theme{Color: w.cfg.ThemeColor},
	}, nil
}
