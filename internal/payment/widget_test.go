package payment

import (
	"context"
	"testing"

	"github.com/naturesnacks/snackstore/pkg/config"
	pkgerrors "github.com/naturesnacks/snackstore/pkg/errors"
)

func testConfig() config.PaymentConfig {
	return config.PaymentConfig{
		KeyID:        "rzp_test_key",
		Currency:     "INR",
		MerchantName: "NatureSnacks",
		Description:  "Premium Healthy Snacks Purchase",
		ThemeColor:   "#16A34A",
	}
}

func TestOpenBuildsOptions(t *testing.T) {
	w := NewWidget(testConfig())
	opts, err := w.Open(context.Background(), Request{
		OrderID: "NS1ABCDE",
		Amount:  708,
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Items:   []Item{{Name: "Almonds", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if opts.Amount != 70800 {
		t.Fatalf("expected amount in paise, got %d", opts.Amount)
	}
	if opts.Currency != "INR" || opts.Key != "rzp_test_key" || opts.OrderID != "NS1ABCDE" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.Notes.Items != `["Almonds x 2"]` {
		t.Fatalf("unexpected notes %q", opts.Notes.Items)
	}
	if opts.Prefill.Contact != "9876543210" || opts.Theme.Color != "#16A34A" {
		t.Fatalf("prefill/theme not applied: %+v", opts)
	}
}

func TestOpenNotReady(t *testing.T) {
	cfg := testConfig()
	cfg.KeyID = ""
	w := NewWidget(cfg)
	if w.Ready() {
		t.Fatalf("widget without key must not be ready")
	}
	_, err := w.Open(context.Background(), Request{Amount: 100})
	if !pkgerrors.IsCode(err, pkgerrors.CodePaymentUnavailable) {
		t.Fatalf("expected payment unavailable, got %v", err)
	}

	w = NewWidget(testConfig())
	w.SetReady(false)
	if _, err := w.Open(context.Background(), Request{Amount: 100}); !pkgerrors.IsCode(err, pkgerrors.CodePaymentUnavailable) {
		t.Fatalf("expected payment unavailable after SetReady(false), got %v", err)
	}
	w.SetReady(true)
	if !w.Ready() {
		t.Fatalf("expected ready again")
	}
}

func TestOpenRejectsZeroAmount(t *testing.T) {
	w := NewWidget(testConfig())
	if _, err := w.Open(context.Background(), Request{}); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
