package submission

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/naturesnacks/snackstore/internal/orders"
	"github.com/naturesnacks/snackstore/pkg/config"
	"github.com/naturesnacks/snackstore/pkg/kvstore"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emailConfig(endpoint string) config.EmailJSConfig {
	return config.EmailJSConfig{
		Endpoint:   endpoint,
		ServiceID:  "service_1",
		TemplateID: "template_1",
		PublicKey:  "public",
		PrivateKey: "private",
		Timeout:    time.Second,
	}
}

func TestEmailJSSendsTemplateParams(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	ch := NewEmailJS(emailConfig(srv.URL), config.BreakerConfig{MaxConsecutiveFailures: 3, OpenTimeout: time.Minute}, nil)
	require.NoError(t, ch.Send(context.Background(), testRecord()))

	assert.Equal(t, "service_1", got.ServiceID)
	assert.Equal(t, "template_1", got.TemplateID)
	assert.Equal(t, "public", got.UserID)
	assert.Equal(t, "private", got.AccessToken)
	assert.Equal(t, "NS1760000000000ABCDE", got.TemplateParams["order_id"])
	assert.Equal(t, "₹708.00", got.TemplateParams["total"])
	assert.Equal(t, NoPaymentID, got.TemplateParams["payment_id"])
}

func TestEmailJSNonOKIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The template ID is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	ch := NewEmailJS(emailConfig(srv.URL), config.BreakerConfig{MaxConsecutiveFailures: 5, OpenTimeout: time.Minute}, nil)
	err := ch.Send(context.Background(), testRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "template ID is invalid")
}

func TestEmailJSBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ch := NewEmailJS(emailConfig(srv.URL), config.BreakerConfig{MaxConsecutiveFailures: 2, OpenTimeout: time.Minute}, nil)
	for i := 0; i < 2; i++ {
		require.Error(t, ch.Send(context.Background(), testRecord()))
	}
	assert.Equal(t, "open", ch.BreakerState())

	err := ch.Send(context.Background(), testRecord())
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, int32(2), hits.Load(), "open breaker must not reach the provider")
}

func TestEmailJSNotConfigured(t *testing.T) {
	ch := NewEmailJS(config.EmailJSConfig{}, config.BreakerConfig{}, nil)
	assert.ErrorIs(t, ch.Send(context.Background(), testRecord()), ErrNotConfigured)
}

func TestWebhookPostsFormAndIgnoresStatus(t *testing.T) {
	var form map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	ch := NewWebhook(config.WebhookConfig{URL: srv.URL, Timeout: time.Second}, nil)
	require.NoError(t, ch.Send(context.Background(), testRecord()), "dispatch succeeds regardless of status")
	assert.Equal(t, []string{"NS1760000000000ABCDE"}, form["order_id"])
	assert.Equal(t, []string{"Almonds x 2 - ₹600.00"}, form["order_items"])
}

func TestWebhookForceUnavailable(t *testing.T) {
	ch := NewWebhook(config.WebhookConfig{URL: "http://example.invalid", ForceUnavailable: true}, nil)
	assert.ErrorIs(t, ch.Send(context.Background(), testRecord()), ErrChannelUnavailable)
}

func TestWebhookTransportErrorIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	ch := NewWebhook(config.WebhookConfig{URL: url, Timeout: time.Second}, nil)
	assert.Error(t, ch.Send(context.Background(), testRecord()))

	assert.ErrorIs(t, NewWebhook(config.WebhookConfig{}, nil).Send(context.Background(), testRecord()), ErrNotConfigured)
}

func TestStoreBackupQuotaExceeded(t *testing.T) {
	backup := NewStoreBackup(kvstore.NewMemory(16))
	err := backup.Save(context.Background(), testRecord())
	assert.ErrorIs(t, err, kvstore.ErrQuotaExceeded)
}

func TestStoreBackupCorruptIndexFails(t *testing.T) {
	store := kvstore.NewMemory(0)
	require.NoError(t, store.Set(context.Background(), orders.IndexKey, "{not json"))
	err := NewStoreBackup(store).Save(context.Background(), testRecord())
	assert.Error(t, err)
}

func TestFields(t *testing.T) {
	rec := testRecord()
	rec.PaymentID = "pay_abc"
	rec.Items = append(rec.Items, orders.Item{Name: "Dates", Quantity: 1, Price: 549})
	f := Fields(rec)
	assert.Equal(t, "pay_abc", f["payment_id"])
	assert.Equal(t, "₹0.00", f["shipping"])
	assert.Equal(t, "₹108.00", f["tax"])
	assert.Equal(t, "Completed", f["payment_status"])
	assert.Equal(t, "Almonds x 2 - ₹600.00\nDates x 1 - ₹549.00", f["order_items"])
}
