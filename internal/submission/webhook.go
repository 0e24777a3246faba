package submission

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/naturesnacks/snackstore/internal/orders"
	"github.com/naturesnacks/snackstore/pkg/config"
	"github.com/naturesnacks/snackstore/pkg/enums"
)

// Webhook posts the order as form fields to the spreadsheet endpoint.
// A nil error means the request was dispatched, not that it was received:
// the response status and body are discarded.
type Webhook struct {
	cfg    config.WebhookConfig
	client *http.Client
}

func NewWebhook(cfg config.WebhookConfig, client *http.Client) *Webhook {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Webhook{cfg: cfg, client: client}
}

func (w *Webhook) Name() enums.SubmissionChannel {
	return enums.ChannelWebhook
}

func (w *Webhook) Send(ctx context.Context, rec orders.Record) error {
	if w.cfg.ForceUnavailable {
		return ErrChannelUnavailable
	}
	if strings.TrimSpace(w.cfg.URL) == "" {
		return ErrNotConfigured
	}

	form := url.Values{}
	for k, v := range Fields(rec) {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("dispatch webhook: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}
