package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/naturesnacks/snackstore/internal/orders"
	"github.com/naturesnacks/snackstore/pkg/config"
	"github.com/naturesnacks/snackstore/pkg/enums"
	"github.com/sony/gobreaker/v2"
)

const maxErrorBody = 1 << 10

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// EmailJS sends the order through the transactional email REST API.
// Only a 200 response counts as acknowledged. Calls pass through a circuit breaker;
// an open breaker fails the attempt immediately.
type EmailJS struct {
	cfg     config.EmailJSConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func NewEmailJS(cfg config.EmailJSConfig, breakerCfg config.BreakerConfig, client *http.Client) *EmailJS {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	maxFailures := breakerCfg.MaxConsecutiveFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "emailjs",
		MaxRequests: 1,
		Timeout:     breakerCfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	})
	return &EmailJS{cfg: cfg, client: client, breaker: breaker}
}

func (e *EmailJS) Name() enums.SubmissionChannel {
	return enums.ChannelEmail
}

// BreakerState reports the breaker state for diagnostics.
func (e *EmailJS) BreakerState() string {
	return e.breaker.State().String()
}

func (e *EmailJS) Send(ctx context.Context, rec orders.Record) error {
	if !e.cfg.Enabled() {
		return ErrNotConfigured
	}
	_, err := e.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, e.send(ctx, rec)
	})
	return err
}

func (e *EmailJS) send(ctx context.Context, rec orders.Record) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:      e.cfg.ServiceID,
		TemplateID:     e.cfg.TemplateID,
		UserID:         e.cfg.PublicKey,
		AccessToken:    e.cfg.PrivateKey,
		TemplateParams: Fields(rec),
	})
	if err != nil {
		return fmt.Errorf("encode email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("email provider status %d: %s", resp.StatusCode, strings.TrimSpace(string(text)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
