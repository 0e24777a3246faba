// Package checkout validates customer details, gates the payment widget and
// records confirmed orders through the submission sequencer.
package checkout

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/naturesnacks/snackstore/internal/cart"
	"github.com/naturesnacks/snackstore/internal/navigation"
	"github.com/naturesnacks/snackstore/internal/orders"
	"github.com/naturesnacks/snackstore/internal/payment"
	"github.com/naturesnacks/snackstore/internal/submission"
	"github.com/naturesnacks/snackstore/pkg/enums"
	pkgerrors "github.com/naturesnacks/snackstore/pkg/errors"
	"github.com/naturesnacks/snackstore/pkg/logger"
)

type cartProvider interface {
	Get(sessionID string) *cart.Store
}

type paymentWidget interface {
	Ready() bool
	Open(ctx context.Context, req payment.Request) (payment.Options, error)
}

// Service drives one checkout attempt per session.
type Service interface {
	Begin(ctx context.Context, sessionID string, input BeginInput) (*BeginResult, error)
	Dismiss(ctx context.Context, sessionID string)
	Confirm(ctx context.Context, sessionID, paymentID string) (*ConfirmResult, error)
	ConfirmManual(ctx context.Context, sessionID string) (*ConfirmResult, error)
	State(sessionID string) State
	PaymentReady() bool
	// Sweep forgets sessions idle for longer than ttl and reports how many went.
	Sweep(ttl time.Duration) int
}

type BeginInput struct {
	Details CustomerDetails
	Method  enums.PaymentMethod
}

// BeginResult carries widget options for razorpay, or manual instructions for qr.
type BeginResult struct {
	OrderID string              `json:"order_id"`
	Method  enums.PaymentMethod `json:"method"`
	Totals  cart.Totals         `json:"totals"`
	Widget  *payment.Options    `json:"widget,omitempty"`
	Manual  *ManualInstructions `json:"manual,omitempty"`
}

type ManualInstructions struct {
	Amount  int64  `json:"amount"`
	Message string `json:"message"`
}

type ConfirmResult struct {
	OrderID  string                  `json:"order_id"`
	Outcome  enums.SubmissionOutcome `json:"outcome"`
	Message  string                  `json:"message"`
	Redirect string                  `json:"redirect"`
	Order    orders.Record           `json:"order"`
}

// State reports whether a session has a checkout in flight.
type State struct {
	Processing bool                `json:"processing"`
	OrderID    string              `json:"order_id,omitempty"`
	Method     enums.PaymentMethod `json:"method,omitempty"`
}

type pending struct {
	orderID  string
	method   enums.PaymentMethod
	details  CustomerDetails
	snapshot cart.Snapshot
}

type session struct {
	// held for the whole of Begin/Confirm so one session never runs two at once
	mu       sync.Mutex
	pending  *pending
	lastSeen time.Time
}

type service struct {
	carts     cartProvider
	widget    paymentWidget
	submitter submission.Submitter
	logg      *logger.Logger
	now       func() time.Time
	newID     func(time.Time) string
	location  *time.Location

	mu       sync.Mutex
	sessions map[string]*session
}

// NewService builds the checkout flow.
func NewService(carts cartProvider, widget paymentWidget, submitter submission.Submitter, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart provider required")
	}
	if widget == nil {
		return nil, fmt.Errorf("payment widget required")
	}
	if submitter == nil {
		return nil, fmt.Errorf("order submitter required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		carts:     carts,
		widget:    widget,
		submitter: submitter,
		logg:      logg,
		now:       time.Now,
		newID:     NewOrderID,
		location:  storeLocation(),
		sessions:  make(map[string]*session),
	}, nil
}

func storeLocation() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*60*60+30*60)
}

func (s *service) session(sessionID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{}
		s.sessions[sessionID] = sess
	}
	sess.lastSeen = s.now()
	return sess
}

// Sweep skips sessions with a checkout running, they are caught on a later pass.
func (s *service) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	dropped := 0
	for id, sess := range s.sessions {
		if !sess.lastSeen.Before(cutoff) || !sess.mu.TryLock() {
			continue
		}
		delete(s.sessions, id)
		sess.mu.Unlock()
		dropped++
	}
	return dropped
}

func (s *service) PaymentReady() bool {
	return s.widget.Ready()
}

func (s *service) State(sessionID string) State {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.pending == nil {
		return State{}
	}
	return State{Processing: true, OrderID: sess.pending.orderID, Method: sess.pending.method}
}

func (s *service) Begin(ctx context.Context, sessionID string, input BeginInput) (*BeginResult, error) {
	method := input.Method
	if method == "" {
		method = enums.PaymentMethodRazorpay
	}
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported payment method").
			WithDetails(ValidationDetail{Field: "method"})
	}

	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.pending != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "checkout already in progress")
	}

	snap := s.carts.Get(sessionID).Snapshot()
	if snap.Empty() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "No items in cart")
	}
	if err := Validate(input.Details); err != nil {
		return nil, err
	}

	orderID := s.newID(s.now())
	ctx = s.logg.WithOrderID(ctx, orderID)
	result := &BeginResult{OrderID: orderID, Method: method, Totals: snap.Totals}

	switch method {
	case enums.PaymentMethodQR:
		result.Manual = &ManualInstructions{
			Amount:  snap.Total,
			Message: `Scan the QR code with any UPI app, then click "Payment Completed" only after successful payment`,
		}
	default:
		if !s.widget.Ready() {
			return nil, pkgerrors.New(pkgerrors.CodePaymentUnavailable, "payment widget not ready")
		}
		opts, err := s.widget.Open(ctx, payment.Request{
			OrderID: orderID,
			Amount:  snap.Total,
			Name:    input.Details.Name,
			Email:   input.Details.Email,
			Phone:   input.Details.Phone,
			Items:   paymentItems(snap.Lines),
		})
		if err != nil {
			s.logg.WarnErr(ctx, "payment widget initialization failed", err)
			if pkgerrors.As(err) != nil {
				return nil, err
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodePaymentUnavailable, err, "payment initialization failed")
		}
		result.Widget = &opts
	}

	sess.pending = &pending{orderID: orderID, method: method, details: input.Details, snapshot: snap}
	s.logg.Info(s.logg.WithField(ctx, "method", method.String()), "checkout started")
	return result, nil
}

// Dismiss clears the processing flag after the widget is closed without paying.
func (s *service) Dismiss(ctx context.Context, sessionID string) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.pending == nil {
		return
	}
	s.logg.Info(s.logg.WithOrderID(ctx, sess.pending.orderID), "checkout dismissed")
	sess.pending = nil
}

func (s *service) Confirm(ctx context.Context, sessionID, paymentID string) (*ConfirmResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment id is required").
			WithDetails(ValidationDetail{Field: "payment_id"})
	}
	return s.confirm(ctx, sessionID, enums.PaymentMethodRazorpay, paymentID)
}

func (s *service) ConfirmManual(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	return s.confirm(ctx, sessionID, enums.PaymentMethodQR, "")
}

func (s *service) confirm(ctx context.Context, sessionID string, method enums.PaymentMethod, paymentID string) (*ConfirmResult, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	p := sess.pending
	if p == nil || p.method != method {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "no checkout in progress")
	}

	rec := s.buildRecord(sessionID, p, paymentID)
	ctx = s.logg.WithOrderID(ctx, rec.OrderID)

	// a started submission always runs to completion, even if the caller goes away
	res, err := s.submitter.Submit(context.WithoutCancel(ctx), rec)
	sess.pending = nil
	if err != nil {
		return nil, err
	}

	s.carts.Get(sessionID).ClearCart()
	return &ConfirmResult{
		OrderID:  rec.OrderID,
		Outcome:  res.Outcome,
		Message:  res.Message,
		Redirect: navigation.OrderSuccess(rec.OrderID),
		Order:    rec,
	}, nil
}

func (s *service) buildRecord(sessionID string, p *pending, paymentID string) orders.Record {
	created := s.now().In(s.location)
	items := make([]orders.Item, 0, len(p.snapshot.Lines))
	for _, line := range p.snapshot.Lines {
		items = append(items, orders.Item{Name: line.Name, Quantity: line.Quantity, Price: line.Price})
	}
	d := p.details
	return orders.Record{
		OrderID:   p.orderID,
		SessionID: sessionID,
		Customer: orders.Customer{
			Name:    strings.TrimSpace(d.Name),
			Email:   strings.TrimSpace(d.Email),
			Phone:   strings.TrimSpace(d.Phone),
			Address: d.FullAddress(),
			City:    strings.TrimSpace(d.City),
			State:   strings.TrimSpace(d.State),
			Pincode: strings.TrimSpace(d.Pincode),
		},
		Items:         items,
		Subtotal:      p.snapshot.Subtotal,
		Shipping:      p.snapshot.Shipping,
		Tax:           p.snapshot.Tax,
		Total:         p.snapshot.Total,
		PaymentStatus: enums.PaymentStatusCompleted,
		PaymentMethod: p.method,
		PaymentID:     paymentID,
		OrderDate:     created.Format("02/01/2006"),
		OrderTime:     created.Format("3:04:05 pm"),
		CreatedAt:     created,
	}
}

func paymentItems(lines []cart.Line) []payment.Item {
	items := make([]payment.Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, payment.Item{Name: l.Name, Quantity: l.Quantity})
	}
	return items
}
