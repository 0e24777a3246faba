package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/naturesnacks/snackstore/internal/orders"
	"github.com/naturesnacks/snackstore/pkg/enums"
	pkgerrors "github.com/naturesnacks/snackstore/pkg/errors"
	"github.com/naturesnacks/snackstore/pkg/logger"
	"go.uber.org/multierr"
)

const (
	MessagePrimary    = "Order placed successfully! A confirmation email has been sent."
	MessageFallback   = "Order placed successfully! Your order details have been submitted."
	MessageBackupOnly = "Order placed successfully! Your order has been saved and our team will contact you shortly."
	MessageFailed     = "We could not record your order. Please try again or contact support."
)

var outcomeMessages = map[enums.SubmissionOutcome]string{
	enums.OutcomePrimary:    MessagePrimary,
	enums.OutcomeFallback:   MessageFallback,
	enums.OutcomeBackupOnly: MessageBackupOnly,
}

// Attempt records one channel invocation.
type Attempt struct {
	Channel enums.SubmissionChannel `json:"channel"`
	OK      bool                    `json:"ok"`
	Error   string                  `json:"error,omitempty"`
}

// Result is the successful outcome of Submit.
type Result struct {
	OrderID  string                  `json:"order_id"`
	Outcome  enums.SubmissionOutcome `json:"outcome"`
	Message  string                  `json:"message"`
	Attempts []Attempt               `json:"attempts"`
}

type submissionMetrics interface {
	ObserveAttempt(channel string, ok bool, duration time.Duration)
	IncOutcome(outcome string)
}

// Submitter is the surface consumed by checkout.
type Submitter interface {
	Submit(ctx context.Context, rec orders.Record) (*Result, error)
}

// Sequencer runs backup, then the primary channel, then the fallback channel only if the
// primary failed. Channels are never retried and never run concurrently.
type Sequencer struct {
	backup   Backup
	primary  Channel
	fallback Channel
	metrics  submissionMetrics
	logg     *logger.Logger
	now      func() time.Time
}

// NewSequencer wires the three channels. metrics may be nil.
func NewSequencer(backup Backup, primary, fallback Channel, metrics submissionMetrics, logg *logger.Logger) (*Sequencer, error) {
	if backup == nil {
		return nil, fmt.Errorf("backup required")
	}
	if primary == nil {
		return nil, fmt.Errorf("primary channel required")
	}
	if fallback == nil {
		return nil, fmt.Errorf("fallback channel required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &Sequencer{
		backup:   backup,
		primary:  primary,
		fallback: fallback,
		metrics:  metrics,
		logg:     logg,
		now:      time.Now,
	}, nil
}

// Submit records rec. It fails with SUBMISSION_FAILED only when the backup and both
// remote channels all fail.
func (s *Sequencer) Submit(ctx context.Context, rec orders.Record) (*Result, error) {
	ctx = s.logg.WithOrderID(ctx, rec.OrderID)
	result := &Result{OrderID: rec.OrderID}

	backupErr := s.attempt(ctx, result, enums.ChannelBackup, func() error {
		return s.backup.Save(ctx, rec)
	})

	primaryErr := s.attempt(ctx, result, s.primary.Name(), func() error {
		return s.primary.Send(ctx, rec)
	})
	if primaryErr == nil {
		return s.finish(ctx, result, enums.OutcomePrimary), nil
	}

	fallbackErr := s.attempt(ctx, result, s.fallback.Name(), func() error {
		return s.fallback.Send(ctx, rec)
	})
	if fallbackErr == nil {
		return s.finish(ctx, result, enums.OutcomeFallback), nil
	}

	if backupErr == nil {
		return s.finish(ctx, result, enums.OutcomeBackupOnly), nil
	}

	s.incOutcome(enums.OutcomeFailed)
	cause := multierr.Combine(backupErr, primaryErr, fallbackErr)
	s.logg.Error(ctx, "order submission failed on every channel", cause)
	return nil, pkgerrors.Wrap(pkgerrors.CodeSubmissionFailed, cause, MessageFailed).WithDetails(result.Attempts)
}

func (s *Sequencer) attempt(ctx context.Context, result *Result, channel enums.SubmissionChannel, fn func() error) error {
	started := s.now()
	err := fn()
	if s.metrics != nil {
		s.metrics.ObserveAttempt(channel.String(), err == nil, s.now().Sub(started))
	}

	a := Attempt{Channel: channel, OK: err == nil}
	if err != nil {
		a.Error = err.Error()
		s.logg.WarnErr(s.logg.WithField(ctx, "channel", channel.String()), "order channel failed", err)
	}
	result.Attempts = append(result.Attempts, a)
	return err
}

func (s *Sequencer) finish(ctx context.Context, result *Result, outcome enums.SubmissionOutcome) *Result {
	result.Outcome = outcome
	result.Message = outcomeMessages[outcome]
	s.incOutcome(outcome)
	s.logg.Info(s.logg.WithField(ctx, "outcome", outcome.String()), "order submitted")
	return result
}

func (s *Sequencer) incOutcome(outcome enums.SubmissionOutcome) {
	if s.metrics != nil {
		s.metrics.IncOutcome(outcome.String())
	}
}
