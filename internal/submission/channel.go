// Package submission records finalized orders through ranked delivery channels.
package submission

import (
	"context"
	"errors"

	"github.com/naturesnacks/snackstore/internal/orders"
	"github.com/naturesnacks/snackstore/pkg/enums"
)

var (
	// ErrChannelUnavailable is returned by a channel that is disabled or forced off.
	ErrChannelUnavailable = errors.New("submission channel unavailable")
	// ErrNotConfigured is returned by a channel missing its endpoint or credentials.
	ErrNotConfigured = errors.New("submission channel not configured")
)

// Channel delivers an order to one remote destination.
type Channel interface {
	Name() enums.SubmissionChannel
	Send(ctx context.Context, rec orders.Record) error
}

// Backup persists the order locally. It runs before any remote channel.
type Backup interface {
	Save(ctx context.Context, rec orders.Record) error
}
