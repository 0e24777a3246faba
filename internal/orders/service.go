package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	pkgerrors "github.com/naturesnacks/snackstore/pkg/errors"
	"github.com/naturesnacks/snackstore/pkg/kvstore"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

type reader interface {
	Get(ctx context.Context, key string) (string, error)
}

// Service exposes read access to backed-up orders. Every lookup is scoped to
// the session that placed the order; other sessions' orders read as not found.
type Service interface {
	Get(ctx context.Context, sessionID, orderID string) (*Record, error)
	Recent(ctx context.Context, sessionID string, limit int) ([]Summary, error)
	Track(ctx context.Context, sessionID, orderID string) (*Tracking, error)
}

type service struct {
	store reader
	now   func() time.Time
	group singleflight.Group
}

// NewService builds an order lookup service backed by the provided store.
func NewService(store reader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("backup store required")
	}
	return &service{store: store, now: time.Now}, nil
}

func (s *service) Get(ctx context.Context, sessionID, orderID string) (*Record, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session missing")
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}

	v, err, _ := s.group.Do(orderID, func() (any, error) {
		raw, err := s.store.Get(ctx, OrderKey(orderID))
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read order")
		}
		var rec Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode order")
		}
		return &rec, nil
	})
	if err != nil {
		return nil, err
	}
	// callers sharing a flight must not share the items slice
	rec := *v.(*Record)
	if rec.SessionID != sessionID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	rec.Items = append([]Item(nil), rec.Items...)
	return &rec, nil
}

// Recent returns up to limit of the session's summaries, newest first.
func (s *service) Recent(ctx context.Context, sessionID string, limit int) ([]Summary, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session missing")
	}
	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}

	index, err := ReadIndex(ctx, s.store)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read order index")
	}

	out := make([]Summary, 0, limit)
	for i := len(index) - 1; i >= 0 && len(out) < limit; i-- {
		if index[i].SessionID == sessionID {
			out = append(out, index[i])
		}
	}
	return out, nil
}

func (s *service) Track(ctx context.Context, sessionID, orderID string) (*Tracking, error) {
	rec, err := s.Get(ctx, sessionID, orderID)
	if err != nil {
		return nil, err
	}
	tracking := BuildTracking(*rec, s.now())
	return &tracking, nil
}

// ReadIndex loads the summary index; a missing index is empty.
func ReadIndex(ctx context.Context, store reader) ([]Summary, error) {
	raw, err := store.Get(ctx, IndexKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var index []Summary
	if err := json.Unmarshal([]byte(raw), &index); err != nil {
		return nil, fmt.Errorf("decode order index: %w", err)
	}
	return index, nil
}
