package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/naturesnacks/snackstore/internal/orders"
	"github.com/naturesnacks/snackstore/pkg/kvstore"
)

// StoreBackup writes the full record under order_<id> and appends a summary to the index.
type StoreBackup struct {
	store kvstore.Store
	// serializes the index read-modify-write within this process
	mu sync.Mutex
}

func NewStoreBackup(store kvstore.Store) *StoreBackup {
	return &StoreBackup{store: store}
}

func (b *StoreBackup) Save(ctx context.Context, rec orders.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	if err := b.store.Set(ctx, orders.OrderKey(rec.OrderID), string(raw)); err != nil {
		return fmt.Errorf("write order: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	index, err := orders.ReadIndex(ctx, b.store)
	if err != nil {
		return fmt.Errorf("read order index: %w", err)
	}
	index = append(index, rec.Summary())
	encoded, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("encode order index: %w", err)
	}
	if err := b.store.Set(ctx, orders.IndexKey, string(encoded)); err != nil {
		return fmt.Errorf("write order index: %w", err)
	}
	return nil
}
