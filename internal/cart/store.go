// Package cart holds the per-session shopping cart aggregate.
package cart

import (
	"sync"

	"github.com/naturesnacks/snackstore/internal/catalog"
)

// Line is one product in the cart with the display fields copied from the catalog.
type Line struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Image     string `json:"image"`
	Weight    string `json:"weight"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Snapshot is an immutable view of the cart at one point in time. Version grows by
// one with every mutation, so a later snapshot always carries the larger version.
type Snapshot struct {
	Version   uint64 `json:"version"`
	Lines     []Line `json:"items"`
	ItemCount int    `json:"item_count"`
	Totals
}

// Empty reports whether the snapshot has no lines.
func (s Snapshot) Empty() bool {
	return len(s.Lines) == 0
}

// Listener receives the new snapshot after each mutation.
type Listener func(Snapshot)

// Store is the cart aggregate for one session. At most one line exists per product id.
// Listeners run synchronously, outside the store lock, before the mutating call returns.
// They see snapshots in version order and may read the store but must not mutate it.
type Store struct {
	mu        sync.Mutex
	lines     []Line
	version   uint64
	listeners map[uint64]Listener
	nextID    uint64

	// taken before mu is released so deliveries keep mutation order
	notifyMu sync.Mutex
}

func NewStore() *Store {
	return &Store{listeners: make(map[uint64]Listener)}
}

// AddItem increments the product's line or appends a new line with quantity 1.
// Stock is not checked here.
func (s *Store) AddItem(p catalog.Product) {
	s.mutate(func() bool {
		s.addLocked(p)
		return true
	})
}

// AddItems adds n units, equivalent to n calls of AddItem with a single notification.
func (s *Store) AddItems(p catalog.Product, n int) {
	if n < 1 {
		return
	}
	s.mutate(func() bool {
		for i := 0; i < n; i++ {
			s.addLocked(p)
		}
		return true
	})
}

func (s *Store) addLocked(p catalog.Product) {
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Image:     p.Image,
		Weight:    p.Weight,
		Price:     p.Price,
		Quantity:  1,
	})
}

// UpdateQuantity sets the quantity of an existing line; below 1 removes it.
// Unknown ids are a no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mutate(func() bool {
		idx := s.indexLocked(productID)
		if idx < 0 {
			return false
		}
		if quantity < 1 {
			s.removeAtLocked(idx)
			return true
		}
		s.lines[idx].Quantity = quantity
		return true
	})
}

// RemoveItem drops the line unconditionally; absent ids are a no-op.
func (s *Store) RemoveItem(productID string) {
	s.mutate(func() bool {
		idx := s.indexLocked(productID)
		if idx < 0 {
			return false
		}
		s.removeAtLocked(idx)
		return true
	})
}

func (s *Store) ClearCart() {
	s.mutate(func() bool {
		s.lines = nil
		return true
	})
}

// Lines returns a copy of the lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLinesLocked()
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCountLocked()
}

func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn for mutation notifications and returns its cancel func.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) mutate(fn func() bool) {
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return
	}
	s.version++
	snap := s.snapshotLocked()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

func (s *Store) indexLocked(productID string) int {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) removeAtLocked(idx int) {
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
}

func (s *Store) copyLinesLocked() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) itemCountLocked() int {
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

func (s *Store) subtotalLocked() int64 {
	var subtotal int64
	for _, l := range s.lines {
		subtotal += l.Price * int64(l.Quantity)
	}
	return subtotal
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Version:   s.version,
		Lines:     s.copyLinesLocked(),
		ItemCount: s.itemCountLocked(),
		Totals:    ComputeTotals(s.subtotalLocked()),
	}
}
