package orderstore

import (
	"context"
	"log/slog"
	"sync"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

// Notifier is told about orders that arrive from other sessions.
type Notifier interface {
	OrderReceived(o *order.Order)
}

// Store is the authoritative in-memory collection of orders for the
// running session. Orders are kept newest first. Every local mutation
// is followed by a snapshot save; a failed save never rolls the
// mutation back.
//
// Stored aggregates are never mutated in place: mutations clone the
// aggregate and swap the pointer under the lock. A pointer handed out
// by Get or Orders is therefore a stable snapshot, safe to read from
// request goroutines while the consumer goroutine keeps merging.
type Store struct {
	mu     sync.Mutex
	orders []*order.Order

	saver    ports.SnapshotSaver
	notifier Notifier
	logger   *slog.Logger
}

// NewStore creates an empty store. The saver and notifier may be nil,
// in which case snapshots and notifications are skipped.
func NewStore(saver ports.SnapshotSaver, notifier Notifier, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		saver:    saver,
		notifier: notifier,
		logger:   logger,
	}
}

// Load replaces the collection with orders read from the repository.
// It is called once at session start and does not trigger a snapshot.
func (s *Store) Load(orders []*order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = make([]*order.Order, len(orders))
	copy(s.orders, orders)
}

// Replace swaps the whole collection for the given orders. Unlike Load
// it triggers a snapshot save, since a restore or reset must outlive
// the session.
func (s *Store) Replace(ctx context.Context, orders []*order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = make([]*order.Order, len(orders))
	copy(s.orders, orders)

	s.persist(ctx)
}

// Add prepends a new order. Adding an order whose ID is already
// present is a no-op.
func (s *Store) Add(ctx context.Context, o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(o.ID()) >= 0 {
		return
	}
	s.orders = append([]*order.Order{o}, s.orders...)

	s.persist(ctx)
}

// UpdateStatus moves the order with the given ID to the requested
// status. An unknown ID is a no-op. An illegal transition is reported
// and leaves the store untouched.
func (s *Store) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	updated := s.orders[i].Clone()
	if err := updated.ChangeStatus(status); err != nil {
		return err
	}
	s.orders[i] = updated

	s.persist(ctx)
	return nil
}

// Update replaces the stored order with the given one and records the
// edit in its audit history. An unknown ID is a no-op.
func (s *Store) Update(ctx context.Context, o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(o.ID())
	if i < 0 {
		return
	}

	o.MarkEdited()
	s.orders[i] = o

	s.persist(ctx)
}

// Delete removes the order with the given ID. An unknown ID is a no-op.
func (s *Store) Delete(ctx context.Context, id kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.orders = append(s.orders[:i], s.orders[i+1:]...)

	s.persist(ctx)
}

// Apply merges a change made by another session. Whichever write is
// applied last wins; no snapshot is taken since the change is already
// persisted upstream.
func (s *Store) Apply(ev Event) {
	s.mu.Lock()

	var received *order.Order
	switch e := ev.(type) {
	case OrderInserted:
		if s.indexOf(e.Order.ID()) < 0 {
			s.orders = append([]*order.Order{e.Order}, s.orders...)
			received = e.Order
		}
	case OrderUpdated:
		if i := s.indexOf(e.Order.ID()); i >= 0 {
			s.orders[i] = e.Order
		}
	case OrderDeleted:
		if i := s.indexOf(e.ID); i >= 0 {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
		}
	}

	s.mu.Unlock()

	if received != nil && s.notifier != nil {
		s.notifier.OrderReceived(received)
	}
}

// Orders returns a snapshot of the collection, newest first.
func (s *Store) Orders() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*order.Order, len(s.orders))
	copy(snapshot, s.orders)
	return snapshot
}

// Get returns the order with the given ID, if present.
func (s *Store) Get(id kernel.UUID) (*order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return s.orders[i], true
}

func (s *Store) indexOf(id kernel.UUID) int {
	for i, o := range s.orders {
		if o.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}

// persist saves a snapshot of the collection. The caller must hold the
// lock. Save failures are logged and never surfaced to the caller.
func (s *Store) persist(ctx context.Context) {
	if s.saver == nil {
		return
	}

	snapshot := make([]*order.Order, len(s.orders))
	copy(snapshot, s.orders)

	result, err := s.saver.SaveSnapshot(ctx, snapshot)
	if err != nil {
		s.logger.Warn("order snapshot save failed", "error", err)
		return
	}
	if result.Warning != "" {
		s.logger.Warn("order snapshot saved with warning", "warning", result.Warning)
	}
}
