// Package cart implements the per-session cart store: an in-memory ledger
// of line items with derived totals, a drawer visibility flag, observer
// notification, and write-through persistence into a durable slot.
//
// The store is an explicitly constructed instance — one per session, no
// package-level singleton — so tests and the session manager can hold
// isolated carts. Callers pass value snapshots in and get value snapshots
// back; the internal item list is never shared.
package cart

import (
	"sync"

	"github.com/pulpworks/pulpstore/internal/domain"
	"github.com/pulpworks/pulpstore/internal/infra/observability"
)

// Store owns the authoritative line-item list for one session.
//
// All mutations are synchronous: they update memory, write through to the
// slot, and notify observers before returning. A failed slot write never
// rolls the mutation back — memory stays authoritative for the session and
// the next mutation retries the write.
type Store struct {
	mu        sync.Mutex
	slot      domain.Slot
	rules     domain.PricingRules
	items     []domain.LineItem
	visible   bool
	observers map[int]domain.Observer
	nextObs   int
}

// NewStore builds a store and hydrates it from the slot exactly once.
// A corrupt or absent slot yields an empty cart, never an error.
func NewStore(slot domain.Slot, rules domain.PricingRules) *Store {
	s := &Store{
		slot:      slot,
		rules:     rules,
		observers: make(map[int]domain.Observer),
	}
	s.items = slot.Load()
	if len(s.items) > 0 {
		observability.CartHydrations.WithLabelValues("restored").Inc()
	} else {
		observability.CartHydrations.WithLabelValues("empty").Inc()
	}
	return s
}

// ─── Mutations ──────────────────────────────────────────────────────────────

// AddItem appends a new line item with quantity 1, or increments the
// quantity of the existing item with the same id. Descriptive fields are
// first-write-wins: a re-add with a different name or price changes
// nothing but the quantity. Adding always opens the drawer.
func (s *Store) AddItem(input domain.NewLineItem) error {
	if err := input.Validate(); err != nil {
		observability.CartRejectedAdds.Inc()
		return err
	}

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == input.ID {
			s.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, domain.LineItem{
			ID:            input.ID,
			Name:          input.Name,
			Description:   input.Description,
			UnitPrice:     input.UnitPrice,
			OriginalPrice: input.OriginalPrice,
			Image:         input.Image,
			Kind:          input.Kind,
			Quantity:      1,
		})
	}
	s.visible = true
	s.persistLocked()
	view, obs := s.snapshotLocked()
	s.mu.Unlock()

	observability.CartMutations.WithLabelValues("add").Inc()
	notify(obs, view)
	return nil
}

// RemoveItem deletes the line item with the given id. Absent id is a
// no-op, not an error.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	if !s.removeLocked(id) {
		s.mu.Unlock()
		return
	}
	s.persistLocked()
	view, obs := s.snapshotLocked()
	s.mu.Unlock()

	observability.CartMutations.WithLabelValues("remove").Inc()
	notify(obs, view)
}

// UpdateQuantity sets an item's quantity to an absolute value. A quantity
// of zero or less removes the item. An absent id with a positive quantity
// is a no-op — only AddItem creates entries.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}

	s.mu.Lock()
	changed := false
	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Quantity != quantity {
				s.items[i].Quantity = quantity
				changed = true
			}
			break
		}
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	s.persistLocked()
	view, obs := s.snapshotLocked()
	s.mu.Unlock()

	observability.CartMutations.WithLabelValues("update").Inc()
	notify(obs, view)
}

// Clear empties the ledger. The visibility flag keeps whatever value it
// had before the call.
func (s *Store) Clear() {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return
	}
	s.items = nil
	s.persistLocked()
	view, obs := s.snapshotLocked()
	s.mu.Unlock()

	observability.CartMutations.WithLabelValues("clear").Inc()
	notify(obs, view)
}

// SetVisible toggles the drawer flag by explicit UI intent. Visibility is
// not persisted — it is session state, not ledger state — but observers
// are told so every surface stays in sync.
func (s *Store) SetVisible(visible bool) {
	s.mu.Lock()
	if s.visible == visible {
		s.mu.Unlock()
		return
	}
	s.visible = visible
	view, obs := s.snapshotLocked()
	s.mu.Unlock()

	notify(obs, view)
}

// ─── Reads ──────────────────────────────────────────────────────────────────

// Items returns a copy of the line-item list in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.items)
}

// Totals derives item count, subtotal, shipping, and grand total from the
// current state. Pure read, safe on an empty cart.
func (s *Store) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ComputeTotals(s.items, s.rules)
}

// Visible reports whether the cart drawer is open.
func (s *Store) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// View returns the full read-only snapshot the presentation layer renders.
func (s *Store) View() domain.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	view, _ := s.snapshotLocked()
	return view
}

// Rules returns the pricing rules this store was built with.
func (s *Store) Rules() domain.PricingRules {
	return s.rules
}

// ─── Observation ────────────────────────────────────────────────────────────

// Subscribe registers an observer called after every successful mutation.
// The returned function unsubscribes it.
func (s *Store) Subscribe(obs domain.Observer) func() {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = obs
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// ─── Internals ──────────────────────────────────────────────────────────────

func (s *Store) removeLocked(id string) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// persistLocked writes the full item list through to the slot. Failures
// are counted and swallowed: the session keeps its in-memory state and the
// next mutation attempts the write again.
func (s *Store) persistLocked() {
	if err := s.slot.Save(copyItems(s.items)); err != nil {
		observability.CartPersistFailures.Inc()
	}
}

func (s *Store) snapshotLocked() (domain.CartView, []domain.Observer) {
	view := domain.CartView{
		Items:   copyItems(s.items),
		Totals:  domain.ComputeTotals(s.items, s.rules),
		Visible: s.visible,
	}
	obs := make([]domain.Observer, 0, len(s.observers))
	for _, o := range s.observers {
		obs = append(obs, o)
	}
	return view, obs
}

// notify runs outside the store lock so an observer may call back into the
// store without deadlocking.
func notify(observers []domain.Observer, view domain.CartView) {
	for _, o := range observers {
		o(view)
	}
}

func copyItems(items []domain.LineItem) []domain.LineItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]domain.LineItem, len(items))
	copy(out, items)
	return out
}
