package domain

// ─── Persistence Contract ───────────────────────────────────────────────────

// Slot is the durable key-value slot a cart persists into. Implementations
// live in infra; the store only sees this interface.
//
// Load never fails: corrupt, absent, or wrong-shape data yields an empty
// list. Save overwrites the whole slot value — no merge, no locking. Two
// sessions writing the same slot race last-writer-wins by design.
type Slot interface {
	Load() []LineItem
	Save(items []LineItem) error
}

// ─── Observation Contract ───────────────────────────────────────────────────

// Observer receives a read-only cart snapshot after every successful
// mutation.
type Observer func(CartView)
