package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Add-operation contract violations
	ErrEmptyItemID   = errors.New("line item id must not be empty")
	ErrNegativePrice = errors.New("line item price must not be negative")
	ErrUnknownKind   = errors.New("unknown item kind")

	// Admin gate
	ErrBadCredentials = errors.New("invalid admin credentials")
	ErrNoSession      = errors.New("no active admin session")

	// Contact forwarding
	ErrInvalidContact = errors.New("contact message failed validation")
)
