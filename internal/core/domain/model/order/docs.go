// Package order implements the Order aggregate of the order-management system.
//
// The package owns three closely related pieces of the domain:
//
//   - Status and Normalize: the canonical lifecycle vocabulary and the total
//     mapping from arbitrary raw status strings (including legacy aliases)
//     onto it. Every read of an order's status goes through Normalize.
//   - Substage: the fine-grained sub-state machine active while an order is
//     being processed by the restaurant.
//   - Order: the aggregate root enforcing lifecycle transitions, captain
//     assignment, deferred and scheduled dispatch flags, and the economics
//     invariants.
//
// Orders are never deleted. Cancellation and problem flagging are terminal
// statuses; once an order is delivered, cancelled or flagged, no further
// lifecycle operation is accepted and ErrInvalidTransition is returned.
package order
