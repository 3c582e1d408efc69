// Package order provides the Order record and its fulfilment lifecycle.
//
// The package includes:
//   - Order: an immutable production order stored under its ID
//   - Status: the forward-only sequence of fulfilment stages
//   - Revise: the guarded transition applied on every update
//
// Key business rules:
//   - Creating an order stores the supplied status label verbatim, even unknown ones
//   - Every update advances the stored status by at most one stage
//   - Each stage has admission guards; the first violated guard rejects the update
//     with an errs.InvalidOrderError whose message is the reason
//   - Guards that look at the delivery date are evaluated against today's date,
//     so their outcome depends on when the update runs
package order
