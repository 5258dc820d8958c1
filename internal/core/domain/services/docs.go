// Package services provides domain services that work across aggregates of
// the cash delivery system.
//
// The package includes:
//   - TransitionValidator: checks a status change against the order status
//     graph and hands it to the authoritative store
//   - AtmSelector: picks the withdrawal ATM for a delivery address from its
//     learned preferences or by great-circle distance
package services
