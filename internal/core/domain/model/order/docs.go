// Package order models the cash delivery order and its lifecycle.
//
// The package includes:
//   - Status: the seven lifecycle states and the transition graph between them
//   - DeliveryStyle: COUNTED or SPEED handoff, with the deprecated
//     LegacyDeliveryMode shim for rows that predate delivery_style
//   - Order: the aggregate as confirmed by the authoritative store
//
// Status changes are never applied locally. Callers validate an edge with
// CanTransition, ask the store to perform it, and replace their Order with
// the one the store returns.
package order
