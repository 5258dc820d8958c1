// Package projection derives the user-facing signals of an order from its
// status: the customer step, progress bar fill, chat and identity gates and
// the delivery-style instruction.
//
// Every function is pure and total. Unrecognised input degrades to the
// safest rendering (no progress, chat closed, identity blurred) instead of
// returning an error, so display code never has to handle a failure here.
package projection
