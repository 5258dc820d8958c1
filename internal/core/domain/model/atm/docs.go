// Package atm models cash withdrawal locations and the per-address
// preferences that bias future assignments toward ATMs used before.
//
// The package includes:
//   - Atm: a withdrawal location with coordinates and an active/inactive status
//   - Preference: a (delivery address, ATM) usage counter used as a ranking hint
package atm
