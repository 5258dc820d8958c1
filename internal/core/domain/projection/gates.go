package projection

import "cashrun/internal/core/domain/model/order"

// ChatOpen reports whether customer and runner may exchange messages.
// Chat opens once the runner holds the cash and closes on completion or
// cancellation.
func ChatOpen(status order.Status) bool {
	switch status {
	case order.CashWithdrawn, order.PendingHandoff:
		return true
	default:
		return false
	}
}

// IdentityRevealed reports whether the runner's photo and full name may be
// shown unblurred. Before the cash is withdrawn only the initial is shown.
func IdentityRevealed(status order.Status) bool {
	switch status {
	case order.CashWithdrawn, order.PendingHandoff, order.Completed:
		return true
	default:
		return false
	}
}
