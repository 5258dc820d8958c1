package projection

import "cashrun/internal/core/domain/model/order"

// View bundles every derived signal for one order state.
type View struct {
	Status           order.Status
	Step             CustomerStep
	ProgressFill     int
	ChatOpen         bool
	IdentityRevealed bool
	Instruction      Instruction
}

// Project computes the full View. It is pure and never fails: unknown
// statuses yield StepUnknown, zero progress and closed gates.
func Project(status order.Status, style order.DeliveryStyle, legacy order.LegacyDeliveryMode) View {
	step := CustomerStepOf(status)
	return View{
		Status:           status,
		Step:             step,
		ProgressFill:     ProgressFill(step),
		ChatOpen:         ChatOpen(status),
		IdentityRevealed: IdentityRevealed(status),
		Instruction:      DeliveryInstruction(style, legacy),
	}
}

// ProjectOrder is Project applied to an order's current state.
func ProjectOrder(o *order.Order) View {
	if o.Validate() != nil {
		return Project(order.Unknown, order.StyleUnset, order.LegacyModeUnset)
	}
	return Project(o.Status(), o.DeliveryStyle(), o.LegacyDeliveryMode())
}
