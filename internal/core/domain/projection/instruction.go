package projection

import "cashrun/internal/core/domain/model/order"

// Instruction is the handoff guidance shown to the runner and customer.
type Instruction struct {
	Style    order.DeliveryStyle
	Title    string
	Runner   string
	Customer string
}

var (
	countedInstruction = Instruction{
		Style:    order.StyleCounted,
		Title:    "Counted handoff",
		Runner:   "Stay with the customer while they count the cash in front of you. Leave only after they confirm the amount.",
		Customer: "Count the cash in front of your runner and confirm the amount before they leave.",
	}
	speedInstruction = Instruction{
		Style:    order.StyleSpeed,
		Title:    "Speed handoff",
		Runner:   "Hand the cash to the customer and confirm the handoff. You may leave right away.",
		Customer: "Your runner will hand you the cash and may leave right away.",
	}
)

// DeliveryInstruction returns the handoff instruction for style. When style is
// unset or unrecognised it is derived from the deprecated legacy mode, and
// defaults to SPEED when both are absent.
func DeliveryInstruction(style order.DeliveryStyle, legacy order.LegacyDeliveryMode) Instruction {
	if order.ResolveDeliveryStyle(style, legacy) == order.StyleCounted {
		return countedInstruction
	}
	return speedInstruction
}
