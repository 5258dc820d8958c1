package projection

import "cashrun/internal/core/domain/model/order"

// CustomerStep is the public vocabulary shown to customers. Several internal
// statuses may collapse into one step.
type CustomerStep string

const (
	StepUnknown   CustomerStep = "UNKNOWN"
	StepRequested CustomerStep = "REQUESTED"
	StepAssigned  CustomerStep = "ASSIGNED"
	StepPreparing CustomerStep = "PREPARING"
	StepOnTheWay  CustomerStep = "ON_THE_WAY"
	StepArrived   CustomerStep = "ARRIVED"
	StepCompleted CustomerStep = "COMPLETED"
	StepCanceled  CustomerStep = "CANCELED"
)

// MaxProgressFill is the number of segments in the customer progress bar.
const MaxProgressFill = 5

var stepByStatus = map[order.Status]CustomerStep{
	order.Pending:        StepRequested,
	order.RunnerAccepted: StepAssigned,
	order.RunnerAtAtm:    StepPreparing,
	order.CashWithdrawn:  StepOnTheWay,
	order.PendingHandoff: StepArrived,
	order.Completed:      StepCompleted,
	order.Cancelled:      StepCanceled,
}

var fillByStep = map[CustomerStep]int{
	StepRequested: 1,
	StepAssigned:  2,
	StepPreparing: 3,
	StepOnTheWay:  4,
	StepArrived:   5,
	StepCompleted: 5,
	StepCanceled:  0,
}

// CustomerSteps returns the seven public steps in lifecycle order.
func CustomerSteps() []CustomerStep {
	return []CustomerStep{
		StepRequested, StepAssigned, StepPreparing, StepOnTheWay,
		StepArrived, StepCompleted, StepCanceled,
	}
}

// CustomerStepOf maps an order status to its customer-facing step.
// Unrecognised statuses map to StepUnknown.
func CustomerStepOf(status order.Status) CustomerStep {
	if step, ok := stepByStatus[status]; ok {
		return step
	}
	return StepUnknown
}

// ProgressFill returns how many of the MaxProgressFill segments are filled.
// Cancelled and unknown steps show an empty bar.
func ProgressFill(step CustomerStep) int {
	return fillByStep[step]
}
