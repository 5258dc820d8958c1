package ports

// Transition outcomes reported to Metrics.TransitionRequested.
const (
	TransitionApplied  = "applied"
	TransitionInvalid  = "invalid"
	TransitionRejected = "rejected"
	TransitionNetwork  = "network"
)

// Metrics receives business counters from the core.
type Metrics interface {
	// AtmAssigned counts a successful assignment by source
	// ("preference" or "nearest").
	AtmAssigned(source string)

	// PreferenceWriteFailed counts best-effort preference writes that failed.
	PreferenceWriteFailed()

	// TransitionRequested counts transition attempts by outcome.
	TransitionRequested(outcome string)
}
