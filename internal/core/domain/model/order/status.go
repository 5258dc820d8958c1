package order

import (
	"fmt"

	"cashrun/internal/pkg/errs"
)

// Status is the lifecycle state of a cash delivery order. The string values
// are the literals stored in the database and exchanged with clients.
//
// State transitions:
//
//	Pending ──> Runner Accepted ──> Runner at ATM ──> Cash Withdrawn ──> Pending Handoff ──> Completed
//	   │               │                  │                 │                   │
//	   └───────────────┴──────────────────┴─────────────────┴───────────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: they have no outgoing edge, not even
// to themselves.
type Status string

const (
	// Unknown is the zero value; it is never a valid stored status.
	Unknown Status = ""

	Pending        Status = "Pending"
	RunnerAccepted Status = "Runner Accepted"
	RunnerAtAtm    Status = "Runner at ATM"
	CashWithdrawn  Status = "Cash Withdrawn"
	PendingHandoff Status = "Pending Handoff"
	Completed      Status = "Completed"
	Cancelled      Status = "Cancelled"
)

// happyPath lists the linear fulfilment sequence. Index order matters.
var happyPath = []Status{
	Pending,
	RunnerAccepted,
	RunnerAtAtm,
	CashWithdrawn,
	PendingHandoff,
	Completed,
}

// transitions is the complete edge set of the status graph.
var transitions = buildTransitions()

func buildTransitions() map[Status]map[Status]struct{} {
	graph := make(map[Status]map[Status]struct{}, len(happyPath)+1)
	for i, s := range happyPath {
		graph[s] = make(map[Status]struct{})
		if i+1 < len(happyPath) {
			graph[s][happyPath[i+1]] = struct{}{}
		}
	}
	graph[Cancelled] = make(map[Status]struct{})

	for s := range graph {
		if s != Completed && s != Cancelled {
			graph[s][Cancelled] = struct{}{}
		}
	}
	return graph
}

// AllStatuses returns the seven valid statuses in lifecycle order, Cancelled last.
func AllStatuses() []Status {
	all := make([]Status, 0, len(happyPath)+1)
	all = append(all, happyPath...)
	return append(all, Cancelled)
}

// ParseStatus converts a stored or client supplied literal into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return Unknown, err
	}
	return status, nil
}

// CanTransition reports whether current -> next is an edge of the status graph.
// It is total: unknown statuses on either side yield false.
func CanTransition(current, next Status) bool {
	edges, ok := transitions[current]
	if !ok {
		return false
	}
	_, ok = edges[next]
	return ok
}

// Validate checks that s is one of the seven lifecycle literals.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	if s.Validate() != nil {
		return "Unknown"
	}
	return string(s)
}

// IsTerminal reports whether no further transition is possible from s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo is the method form of CanTransition.
func (s Status) CanTransitionTo(next Status) bool {
	return CanTransition(s, next)
}

// Next returns the happy-path successor of s. ok is false for terminal and
// unknown statuses.
func (s Status) Next() (Status, bool) {
	for i, step := range happyPath {
		if step == s && i+1 < len(happyPath) {
			return happyPath[i+1], true
		}
	}
	return Unknown, false
}

// AllowedTransitions returns the statuses reachable from s in one step, happy
// path successor first.
func (s Status) AllowedTransitions() []Status {
	out := make([]Status, 0, 2)
	if next, ok := s.Next(); ok {
		out = append(out, next)
	}
	if CanTransition(s, Cancelled) {
		out = append(out, Cancelled)
	}
	return out
}
