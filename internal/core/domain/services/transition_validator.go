package services

import (
	"context"
	"errors"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/core/ports"
	"cashrun/internal/pkg/errs"
)

// TransitionMetadata travels with a transition request to the store.
type TransitionMetadata struct {
	Reason  *string
	ActorID kernel.UUID
	Flags   map[string]bool
}

// TransitionValidator guards every status change of an order. It checks the
// requested edge against the status graph and then asks the authoritative
// store to apply it. It never changes the order locally: the caller replaces
// its copy with the one returned by Advance.
type TransitionValidator struct {
	gateway ports.TransitionGateway
	metrics ports.Metrics
}

func NewTransitionValidator(gateway ports.TransitionGateway, metrics ports.Metrics) TransitionValidator {
	return TransitionValidator{
		gateway: gateway,
		metrics: metrics,
	}
}

// CanTransition reports whether current -> next is a legal edge.
func (v TransitionValidator) CanTransition(current, next order.Status) bool {
	return order.CanTransition(current, next)
}

// Advance requests the transition of o to next.
//
// Errors:
//   - errs.InvalidTransitionError when the edge is illegal; the store is not contacted
//   - errs.RemoteRejectionError when the store refused the change, including
//     metadata the store requires, such as the runner for Runner Accepted
//   - errs.NetworkError when the store could not be reached
//
// On success the order returned by the store is returned unmodified.
func (v TransitionValidator) Advance(
	ctx context.Context,
	o *order.Order,
	next order.Status,
	meta TransitionMetadata,
) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	current := o.Status()
	if !v.CanTransition(current, next) {
		v.metrics.TransitionRequested(ports.TransitionInvalid)
		return nil, errs.NewInvalidTransitionError(string(current), string(next))
	}

	updated, err := v.gateway.RequestTransition(ctx, ports.TransitionRequest{
		OrderID: o.ID(),
		Current: current,
		Next:    next,
		ActorID: meta.ActorID,
		Reason:  meta.Reason,
		Flags:   meta.Flags,
	})
	if err != nil {
		err = classifyGatewayError(err)
		if errors.Is(err, errs.ErrRemoteRejection) {
			v.metrics.TransitionRequested(ports.TransitionRejected)
		} else {
			v.metrics.TransitionRequested(ports.TransitionNetwork)
		}
		return nil, err
	}
	if updated == nil {
		v.metrics.TransitionRequested(ports.TransitionNetwork)
		return nil, errs.NewNetworkError("request transition: empty response", nil)
	}

	v.metrics.TransitionRequested(ports.TransitionApplied)
	return updated, nil
}

// classifyGatewayError keeps rejection and network errors as they are and
// treats anything else as a transport failure.
func classifyGatewayError(err error) error {
	if errors.Is(err, errs.ErrRemoteRejection) || errors.Is(err, errs.ErrNetwork) {
		return err
	}
	return errs.NewNetworkError("request transition", err)
}
