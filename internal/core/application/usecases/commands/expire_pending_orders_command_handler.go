package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/core/domain/services"
	"cashrun/internal/pkg/errs"
)

// ExpirePendingOrdersResult reports one expiry run.
type ExpirePendingOrdersResult struct {
	Expired int
	Skipped int
}

// ExpirePendingOrdersCommandHandler cancels stale Pending orders through the
// regular transition path. An order accepted by a runner in the meantime is
// rejected by the store and skipped.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	advancer   OrderAdvancer
	logger     *slog.Logger
	now        func() time.Time
}

func NewExpirePendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	advancer OrderAdvancer,
	logger *slog.Logger,
) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		advancer:   advancer,
		logger:     logger.With("component", "pending_order_expiry"),
		now:        time.Now,
	}
}

// Handle cancels up to BatchSize orders created more than TTL ago. Network
// failures do not stop the run; they are joined into the returned error.
func (h ExpirePendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd ExpirePendingOrdersCommand,
) (ExpirePendingOrdersResult, error) {
	var result ExpirePendingOrdersResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	cutoff := h.now().UTC().Add(-cmd.TTL())
	stale, err := h.uowFactory.Create().OrderRepository().GetPendingCreatedBefore(ctx, cutoff, cmd.BatchSize())
	if err != nil {
		return result, err
	}

	reason := ExpiryReason
	var failures []error

	for _, o := range stale {
		_, advanceErr := h.advancer.Advance(ctx, o, order.Cancelled, services.TransitionMetadata{Reason: &reason})
		switch {
		case advanceErr == nil:
			result.Expired++
		case errors.Is(advanceErr, errs.ErrRemoteRejection), errors.Is(advanceErr, errs.ErrInvalidTransition):
			result.Skipped++
			h.logger.DebugContext(ctx, "Pending order moved on before expiry",
				"order_id", o.ID().String(), "error", advanceErr)
		default:
			failures = append(failures, advanceErr)
		}
	}

	return result, errors.Join(failures...)
}
