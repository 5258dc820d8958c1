package commands

import (
	"errors"
	"time"

	"cashrun/internal/pkg/errs"
	"cashrun/internal/pkg/guard"
)

// DefaultExpiryBatchSize bounds how many orders one expiry run cancels.
const DefaultExpiryBatchSize = 50

// ExpiryReason is recorded as the cancellation reason of expired orders.
const ExpiryReason = "expired: no runner accepted"

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand cancels orders that stayed Pending longer than ttl.
type ExpirePendingOrdersCommand struct {
	ttl       time.Duration
	batchSize int

	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand requires a positive ttl. A batchSize of zero
// or less selects DefaultExpiryBatchSize.
func NewExpirePendingOrdersCommand(ttl time.Duration, batchSize int) (ExpirePendingOrdersCommand, error) {
	if ttl <= 0 {
		return ExpirePendingOrdersCommand{}, errs.NewValueIsOutOfRangeError("pending ttl", ttl, time.Nanosecond, "unbounded")
	}
	if batchSize <= 0 {
		batchSize = DefaultExpiryBatchSize
	}

	return ExpirePendingOrdersCommand{
		ttl:       ttl,
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

func (c ExpirePendingOrdersCommand) TTL() time.Duration {
	return c.ttl
}

func (c ExpirePendingOrdersCommand) BatchSize() int {
	return c.batchSize
}
