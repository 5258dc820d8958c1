package queries

import (
	"errors"

	"cashrun/internal/pkg/errs"
	"cashrun/internal/pkg/guard"
)

const (
	DefaultOpenOrdersLimit = 50
	MaxOpenOrdersLimit     = 500
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery lists orders that are neither Completed nor Cancelled,
// oldest first. Runners use it to find work.
type GetOpenOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery uses DefaultOpenOrdersLimit when limit is zero.
func NewGetOpenOrdersQuery(limit int) (GetOpenOrdersQuery, error) {
	if limit == 0 {
		limit = DefaultOpenOrdersLimit
	}
	if limit < 1 || limit > MaxOpenOrdersLimit {
		return GetOpenOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOpenOrdersLimit)
	}
	return GetOpenOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

func (q GetOpenOrdersQuery) Limit() int {
	return q.limit
}
