package queries

import (
	"errors"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/pkg/guard"
)

var ErrGetActiveAtmsQueryIsNotConstructed = errors.New(
	"GetActiveAtmsQuery must be created via NewGetActiveAtmsQuery constructor",
)

// GetActiveAtmsQuery lists every ATM that can currently be assigned.
type GetActiveAtmsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveAtmsQuery() GetActiveAtmsQuery {
	return GetActiveAtmsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveAtmsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveAtmsQueryIsNotConstructed)
}

type GetActiveAtmsQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Address  string
	Location kernel.GeoPoint
}
