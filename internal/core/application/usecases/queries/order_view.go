// Package queries contains read operations of the CQRS architecture. Query
// handlers read straight from the database and return read models; they never
// change state.
package queries

import (
	"database/sql"
	"time"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/core/domain/projection"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderViewResponse is an order together with every signal derived from its
// status.
type OrderViewResponse struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	CustomerAddressID  kernel.UUID
	RunnerID           *kernel.UUID
	AtmID              *kernel.UUID
	RequestedAmount    decimal.Decimal
	Status             order.Status
	DeliveryStyle      order.DeliveryStyle
	Timeline           order.Timeline
	CancellationReason *string

	View               projection.View
	AllowedTransitions []order.Status
}

// orderColumns is the select list matching orderRow.
const orderColumns = `
	id,
	customer_id,
	customer_address_id,
	runner_id,
	atm_id,
	requested_amount,
	status,
	delivery_style,
	delivery_mode,
	created_at,
	runner_accepted_at,
	runner_at_atm_at,
	cash_withdrawn_at,
	handoff_completed_at,
	cancelled_at,
	cancellation_reason`

type orderRow struct {
	ID                 uuid.UUID
	CustomerID         uuid.UUID
	CustomerAddressID  uuid.UUID
	RunnerID           *uuid.UUID
	AtmID              *uuid.UUID
	RequestedAmount    decimal.Decimal
	Status             string
	DeliveryStyle      *string
	DeliveryMode       *string
	CreatedAt          time.Time
	RunnerAcceptedAt   *time.Time
	RunnerAtAtmAt      *time.Time
	CashWithdrawnAt    *time.Time
	HandoffCompletedAt *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
}

func scanOrderRow(rows *sql.Rows) (orderRow, error) {
	var r orderRow
	err := rows.Scan(
		&r.ID,
		&r.CustomerID,
		&r.CustomerAddressID,
		&r.RunnerID,
		&r.AtmID,
		&r.RequestedAmount,
		&r.Status,
		&r.DeliveryStyle,
		&r.DeliveryMode,
		&r.CreatedAt,
		&r.RunnerAcceptedAt,
		&r.RunnerAtAtmAt,
		&r.CashWithdrawnAt,
		&r.HandoffCompletedAt,
		&r.CancelledAt,
		&r.CancellationReason,
	)
	return r, err
}

func (r orderRow) toResponse() (OrderViewResponse, error) {
	id, err := kernel.UUIDFromGoogle(r.ID)
	if err != nil {
		return OrderViewResponse{}, err
	}
	customerID, err := kernel.UUIDFromGoogle(r.CustomerID)
	if err != nil {
		return OrderViewResponse{}, err
	}
	addressID, err := kernel.UUIDFromGoogle(r.CustomerAddressID)
	if err != nil {
		return OrderViewResponse{}, err
	}
	runnerID, err := optionalUUID(r.RunnerID)
	if err != nil {
		return OrderViewResponse{}, err
	}
	atmID, err := optionalUUID(r.AtmID)
	if err != nil {
		return OrderViewResponse{}, err
	}

	status := order.Status(r.Status)
	style := order.DeliveryStyle(deref(r.DeliveryStyle))
	legacy := order.LegacyDeliveryMode(deref(r.DeliveryMode))

	// Rows are not restored into the aggregate: a status outside the lifecycle
	// still renders, with the unknown projection and no allowed transitions.
	return OrderViewResponse{
		ID:                id,
		CustomerID:        customerID,
		CustomerAddressID: addressID,
		RunnerID:          runnerID,
		AtmID:             atmID,
		RequestedAmount:   r.RequestedAmount,
		Status:            status,
		DeliveryStyle:     order.ResolveDeliveryStyle(style, legacy),
		Timeline: order.Timeline{
			CreatedAt:          r.CreatedAt,
			RunnerAcceptedAt:   r.RunnerAcceptedAt,
			RunnerAtAtmAt:      r.RunnerAtAtmAt,
			CashWithdrawnAt:    r.CashWithdrawnAt,
			HandoffCompletedAt: r.HandoffCompletedAt,
			CancelledAt:        r.CancelledAt,
		},
		CancellationReason: r.CancellationReason,
		View:               projection.Project(status, style, legacy),
		AllowedTransitions: status.AllowedTransitions(),
	}, nil
}

// NewOrderViewResponse builds the read model of an order that is already in
// memory, such as the one returned by a transition.
func NewOrderViewResponse(o *order.Order) OrderViewResponse {
	return OrderViewResponse{
		ID:                 o.ID(),
		CustomerID:         o.CustomerID(),
		CustomerAddressID:  o.CustomerAddressID(),
		RunnerID:           o.RunnerID(),
		AtmID:              o.AtmID(),
		RequestedAmount:    o.RequestedAmount(),
		Status:             o.Status(),
		DeliveryStyle:      o.EffectiveDeliveryStyle(),
		Timeline:           o.Timeline(),
		CancellationReason: o.CancellationReason(),
		View:               projection.ProjectOrder(o),
		AllowedTransitions: o.Status().AllowedTransitions(),
	}
}

func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // absent reference
	}
	u, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
