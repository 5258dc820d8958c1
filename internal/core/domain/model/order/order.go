package order

import (
	"errors"
	"fmt"
	"time"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrAtmAlreadyAssigned is returned when an ATM is attached twice.
	ErrAtmAlreadyAssigned = errors.New("atm is already assigned to the order")
)

// Timeline holds the per-state entry timestamps. A timestamp is set when its
// state is entered and never cleared.
type Timeline struct {
	CreatedAt          time.Time
	RunnerAcceptedAt   *time.Time
	RunnerAtAtmAt      *time.Time
	CashWithdrawnAt    *time.Time
	HandoffCompletedAt *time.Time
	CancelledAt        *time.Time
}

// Snapshot is the flat, exported form of an order used to rehydrate the
// aggregate from the authoritative store.
type Snapshot struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	CustomerAddressID  kernel.UUID
	RunnerID           *kernel.UUID
	AtmID              *kernel.UUID
	RequestedAmount    decimal.Decimal
	Status             Status
	DeliveryStyle      DeliveryStyle
	LegacyDeliveryMode LegacyDeliveryMode
	Timeline           Timeline
	CancellationReason *string
}

// Order is the cash delivery aggregate as last confirmed by the authoritative
// store. It is read-only with respect to status: transitions are
// requested through the TransitionValidator and the returned order replaces
// the local one.
//
// Invariants:
//   - status is one of the seven lifecycle literals
//   - at most one of HandoffCompletedAt and CancelledAt is set, and only when
//     status is the matching terminal state
//   - requested amount is positive with at most two decimal places
type Order struct {
	id                 kernel.UUID
	customerID         kernel.UUID
	customerAddressID  kernel.UUID
	runnerID           *kernel.UUID
	atmID              *kernel.UUID
	requestedAmount    decimal.Decimal
	status             Status
	deliveryStyle      DeliveryStyle
	legacyDeliveryMode LegacyDeliveryMode
	timeline           Timeline
	cancellationReason *string

	isConstructed bool
}

// NewOrder creates an order in Pending status.
//
// Example:
//
//	amount := decimal.RequireFromString("200.00")
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, addressID, amount, order.StyleCounted, time.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerAddressID kernel.UUID,
	requestedAmount decimal.Decimal,
	style DeliveryStyle,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCustomerAddressID(customerAddressID),
		o.setRequestedAmount(requestedAmount),
		o.setDeliveryStyle(style),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from a stored snapshot. Rows written before
// delivery_style existed may carry only the legacy mode; both are accepted.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		isConstructed:      true,
		legacyDeliveryMode: s.LegacyDeliveryMode,
		cancellationReason: s.CancellationReason,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerID(s.CustomerID),
		o.setCustomerAddressID(s.CustomerAddressID),
		o.setRequestedAmount(s.RequestedAmount),
		o.setStatus(s.Status),
		o.restoreDeliveryStyle(s.DeliveryStyle),
		o.setCreatedAt(s.Timeline.CreatedAt),
		validateOptionalID("runner id", s.RunnerID),
		validateOptionalID("atm id", s.AtmID),
	); err != nil {
		return nil, err
	}

	if err := validateTerminalTimestamps(s.Status, s.Timeline); err != nil {
		return nil, err
	}

	o.runnerID = s.RunnerID
	o.atmID = s.AtmID
	o.timeline = s.Timeline
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) CustomerAddressID() kernel.UUID {
	return o.customerAddressID
}

// RunnerID is nil until a runner accepts the order.
func (o *Order) RunnerID() *kernel.UUID {
	return o.runnerID
}

// AtmID is nil until an ATM has been assigned.
func (o *Order) AtmID() *kernel.UUID {
	return o.atmID
}

func (o *Order) RequestedAmount() decimal.Decimal {
	return o.requestedAmount
}

func (o *Order) Status() Status {
	return o.status
}

// DeliveryStyle returns the stored style, which may be StyleUnset on legacy rows.
func (o *Order) DeliveryStyle() DeliveryStyle {
	return o.deliveryStyle
}

// LegacyDeliveryMode returns the deprecated delivery_mode value.
func (o *Order) LegacyDeliveryMode() LegacyDeliveryMode {
	return o.legacyDeliveryMode
}

// EffectiveDeliveryStyle resolves the style, falling back to the legacy mode
// and then to DefaultDeliveryStyle.
func (o *Order) EffectiveDeliveryStyle() DeliveryStyle {
	return ResolveDeliveryStyle(o.deliveryStyle, o.legacyDeliveryMode)
}

func (o *Order) Timeline() Timeline {
	return o.timeline
}

func (o *Order) CancellationReason() *string {
	return o.cancellationReason
}

// TimestampFor returns when the order entered status, or nil if it never did.
func (o *Order) TimestampFor(status Status) *time.Time {
	switch status {
	case Pending:
		created := o.timeline.CreatedAt
		return &created
	case RunnerAccepted:
		return o.timeline.RunnerAcceptedAt
	case RunnerAtAtm:
		return o.timeline.RunnerAtAtmAt
	case CashWithdrawn:
		return o.timeline.CashWithdrawnAt
	case PendingHandoff:
		// Pending Handoff has no dedicated column; the handoff starts once
		// the runner is on the way with the cash.
		return nil
	case Completed:
		return o.timeline.HandoffCompletedAt
	case Cancelled:
		return o.timeline.CancelledAt
	case Unknown:
		return nil
	default:
		return nil
	}
}

// AssignAtm records the withdrawal location chosen for a Pending order.
func (o *Order) AssignAtm(atmID kernel.UUID) error {
	if err := atmID.Validate(); err != nil {
		return err
	}
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign an atm", o.status.String()),
		)
	}
	if o.atmID != nil {
		return ErrAtmAlreadyAssigned
	}

	o.atmID = &atmID
	return nil
}

// Snapshot returns the exported state of the order.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                 o.id,
		CustomerID:         o.customerID,
		CustomerAddressID:  o.customerAddressID,
		RunnerID:           o.runnerID,
		AtmID:              o.atmID,
		RequestedAmount:    o.requestedAmount,
		Status:             o.status,
		DeliveryStyle:      o.deliveryStyle,
		LegacyDeliveryMode: o.legacyDeliveryMode,
		Timeline:           o.timeline,
		CancellationReason: o.cancellationReason,
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setCustomerAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer address id", err)
	}
	o.customerAddressID = id
	return nil
}

func (o *Order) setRequestedAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("requested amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}
	if !amount.Equal(amount.Round(2)) {
		return errs.NewValueIsInvalidErrorWithCause("requested amount is invalid",
			fmt.Errorf("%s has more than two decimal places", amount.String()))
	}
	o.requestedAmount = amount
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDeliveryStyle(style DeliveryStyle) error {
	if err := style.Validate(); err != nil {
		return err
	}
	o.deliveryStyle = style
	return nil
}

func (o *Order) restoreDeliveryStyle(style DeliveryStyle) error {
	if style == StyleUnset {
		return nil
	}
	return o.setDeliveryStyle(style)
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.timeline.CreatedAt = createdAt
	return nil
}

func validateOptionalID(name string, id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

func validateTerminalTimestamps(status Status, tl Timeline) error {
	if tl.HandoffCompletedAt != nil && tl.CancelledAt != nil {
		return errs.NewValueIsInvalidErrorWithCause("timeline is invalid",
			errors.New("both handoff_completed_at and cancelled_at are set"))
	}
	if tl.HandoffCompletedAt != nil && status != Completed {
		return errs.NewValueIsInvalidErrorWithCause("timeline is invalid",
			fmt.Errorf("handoff_completed_at is set but status is %s", status.String()))
	}
	if tl.CancelledAt != nil && status != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("timeline is invalid",
			fmt.Errorf("cancelled_at is set but status is %s", status.String()))
	}
	return nil
}
