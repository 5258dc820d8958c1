// Package orderrepo persists the order aggregate and applies status
// transitions against the orders table.
package orderrepo

import (
	"time"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerAddressID  uuid.UUID       `gorm:"type:uuid;not null"`
	RunnerID           *uuid.UUID      `gorm:"type:uuid;index"`
	AtmID              *uuid.UUID      `gorm:"type:uuid"`
	RequestedAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status             string          `gorm:"type:text;not null;index:idx_orders_status_created,priority:1"`
	DeliveryStyle      *string         `gorm:"type:text"`
	DeliveryMode       *string         `gorm:"type:text"` // deprecated, read-only
	CreatedAt          time.Time       `gorm:"not null;index:idx_orders_status_created,priority:2"`
	RunnerAcceptedAt   *time.Time
	RunnerAtAtmAt      *time.Time `gorm:"column:runner_at_atm_at"`
	CashWithdrawnAt    *time.Time
	HandoffCompletedAt *time.Time
	CancelledAt        *time.Time
	CancellationReason *string `gorm:"type:text"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderStatusEventDTO is an append-only audit row written with every applied
// transition.
type OrderStatusEventDTO struct {
	ID         uint            `gorm:"primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	FromStatus string          `gorm:"type:text;not null"`
	ToStatus   string          `gorm:"type:text;not null"`
	ActorID    *uuid.UUID      `gorm:"type:uuid"`
	Reason     *string         `gorm:"type:text"`
	Flags      map[string]bool `gorm:"type:jsonb;serializer:json"`
	CreatedAt  time.Time       `gorm:"not null"`
}

func (OrderStatusEventDTO) TableName() string {
	return "order_status_events"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	s := aggregate.Snapshot()

	return OrderDTO{
		ID:                 s.ID.Bytes(),
		CustomerID:         s.CustomerID.Bytes(),
		CustomerAddressID:  s.CustomerAddressID.Bytes(),
		RunnerID:           rawID(s.RunnerID),
		AtmID:              rawID(s.AtmID),
		RequestedAmount:    s.RequestedAmount,
		Status:             string(s.Status),
		DeliveryStyle:      optionalString(string(s.DeliveryStyle)),
		DeliveryMode:       optionalString(string(s.LegacyDeliveryMode)),
		CreatedAt:          s.Timeline.CreatedAt,
		RunnerAcceptedAt:   s.Timeline.RunnerAcceptedAt,
		RunnerAtAtmAt:      s.Timeline.RunnerAtAtmAt,
		CashWithdrawnAt:    s.Timeline.CashWithdrawnAt,
		HandoffCompletedAt: s.Timeline.HandoffCompletedAt,
		CancelledAt:        s.Timeline.CancelledAt,
		CancellationReason: s.CancellationReason,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromGoogle(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromGoogle(dto.CustomerAddressID)
	if err != nil {
		return nil, err
	}
	runnerID, err := domainID(dto.RunnerID)
	if err != nil {
		return nil, err
	}
	atmID, err := domainID(dto.AtmID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                 id,
		CustomerID:         customerID,
		CustomerAddressID:  addressID,
		RunnerID:           runnerID,
		AtmID:              atmID,
		RequestedAmount:    dto.RequestedAmount,
		Status:             order.Status(dto.Status),
		DeliveryStyle:      order.DeliveryStyle(valueOf(dto.DeliveryStyle)),
		LegacyDeliveryMode: order.LegacyDeliveryMode(valueOf(dto.DeliveryMode)),
		Timeline: order.Timeline{
			CreatedAt:          dto.CreatedAt,
			RunnerAcceptedAt:   dto.RunnerAcceptedAt,
			RunnerAtAtmAt:      dto.RunnerAtAtmAt,
			CashWithdrawnAt:    dto.CashWithdrawnAt,
			HandoffCompletedAt: dto.HandoffCompletedAt,
			CancelledAt:        dto.CancelledAt,
		},
		CancellationReason: dto.CancellationReason,
	})
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // column is NULL
	}
	u, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
