package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/core/ports"
	"cashrun/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// timestampColumns maps a target status to the column stamped on entry.
// Pending Handoff has none.
var timestampColumns = map[order.Status]string{
	order.RunnerAccepted: "runner_accepted_at",
	order.RunnerAtAtm:    "runner_at_atm_at",
	order.CashWithdrawn:  "cash_withdrawn_at",
	order.Completed:      "handoff_completed_at",
	order.Cancelled:      "cancelled_at",
}

// GormTransitionGateway is the authoritative store for order status. A
// transition is a compare-and-set on the status column: it only applies when
// the row still holds the status the caller last saw.
type GormTransitionGateway struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormTransitionGateway(db *gorm.DB) *GormTransitionGateway {
	return &GormTransitionGateway{db: db, now: time.Now}
}

// RequestTransition applies req and returns the order as stored afterwards.
//
// Errors:
//   - errs.RemoteRejectionError when the order is missing or has moved on,
//     when Runner Accepted carries no runner, or when the database refused the write
//   - errs.NetworkError for connection failures and context expiry
func (g *GormTransitionGateway) RequestTransition(
	ctx context.Context,
	req ports.TransitionRequest,
) (*order.Order, error) {
	orderID := req.OrderID.String()
	now := g.now().UTC()

	if req.Next == order.RunnerAccepted && req.ActorID.Validate() != nil {
		return nil, errs.NewRemoteRejectionError(orderID, "runner id is required to accept an order")
	}

	var stored OrderDTO
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ? AND status = ?", req.OrderID.Bytes(), string(req.Current)).
			Updates(transitionUpdates(req, now))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return rejectionFor(tx, req)
		}

		event := OrderStatusEventDTO{
			OrderID:    req.OrderID.Bytes(),
			FromStatus: string(req.Current),
			ToStatus:   string(req.Next),
			ActorID:    actorOf(req),
			Reason:     req.Reason,
			Flags:      req.Flags,
			CreatedAt:  now,
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		return tx.First(&stored, "id = ?", req.OrderID.Bytes()).Error
	})
	if err != nil {
		return nil, classify(orderID, err)
	}

	return toDomain(stored)
}

func transitionUpdates(req ports.TransitionRequest, now time.Time) map[string]any {
	updates := map[string]any{"status": string(req.Next)}
	if column, ok := timestampColumns[req.Next]; ok {
		updates[column] = now
	}

	switch req.Next {
	case order.RunnerAccepted:
		updates["runner_id"] = req.ActorID.Bytes()
	case order.Cancelled:
		updates["cancellation_reason"] = req.Reason
	default:
	}

	return updates
}

// rejectionFor explains why the conditional update matched no row.
func rejectionFor(tx *gorm.DB, req ports.TransitionRequest) error {
	orderID := req.OrderID.String()

	var current OrderDTO
	err := tx.Select("status").First(&current, "id = ?", req.OrderID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewRemoteRejectionError(orderID, "order not found")
	}
	if err != nil {
		return err
	}

	return errs.NewRemoteRejectionError(orderID,
		fmt.Sprintf("status is %s, expected %s", current.Status, req.Current.String()))
}

func actorOf(req ports.TransitionRequest) *uuid.UUID {
	if req.ActorID.Validate() != nil {
		return nil
	}
	raw := req.ActorID.Bytes()
	return &raw
}

func classify(orderID string, err error) error {
	if errors.Is(err, errs.ErrRemoteRejection) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return errs.NewRemoteRejectionErrorWithCause(orderID, pgErr.Message, pgErr)
	}

	return errs.NewNetworkError("request transition", err)
}
