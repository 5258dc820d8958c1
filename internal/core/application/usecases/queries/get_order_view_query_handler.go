package queries

import (
	"context"

	"cashrun/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderViewQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderViewQueryHandler(db *gorm.DB) GetOrderViewQueryHandler {
	return GetOrderViewQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when no order has the requested id.
func (h GetOrderViewQueryHandler) Handle(
	ctx context.Context,
	query GetOrderViewQuery,
) (OrderViewResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderViewResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderViewResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderViewResponse{}, err
		}
		return OrderViewResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	row, err := scanOrderRow(rows)
	if err != nil {
		return OrderViewResponse{}, err
	}

	return row.toResponse()
}
