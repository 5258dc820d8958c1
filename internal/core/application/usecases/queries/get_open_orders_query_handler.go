package queries

import (
	"context"

	"cashrun/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]OrderViewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderViewResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderColumns+`
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at, id
		LIMIT ?
	`, string(order.Completed), string(order.Cancelled), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		row, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		view, viewErr := row.toResponse()
		if viewErr != nil {
			return nil, viewErr
		}
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
