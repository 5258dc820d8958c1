package http

import (
	"net/http"

	"cashrun/internal/core/application/usecases/commands"
	"cashrun/internal/core/application/usecases/queries"
	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders. The ATM is assigned before the
// order is stored; no order is created when no ATM is available.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customerId: "+err.Error())
	}
	addressID, err := kernel.UUIDFromString(body.CustomerAddressID)
	if err != nil {
		return badRequest(ctx, "Invalid customerAddressId: "+err.Error())
	}
	if _, err = kernel.NewGeoPoint(body.Lat, body.Lng); err != nil {
		return badRequest(ctx, "Invalid delivery coordinates: "+err.Error())
	}
	style, err := order.ParseDeliveryStyle(body.DeliveryStyle)
	if err != nil {
		return badRequest(ctx, "Invalid deliveryStyle: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, addressID, body.Amount, style, body.Lat, body.Lng,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	result, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{
		Order:      toOrder(queries.NewOrderViewResponse(result.Order)),
		Assignment: toAssignment(result.Assignment),
	})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderViewQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.handlers.OrderView.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// GetOpenOrders handles GET /api/v1/orders/open?limit=N.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	limit, err := queryInt(ctx, "limit")
	if err != nil {
		return badRequest(ctx, "Invalid limit: "+err.Error())
	}

	query, err := queries.NewGetOpenOrdersQuery(limit)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	views, err := s.handlers.OpenOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceOrder handles POST /api/v1/orders/:id/transitions. The response is
// the order as stored after the transition.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body TransitionRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	next, err := order.ParseStatus(body.NextStatus)
	if err != nil {
		return badRequest(ctx, "Invalid nextStatus: "+err.Error())
	}

	var actorID kernel.UUID
	if body.ActorID != "" {
		actorID, err = kernel.UUIDFromString(body.ActorID)
		if err != nil {
			return badRequest(ctx, "Invalid actorId: "+err.Error())
		}
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, next, actorID, body.Reason, body.Flags)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to advance order")
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderViewResponse(updated)))
}
