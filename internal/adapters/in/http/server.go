// Package http exposes the order lifecycle, ATM and routing use cases over a
// JSON API served by echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"cashrun/internal/core/application/usecases/commands"
	"cashrun/internal/core/application/usecases/queries"
	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/core/ports"

	"github.com/labstack/echo/v4"
)

type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}

	OrderAdvancer interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) (*order.Order, error)
	}

	AtmRegistrar interface {
		Handle(ctx context.Context, cmd commands.RegisterAtmCommand) error
	}

	AtmStatusSetter interface {
		Handle(ctx context.Context, cmd commands.SetAtmStatusCommand) error
	}

	OrderViewReader interface {
		Handle(ctx context.Context, query queries.GetOrderViewQuery) (queries.OrderViewResponse, error)
	}

	OpenOrdersReader interface {
		Handle(ctx context.Context, query queries.GetOpenOrdersQuery) ([]queries.OrderViewResponse, error)
	}

	ActiveAtmsReader interface {
		Handle(ctx context.Context, query queries.GetActiveAtmsQuery) ([]queries.GetActiveAtmsQueryResponse, error)
	}
)

// Handlers are the use cases behind the API.
type Handlers struct {
	CreateOrder  OrderCreator
	AdvanceOrder OrderAdvancer
	AssignAtm    commands.AtmAssigner
	RegisterAtm  AtmRegistrar
	SetAtmStatus AtmStatusSetter
	OrderView    OrderViewReader
	OpenOrders   OpenOrdersReader
	ActiveAtms   ActiveAtmsReader
	Profiles     ports.ProfileCache
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// RegisterRoutes mounts the API on e. metrics, when not nil, is served at
// GET /metrics. middleware applies to the /api/v1 group only.
func (s *Server) RegisterRoutes(e *echo.Echo, metrics http.Handler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", s.Health)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	v1 := e.Group("/api/v1", middleware...)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/open", s.GetOpenOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/transitions", s.AdvanceOrder)

	v1.GET("/atms", s.GetActiveAtms)
	v1.POST("/atms", s.RegisterAtm)
	v1.PUT("/atms/:id/status", s.SetAtmStatus)
	v1.POST("/atm-assignments", s.AssignAtm)

	v1.POST("/routes/resolve", s.ResolveRoute)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
