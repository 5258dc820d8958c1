package http_test

import (
	"context"
	"io"
	"log/slog"

	"cashrun/internal/core/application/usecases/commands"
	"cashrun/internal/core/application/usecases/queries"
	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}

type MockOrderAdvancer struct{ mock.Mock }

func (m *MockOrderAdvancer) Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAtmAssigner struct{ mock.Mock }

func (m *MockAtmAssigner) Handle(ctx context.Context, cmd commands.AssignAtmCommand) (commands.AssignAtmResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AssignAtmResult), args.Error(1)
}

type MockAtmRegistrar struct{ mock.Mock }

func (m *MockAtmRegistrar) Handle(ctx context.Context, cmd commands.RegisterAtmCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAtmStatusSetter struct{ mock.Mock }

func (m *MockAtmStatusSetter) Handle(ctx context.Context, cmd commands.SetAtmStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderViewReader struct{ mock.Mock }

func (m *MockOrderViewReader) Handle(ctx context.Context, q queries.GetOrderViewQuery) (queries.OrderViewResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.OrderViewResponse), args.Error(1)
}

type MockOpenOrdersReader struct{ mock.Mock }

func (m *MockOpenOrdersReader) Handle(ctx context.Context, q queries.GetOpenOrdersQuery) ([]queries.OrderViewResponse, error) {
	args := m.Called(ctx, q)
	if v, ok := args.Get(0).([]queries.OrderViewResponse); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockActiveAtmsReader struct{ mock.Mock }

func (m *MockActiveAtmsReader) Handle(
	ctx context.Context,
	q queries.GetActiveAtmsQuery,
) ([]queries.GetActiveAtmsQueryResponse, error) {
	args := m.Called(ctx, q)
	if v, ok := args.Get(0).([]queries.GetActiveAtmsQueryResponse); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockProfileCache struct{ mock.Mock }

func (m *MockProfileCache) Get(ctx context.Context, userID kernel.UUID) (ports.CachedProfile, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(ports.CachedProfile), args.Bool(1), args.Error(2)
}

func (m *MockProfileCache) Set(ctx context.Context, profile ports.CachedProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileCache) Invalidate(ctx context.Context, userID kernel.UUID) error {
	return m.Called(ctx, userID).Error(0)
}
