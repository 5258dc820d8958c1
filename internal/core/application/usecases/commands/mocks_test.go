package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"cashrun/internal/core/application/usecases/commands"
	"cashrun/internal/core/domain/model/atm"
	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/core/domain/services"
	"cashrun/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetPendingCreatedBefore(
	ctx context.Context,
	before time.Time,
	limit int,
) ([]*order.Order, error) {
	args := m.Called(ctx, before, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockAtmRepository struct{ mock.Mock }

func (m *MockAtmRepository) Add(ctx context.Context, a *atm.Atm) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAtmRepository) Update(ctx context.Context, a *atm.Atm) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAtmRepository) Get(ctx context.Context, id kernel.UUID) (*atm.Atm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*atm.Atm), args.Error(1)
}

func (m *MockAtmRepository) ListActive(ctx context.Context, limit int) ([]*atm.Atm, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*atm.Atm), args.Error(1)
}

type MockPreferenceRepository struct{ mock.Mock }

func (m *MockPreferenceRepository) ListForAddress(ctx context.Context, addressID kernel.UUID) ([]*atm.Preference, error) {
	args := m.Called(ctx, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*atm.Preference), args.Error(1)
}

func (m *MockPreferenceRepository) Upsert(ctx context.Context, p *atm.Preference) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAtmUoW struct{ mock.Mock }

func (m *MockAtmUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAtmUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAtmUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAtmUoW) AtmRepository() ports.AtmRepository {
	args := m.Called()
	return args.Get(0).(ports.AtmRepository)
}

type MockAtmUoWFactory struct{ mock.Mock }

func (m *MockAtmUoWFactory) Create() commands.AtmUoW {
	args := m.Called()
	return args.Get(0).(commands.AtmUoW)
}

type MockAssignmentUoW struct{ mock.Mock }

func (m *MockAssignmentUoW) AtmRepository() ports.AtmRepository {
	args := m.Called()
	return args.Get(0).(ports.AtmRepository)
}

func (m *MockAssignmentUoW) PreferenceRepository() ports.PreferenceRepository {
	args := m.Called()
	return args.Get(0).(ports.PreferenceRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) AtmAssigned(source string) {
	m.Called(source)
}

func (m *MockMetrics) PreferenceWriteFailed() {
	m.Called()
}

func (m *MockMetrics) TransitionRequested(outcome string) {
	m.Called(outcome)
}

type MockAtmAssigner struct{ mock.Mock }

func (m *MockAtmAssigner) Handle(ctx context.Context, cmd commands.AssignAtmCommand) (commands.AssignAtmResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AssignAtmResult), args.Error(1)
}

type MockOrderAdvancer struct{ mock.Mock }

func (m *MockOrderAdvancer) Advance(
	ctx context.Context,
	o *order.Order,
	next order.Status,
	meta services.TransitionMetadata,
) (*order.Order, error) {
	args := m.Called(ctx, o, next, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
