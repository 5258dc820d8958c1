package services_test

import (
	"context"

	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTransitionGateway struct{ mock.Mock }

func (m *MockTransitionGateway) RequestTransition(
	ctx context.Context,
	req ports.TransitionRequest,
) (*order.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
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
