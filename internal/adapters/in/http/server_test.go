package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpapi "cashrun/internal/adapters/in/http"
	"cashrun/internal/core/application/usecases/commands"
	"cashrun/internal/core/application/usecases/queries"
	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	e          *echo.Echo
	creator    *MockOrderCreator
	advancer   *MockOrderAdvancer
	assigner   *MockAtmAssigner
	registrar  *MockAtmRegistrar
	statuses   *MockAtmStatusSetter
	orderView  *MockOrderViewReader
	openOrders *MockOpenOrdersReader
	activeAtms *MockActiveAtmsReader
	profiles   *MockProfileCache
}

func newFixture(t *testing.T, middleware ...echo.MiddlewareFunc) *fixture {
	t.Helper()

	f := &fixture{
		e:          echo.New(),
		creator:    new(MockOrderCreator),
		advancer:   new(MockOrderAdvancer),
		assigner:   new(MockAtmAssigner),
		registrar:  new(MockAtmRegistrar),
		statuses:   new(MockAtmStatusSetter),
		orderView:  new(MockOrderViewReader),
		openOrders: new(MockOpenOrdersReader),
		activeAtms: new(MockActiveAtmsReader),
		profiles:   new(MockProfileCache),
	}

	server := httpapi.NewServer(httpapi.Handlers{
		CreateOrder:  f.creator,
		AdvanceOrder: f.advancer,
		AssignAtm:    f.assigner,
		RegisterAtm:  f.registrar,
		SetAtmStatus: f.statuses,
		OrderView:    f.orderView,
		OpenOrders:   f.openOrders,
		ActiveAtms:   f.activeAtms,
		Profiles:     f.profiles,
	}, discardLogger())
	server.RegisterRoutes(f.e, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	}), middleware...)

	t.Cleanup(func() {
		f.creator.AssertExpectations(t)
		f.advancer.AssertExpectations(t)
		f.assigner.AssertExpectations(t)
		f.registrar.AssertExpectations(t)
		f.statuses.AssertExpectations(t)
		f.orderView.AssertExpectations(t)
		f.openOrders.AssertExpectations(t)
		f.activeAtms.AssertExpectations(t)
		f.profiles.AssertExpectations(t)
	})
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		decimal.RequireFromString("200"),
		order.StyleCounted,
		time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())
}

func TestCreateOrder(t *testing.T) {
	customerID := kernel.NewUUID()
	addressID := kernel.NewUUID()
	body := `{"customerId":"` + customerID.String() + `","customerAddressId":"` + addressID.String() +
		`","amount":"120.50","deliveryStyle":"COUNTED","lat":40.7,"lng":-73.9}`

	t.Run("should return the order with its assignment", func(t *testing.T) {
		f := newFixture(t)
		created := pendingOrder(t)
		atmID := kernel.NewUUID()
		require.NoError(t, created.AssignAtm(atmID))

		f.creator.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			return cmd.CustomerID().IsEqual(customerID) &&
				cmd.CustomerAddressID().IsEqual(addressID) &&
				cmd.Amount().Equal(decimal.RequireFromString("120.50")) &&
				cmd.Style() == order.StyleCounted &&
				cmd.Lat() == 40.7 && cmd.Lng() == -73.9
		})).Return(commands.CreateOrderResult{
			Order: created,
			Assignment: commands.AssignAtmResult{
				AtmID:          atmID,
				AtmName:        "Main St",
				DistanceMeters: 420,
				Source:         commands.SourceNearest,
			},
		}, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", body)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		got := decode[httpapi.CreatedOrder](t, rec)
		assert.Equal(t, created.ID().String(), got.Order.ID)
		assert.Equal(t, "Pending", got.Order.Status)
		assert.Equal(t, "REQUESTED", got.Order.Customer.Step)
		assert.Equal(t, 1, got.Order.Customer.ProgressFill)
		assert.False(t, got.Order.Customer.ChatOpen)
		assert.Equal(t, "COUNTED", got.Order.Instruction.Style)
		assert.Equal(t, []string{"Runner Accepted", "Cancelled"}, got.Order.AllowedTransitions)
		require.NotNil(t, got.Order.AtmID)
		assert.Equal(t, atmID.String(), *got.Order.AtmID)
		assert.Equal(t, 420, got.Assignment.DistanceMeters)
		assert.Equal(t, "nearest", got.Assignment.Source)
	})

	t.Run("should map no available atm to 404", func(t *testing.T) {
		f := newFixture(t)
		f.creator.On("Handle", mock.Anything, mock.Anything).
			Return(commands.CreateOrderResult{}, errs.NewNoAvailableAtmError(addressID.String())).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", body)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, decode[httpapi.Error](t, rec).Message, "no available atm")
	})

	t.Run("should reject coordinates out of range before any work", func(t *testing.T) {
		f := newFixture(t)
		bad := strings.Replace(body, `"lat":40.7`, `"lat":91`, 1)

		rec := f.do(http.MethodPost, "/api/v1/orders", bad)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.creator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject unknown delivery styles and bad amounts", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders", strings.Replace(body, "COUNTED", "FAST", 1))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = f.do(http.MethodPost, "/api/v1/orders", strings.Replace(body, `"120.50"`, `"-1"`, 1))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = f.do(http.MethodPost, "/api/v1/orders", `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("should render the view", func(t *testing.T) {
		f := newFixture(t)
		o := pendingOrder(t)
		f.orderView.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderViewQuery) bool {
			return q.OrderID().IsEqual(o.ID())
		})).Return(queries.NewOrderViewResponse(o), nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/"+o.ID().String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[httpapi.Order](t, rec)
		assert.Equal(t, o.ID().String(), got.ID)
		assert.True(t, decimal.RequireFromString("200").Equal(got.RequestedAmount))
	})

	t.Run("should map not found to 404", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.orderView.On("Handle", mock.Anything, mock.Anything).
			Return(queries.OrderViewResponse{}, errs.NewObjectNotFoundError("order", id.String())).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should reject malformed ids", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodGet, "/api/v1/orders/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetOpenOrders(t *testing.T) {
	t.Run("should pass the limit through", func(t *testing.T) {
		f := newFixture(t)
		o := pendingOrder(t)
		f.openOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOpenOrdersQuery) bool {
			return q.Limit() == 5
		})).Return([]queries.OrderViewResponse{queries.NewOrderViewResponse(o)}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/open?limit=5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]httpapi.Order](t, rec), 1)
	})

	t.Run("should reject a non numeric limit", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodGet, "/api/v1/orders/open?limit=lots", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should hide internal errors", func(t *testing.T) {
		f := newFixture(t)
		f.openOrders.On("Handle", mock.Anything, mock.Anything).
			Return(nil, assert.AnError).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/open", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to retrieve orders", decode[httpapi.Error](t, rec).Message)
	})
}

func TestAdvanceOrder(t *testing.T) {
	orderID := kernel.NewUUID()
	target := "/api/v1/orders/" + orderID.String() + "/transitions"

	statusCases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid transition", errs.NewInvalidTransitionError("Completed", "Cancelled"), http.StatusUnprocessableEntity},
		{"remote rejection", errs.NewRemoteRejectionError(orderID.String(), "moved on"), http.StatusConflict},
		{"network", errs.NewNetworkError("request transition", assert.AnError), http.StatusServiceUnavailable},
		{"missing reason", errs.NewValueIsRequiredError("cancellation reason"), http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("order", orderID.String()), http.StatusNotFound},
	}
	for _, tc := range statusCases {
		t.Run("should map "+tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.advancer.On("Handle", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			rec := f.do(http.MethodPost, target, `{"nextStatus":"Cancelled"}`)

			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.code, decode[httpapi.Error](t, rec).Code)
		})
	}

	t.Run("should forward actor reason and flags", func(t *testing.T) {
		f := newFixture(t)
		runner := kernel.NewUUID()
		stored, err := order.RestoreOrder(order.Snapshot{
			ID:                orderID,
			CustomerID:        kernel.NewUUID(),
			CustomerAddressID: kernel.NewUUID(),
			RunnerID:          &runner,
			RequestedAmount:   decimal.RequireFromString("80"),
			Status:            order.RunnerAccepted,
			DeliveryStyle:     order.StyleSpeed,
			Timeline:          order.Timeline{CreatedAt: time.Now().UTC()},
		})
		require.NoError(t, err)

		f.advancer.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AdvanceOrderCommand) bool {
			return cmd.OrderID().IsEqual(orderID) &&
				cmd.Next() == order.RunnerAccepted &&
				cmd.ActorID().IsEqual(runner) &&
				cmd.Flags()["pushNotified"]
		})).Return(stored, nil).Once()

		rec := f.do(http.MethodPost, target,
			`{"nextStatus":"Runner Accepted","actorId":"`+runner.String()+`","flags":{"pushNotified":true}}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decode[httpapi.Order](t, rec)
		assert.Equal(t, "Runner Accepted", got.Status)
		assert.Equal(t, "ASSIGNED", got.Customer.Step)
		assert.False(t, got.Customer.ChatOpen)
		assert.False(t, got.Customer.IdentityRevealed)
		require.NotNil(t, got.RunnerID)
		assert.Equal(t, runner.String(), *got.RunnerID)
	})

	t.Run("should reject unknown statuses", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, target, `{"nextStatus":"Delivered"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
