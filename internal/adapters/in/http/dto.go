package http

import (
	"time"

	"cashrun/internal/core/application/usecases/commands"
	"cashrun/internal/core/application/usecases/queries"
	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewOrder struct {
	CustomerID        string          `json:"customerId"`
	CustomerAddressID string          `json:"customerAddressId"`
	Amount            decimal.Decimal `json:"amount"`
	DeliveryStyle     string          `json:"deliveryStyle"`
	Lat               float64         `json:"lat"`
	Lng               float64         `json:"lng"`
}

type TransitionRequest struct {
	NextStatus string          `json:"nextStatus"`
	ActorID    string          `json:"actorId"`
	Reason     *string         `json:"reason,omitempty"`
	Flags      map[string]bool `json:"flags,omitempty"`
}

type NewAtm struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type AtmStatusUpdate struct {
	Status string `json:"status"`
}

type AssignmentRequest struct {
	CustomerAddressID string  `json:"customerAddressId"`
	Lat               float64 `json:"lat"`
	Lng               float64 `json:"lng"`
}

type RouteRequest struct {
	UserID          string `json:"userId"`
	Role            string `json:"role"`
	ProfileComplete *bool  `json:"profileComplete,omitempty"`
	CurrentPath     string `json:"currentPath"`
}

type RouteDecision struct {
	Target   string `json:"target"`
	Redirect bool   `json:"redirect"`
	Rule     string `json:"rule"`
}

type Atm struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type Assignment struct {
	AtmID          string  `json:"atmId"`
	AtmName        string  `json:"atmName"`
	AtmAddress     string  `json:"atmAddress"`
	AtmLat         float64 `json:"atmLat"`
	AtmLng         float64 `json:"atmLng"`
	DistanceMeters int     `json:"distanceMeters"`
	Source         string  `json:"source"`
}

type CustomerProgress struct {
	Step             string `json:"step"`
	ProgressFill     int    `json:"progressFill"`
	ChatOpen         bool   `json:"chatOpen"`
	IdentityRevealed bool   `json:"identityRevealed"`
}

type Instruction struct {
	Style    string `json:"style"`
	Title    string `json:"title"`
	Runner   string `json:"runner"`
	Customer string `json:"customer"`
}

type Timeline struct {
	CreatedAt          time.Time  `json:"createdAt"`
	RunnerAcceptedAt   *time.Time `json:"runnerAcceptedAt,omitempty"`
	RunnerAtAtmAt      *time.Time `json:"runnerAtAtmAt,omitempty"`
	CashWithdrawnAt    *time.Time `json:"cashWithdrawnAt,omitempty"`
	HandoffCompletedAt *time.Time `json:"handoffCompletedAt,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
}

type Order struct {
	ID                 string           `json:"id"`
	CustomerID         string           `json:"customerId"`
	CustomerAddressID  string           `json:"customerAddressId"`
	RunnerID           *string          `json:"runnerId,omitempty"`
	AtmID              *string          `json:"atmId,omitempty"`
	RequestedAmount    decimal.Decimal  `json:"requestedAmount"`
	Status             string           `json:"status"`
	DeliveryStyle      string           `json:"deliveryStyle"`
	Timeline           Timeline         `json:"timeline"`
	CancellationReason *string          `json:"cancellationReason,omitempty"`
	Customer           CustomerProgress `json:"customer"`
	Instruction        Instruction      `json:"instruction"`
	AllowedTransitions []string         `json:"allowedTransitions"`
}

type CreatedOrder struct {
	Order      Order      `json:"order"`
	Assignment Assignment `json:"assignment"`
}

func toOrder(v queries.OrderViewResponse) Order {
	allowed := make([]string, 0, len(v.AllowedTransitions))
	for _, s := range v.AllowedTransitions {
		allowed = append(allowed, string(s))
	}

	return Order{
		ID:                 v.ID.String(),
		CustomerID:         v.CustomerID.String(),
		CustomerAddressID:  v.CustomerAddressID.String(),
		RunnerID:           idString(v.RunnerID),
		AtmID:              idString(v.AtmID),
		RequestedAmount:    v.RequestedAmount,
		Status:             string(v.Status),
		DeliveryStyle:      string(v.DeliveryStyle),
		Timeline:           toTimeline(v.Timeline),
		CancellationReason: v.CancellationReason,
		Customer: CustomerProgress{
			Step:             string(v.View.Step),
			ProgressFill:     v.View.ProgressFill,
			ChatOpen:         v.View.ChatOpen,
			IdentityRevealed: v.View.IdentityRevealed,
		},
		Instruction: Instruction{
			Style:    string(v.View.Instruction.Style),
			Title:    v.View.Instruction.Title,
			Runner:   v.View.Instruction.Runner,
			Customer: v.View.Instruction.Customer,
		},
		AllowedTransitions: allowed,
	}
}

func toTimeline(tl order.Timeline) Timeline {
	return Timeline{
		CreatedAt:          tl.CreatedAt,
		RunnerAcceptedAt:   tl.RunnerAcceptedAt,
		RunnerAtAtmAt:      tl.RunnerAtAtmAt,
		CashWithdrawnAt:    tl.CashWithdrawnAt,
		HandoffCompletedAt: tl.HandoffCompletedAt,
		CancelledAt:        tl.CancelledAt,
	}
}

func toAssignment(r commands.AssignAtmResult) Assignment {
	return Assignment{
		AtmID:          r.AtmID.String(),
		AtmName:        r.AtmName,
		AtmAddress:     r.AtmAddress,
		AtmLat:         r.AtmLat,
		AtmLng:         r.AtmLng,
		DistanceMeters: r.DistanceMeters,
		Source:         r.Source,
	}
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
