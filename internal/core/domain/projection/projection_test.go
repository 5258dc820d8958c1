package projection_test

import (
	"testing"

	"cashrun/internal/core/domain/model/order"
	"cashrun/internal/core/domain/projection"

	"github.com/stretchr/testify/assert"
)

func TestCustomerStepOf(t *testing.T) {
	cases := []struct {
		status order.Status
		step   projection.CustomerStep
		fill   int
	}{
		{order.Pending, projection.StepRequested, 1},
		{order.RunnerAccepted, projection.StepAssigned, 2},
		{order.RunnerAtAtm, projection.StepPreparing, 3},
		{order.CashWithdrawn, projection.StepOnTheWay, 4},
		{order.PendingHandoff, projection.StepArrived, 5},
		{order.Completed, projection.StepCompleted, 5},
		{order.Cancelled, projection.StepCanceled, 0},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			step := projection.CustomerStepOf(tc.status)

			assert.Equal(t, tc.step, step)
			assert.Equal(t, tc.fill, projection.ProgressFill(step))
		})
	}
}

func TestCustomerStep_Literals(t *testing.T) {
	want := []string{"REQUESTED", "ASSIGNED", "PREPARING", "ON_THE_WAY", "ARRIVED", "COMPLETED", "CANCELED"}
	got := make([]string, 0, len(want))
	for _, s := range projection.CustomerSteps() {
		got = append(got, string(s))
	}
	assert.Equal(t, want, got)
}

func TestUnknownInputDegradesSafely(t *testing.T) {
	for _, s := range []order.Status{order.Unknown, "Delivered", "pending"} {
		assert.NotPanics(t, func() {
			v := projection.Project(s, "???", "???")

			assert.Equal(t, projection.StepUnknown, v.Step)
			assert.Equal(t, 0, v.ProgressFill)
			assert.False(t, v.ChatOpen)
			assert.False(t, v.IdentityRevealed)
			assert.Equal(t, order.StyleSpeed, v.Instruction.Style)
		})
	}
	assert.Equal(t, 0, projection.ProgressFill("SOMETHING_ELSE"))
}

func TestChatOpen(t *testing.T) {
	for _, s := range order.AllStatuses() {
		want := s == order.CashWithdrawn || s == order.PendingHandoff
		assert.Equal(t, want, projection.ChatOpen(s), s)
	}
}

func TestIdentityRevealed(t *testing.T) {
	for _, s := range order.AllStatuses() {
		want := s == order.CashWithdrawn || s == order.PendingHandoff || s == order.Completed
		assert.Equal(t, want, projection.IdentityRevealed(s), s)
	}
}

func TestChatOpenImpliesProgressAtLeastFour(t *testing.T) {
	for _, s := range order.AllStatuses() {
		if projection.ChatOpen(s) {
			assert.GreaterOrEqual(t, projection.ProgressFill(projection.CustomerStepOf(s)), 4, s)
		}
	}
}

func TestIdentityRevealedIsMonotonicAlongHappyPath(t *testing.T) {
	revealed := false
	s := order.Pending
	for {
		now := projection.IdentityRevealed(s)
		if revealed {
			assert.True(t, now, "identity hidden again at %s", s)
		}
		revealed = revealed || now

		next, ok := s.Next()
		if !ok {
			break
		}
		s = next
	}
	assert.True(t, revealed)
	assert.Equal(t, order.Completed, s)
}

func TestProgressNeverExceedsMax(t *testing.T) {
	for _, step := range projection.CustomerSteps() {
		fill := projection.ProgressFill(step)
		assert.GreaterOrEqual(t, fill, 0)
		assert.LessOrEqual(t, fill, projection.MaxProgressFill)
	}
}

func TestDeliveryInstruction(t *testing.T) {
	counted := projection.DeliveryInstruction(order.StyleCounted, order.LegacyModeUnset)
	speed := projection.DeliveryInstruction(order.StyleSpeed, order.LegacyModeUnset)

	assert.Equal(t, order.StyleCounted, counted.Style)
	assert.Contains(t, counted.Runner, "count")
	assert.Equal(t, order.StyleSpeed, speed.Style)
	assert.Contains(t, speed.Runner, "leave right away")

	assert.Equal(t, counted, projection.DeliveryInstruction(order.StyleUnset, order.LegacyModeCountConfirm))
	assert.Equal(t, speed, projection.DeliveryInstruction(order.StyleUnset, order.LegacyModeQuickHandoff))
	assert.Equal(t, speed, projection.DeliveryInstruction(order.StyleUnset, order.LegacyModeUnset))
}

func TestProjectIsPure(t *testing.T) {
	for _, s := range order.AllStatuses() {
		a := projection.Project(s, order.StyleCounted, order.LegacyModeUnset)
		b := projection.Project(s, order.StyleCounted, order.LegacyModeUnset)
		assert.Equal(t, a, b, s)
	}
}

func TestProjectOrder(t *testing.T) {
	v := projection.ProjectOrder(&order.Order{})

	assert.Equal(t, projection.StepUnknown, v.Step)
	assert.False(t, v.ChatOpen)
}
