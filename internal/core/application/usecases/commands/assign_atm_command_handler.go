package commands

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"cashrun/internal/core/domain/model/atm"
	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/services"
	"cashrun/internal/core/ports"
	"cashrun/internal/pkg/errs"
)

// DefaultAtmSampleLimit bounds the number of active ATMs read for the
// nearest-neighbour fallback.
const DefaultAtmSampleLimit = 100

// Assignment sources.
const (
	SourcePreference = "preference"
	SourceNearest    = "nearest"
)

// AssignAtmResult is the chosen ATM. DistanceMeters is rounded to the nearest
// integer.
type AssignAtmResult struct {
	AtmID          kernel.UUID
	AtmName        string
	AtmAddress     string
	AtmLat         float64
	AtmLng         float64
	DistanceMeters int
	Source         string
}

// AssignAtmCommandHandler picks the withdrawal ATM for a delivery address and
// learns from the choice.
//
// Algorithm:
//  1. Read the address preferences, best ranked first.
//  2. The first preference whose ATM is active wins. Its counter is bumped
//     and saved, and the scan stops there.
//  3. Otherwise read a bounded sample of active ATMs and take the nearest one,
//     first seen on ties. A new preference with one use is saved.
//
// Preference writes are best effort: a failed write is logged and counted
// but the assignment still succeeds. The read-increment-write is not atomic,
// so concurrent assignments for one address may undercount.
//
// Example:
//
//	handler := NewAssignAtmCommandHandler(uowFactory, metrics, logger, DefaultAtmSampleLimit)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrNoAvailableAtm) {
//	    // no active ATM can serve this address
//	}
type AssignAtmCommandHandler struct {
	uowFactory  AssignmentUoWFactory
	selector    services.AtmSelector
	metrics     ports.Metrics
	logger      *slog.Logger
	sampleLimit int
	now         func() time.Time
}

func NewAssignAtmCommandHandler(
	uowFactory AssignmentUoWFactory,
	metrics ports.Metrics,
	logger *slog.Logger,
	sampleLimit int,
) AssignAtmCommandHandler {
	if sampleLimit <= 0 {
		sampleLimit = DefaultAtmSampleLimit
	}

	return AssignAtmCommandHandler{
		uowFactory:  uowFactory,
		selector:    services.NewAtmSelector(),
		metrics:     metrics,
		logger:      logger.With("component", "atm_assignment"),
		sampleLimit: sampleLimit,
		now:         time.Now,
	}
}

// Handle runs the assignment. It fails with errs.NoAvailableAtmError when no
// preference is usable and no active ATM exists, and with errs.NetworkError
// when a read fails.
func (h AssignAtmCommandHandler) Handle(ctx context.Context, cmd AssignAtmCommand) (AssignAtmResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignAtmResult{}, err
	}

	uow := h.uowFactory.Create()
	preferenceRepo := uow.PreferenceRepository()
	now := h.now().UTC()

	preferences, err := preferenceRepo.ListForAddress(ctx, cmd.AddressID())
	if err != nil {
		return AssignAtmResult{}, errs.NewNetworkError("list address preferences", err)
	}

	if preferred, ok := h.selector.Preferred(preferences); ok {
		preferred.Touch(now)
		h.savePreference(ctx, preferenceRepo, preferred)

		chosen := preferred.Atm()
		h.metrics.AtmAssigned(SourcePreference)
		return newAssignAtmResult(chosen, h.selector.Distance(cmd.Lat(), cmd.Lng(), chosen), SourcePreference), nil
	}

	atms, err := uow.AtmRepository().ListActive(ctx, h.sampleLimit)
	if err != nil {
		return AssignAtmResult{}, errs.NewNetworkError("list active atms", err)
	}

	selection, err := h.selector.Nearest(cmd.Lat(), cmd.Lng(), atms)
	if errors.Is(err, services.ErrAtmNotFound) {
		return AssignAtmResult{}, errs.NewNoAvailableAtmError(cmd.AddressID().String())
	}
	if err != nil {
		return AssignAtmResult{}, err
	}

	preference, err := atm.NewPreference(cmd.AddressID(), selection.Atm.ID(), now)
	if err != nil {
		return AssignAtmResult{}, err
	}
	h.savePreference(ctx, preferenceRepo, preference)

	h.metrics.AtmAssigned(SourceNearest)
	return newAssignAtmResult(selection.Atm, selection.DistanceMeters, SourceNearest), nil
}

func (h AssignAtmCommandHandler) savePreference(
	ctx context.Context,
	repo ports.PreferenceRepository,
	preference *atm.Preference,
) {
	if err := repo.Upsert(ctx, preference); err != nil {
		h.metrics.PreferenceWriteFailed()
		h.logger.WarnContext(ctx, "Failed to save atm preference",
			"address_id", preference.AddressID().String(),
			"atm_id", preference.AtmID().String(),
			"times_used", preference.TimesUsed(),
			"error", err,
		)
	}
}

func newAssignAtmResult(chosen *atm.Atm, distance float64, source string) AssignAtmResult {
	loc := chosen.Location()
	return AssignAtmResult{
		AtmID:          chosen.ID(),
		AtmName:        chosen.Name(),
		AtmAddress:     chosen.Address(),
		AtmLat:         loc.Lat(),
		AtmLng:         loc.Lng(),
		DistanceMeters: int(math.Round(distance)),
		Source:         source,
	}
}
