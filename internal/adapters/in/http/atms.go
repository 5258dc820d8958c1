package http

import (
	"net/http"

	"cashrun/internal/core/application/usecases/commands"
	"cashrun/internal/core/application/usecases/queries"
	"cashrun/internal/core/domain/model/atm"
	"cashrun/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetActiveAtms handles GET /api/v1/atms.
func (s *Server) GetActiveAtms(ctx echo.Context) error {
	atms, err := s.handlers.ActiveAtms.Handle(ctx.Request().Context(), queries.NewGetActiveAtmsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve atms")
	}

	response := make([]Atm, len(atms))
	for i, a := range atms {
		response[i] = Atm{
			ID:      a.ID.String(),
			Name:    a.Name,
			Address: a.Address,
			Lat:     a.Location.Lat(),
			Lng:     a.Location.Lng(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterAtm handles POST /api/v1/atms.
func (s *Server) RegisterAtm(ctx echo.Context) error {
	var body NewAtm
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewGeoPoint(body.Lat, body.Lng)
	if err != nil {
		return badRequest(ctx, "Invalid atm coordinates: "+err.Error())
	}

	atmID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAtmCommand(atmID, body.Name, body.Address, location)
	if err != nil {
		return badRequest(ctx, "Invalid atm data: "+err.Error())
	}

	if err = s.handlers.RegisterAtm.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to register atm")
	}

	return ctx.JSON(http.StatusCreated, Atm{
		ID:      atmID.String(),
		Name:    cmd.Name(),
		Address: cmd.Address(),
		Lat:     location.Lat(),
		Lng:     location.Lng(),
	})
}

// SetAtmStatus handles PUT /api/v1/atms/:id/status.
func (s *Server) SetAtmStatus(ctx echo.Context) error {
	atmID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid atm id: "+err.Error())
	}

	var body AtmStatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := atm.ParseStatus(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewSetAtmStatusCommand(atmID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.SetAtmStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to update atm status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignAtm handles POST /api/v1/atm-assignments. Coordinates are validated
// here; the assignment itself trusts them.
func (s *Server) AssignAtm(ctx echo.Context) error {
	var body AssignmentRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	addressID, err := kernel.UUIDFromString(body.CustomerAddressID)
	if err != nil {
		return badRequest(ctx, "Invalid customerAddressId: "+err.Error())
	}
	if _, err = kernel.NewGeoPoint(body.Lat, body.Lng); err != nil {
		return badRequest(ctx, "Invalid delivery coordinates: "+err.Error())
	}

	cmd, err := commands.NewAssignAtmCommand(addressID, body.Lat, body.Lng)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.handlers.AssignAtm.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to assign atm")
	}

	return ctx.JSON(http.StatusOK, toAssignment(result))
}
