package http

import (
	"net/http"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/domain/routing"
	"cashrun/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// ResolveRoute handles POST /api/v1/routes/resolve.
//
// When profileComplete is sent it is trusted and written to the profile
// cache. Otherwise the cache is consulted; a miss or a cache failure resolves
// as an incomplete profile. An entry cached under another role is dropped.
func (s *Server) ResolveRoute(ctx echo.Context) error {
	var body RouteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	in := routing.Input{
		Role:        routing.Role(body.Role),
		CurrentPath: body.CurrentPath,
	}

	var userID kernel.UUID
	if body.UserID != "" {
		id, err := kernel.UUIDFromString(body.UserID)
		if err != nil {
			return badRequest(ctx, "Invalid userId: "+err.Error())
		}
		userID = id
	}

	if body.ProfileComplete != nil {
		in.ProfileComplete = *body.ProfileComplete
		s.rememberProfile(ctx, userID, in)
	} else {
		in.ProfileComplete = s.cachedProfileComplete(ctx, userID, in.Role)
	}

	d := routing.Resolve(in)
	return ctx.JSON(http.StatusOK, RouteDecision{
		Target:   d.Target,
		Redirect: d.Redirect,
		Rule:     d.Rule,
	})
}

func (s *Server) cachedProfileComplete(ctx echo.Context, userID kernel.UUID, role routing.Role) bool {
	if s.handlers.Profiles == nil || userID.Validate() != nil {
		return false
	}

	profile, ok, err := s.handlers.Profiles.Get(ctx.Request().Context(), userID)
	if err != nil {
		s.logger.WarnContext(ctx.Request().Context(), "profile cache read failed",
			"user_id", userID.String(),
			"error", err,
		)
		return false
	}
	if !ok {
		return false
	}
	if profile.Role != string(role) {
		s.forgetProfile(ctx, userID)
		return false
	}

	return profile.ProfileComplete
}

func (s *Server) rememberProfile(ctx echo.Context, userID kernel.UUID, in routing.Input) {
	if s.handlers.Profiles == nil || userID.Validate() != nil || !in.Role.IsKnown() {
		return
	}

	err := s.handlers.Profiles.Set(ctx.Request().Context(), ports.CachedProfile{
		UserID:          userID,
		Role:            string(in.Role),
		ProfileComplete: in.ProfileComplete,
	})
	if err != nil {
		s.logger.WarnContext(ctx.Request().Context(), "profile cache write failed",
			"user_id", userID.String(),
			"error", err,
		)
	}
}

func (s *Server) forgetProfile(ctx echo.Context, userID kernel.UUID) {
	if err := s.handlers.Profiles.Invalidate(ctx.Request().Context(), userID); err != nil {
		s.logger.WarnContext(ctx.Request().Context(), "profile cache invalidate failed",
			"user_id", userID.String(),
			"error", err,
		)
	}
}
