package http

import (
	"errors"
	"net/http"

	"cashrun/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// statusFor maps the core error vocabulary to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrRemoteRejection):
		return http.StatusConflict
	case errors.Is(err, errs.ErrNetwork):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrNoAvailableAtm), errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and their
// message is not exposed.
func (s *Server) fail(ctx echo.Context, err error, internalMessage string) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), internalMessage,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = internalMessage
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
