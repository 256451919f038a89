package http

import (
	"errors"
	"net/http"

	"deliverytracker/internal/generated/servers"
	"deliverytracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps a handler error to an HTTP status. Unclassified errors are
// infrastructure failures and become 500.
func statusOf(err error) int {
	var guardErr *errs.GuardViolationError
	switch {
	case errors.As(err, &guardErr):
		if guardErr.Reason == errs.ReasonInvalidDate {
			return http.StatusBadRequest
		}
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	status := statusOf(err)
	body := servers.Error{
		Code:    int32(status),
		Message: err.Error(),
	}

	var guardErr *errs.GuardViolationError
	if errors.As(err, &guardErr) {
		reason := string(guardErr.Reason)
		body.Reason = &reason
	}

	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		body.Message = "Internal server error"
	}
	return ctx.JSON(status, body)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
