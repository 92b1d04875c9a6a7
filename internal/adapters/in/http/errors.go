package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// statusFor maps the error taxonomy to HTTP status codes.
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrActorNotPermitted):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPhotoRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidStepOrder),
		errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, errs.ErrOrderAlreadyTerminal),
		errors.Is(err, assignment.ErrActiveAssignmentExists),
		errors.Is(err, order.ErrInvoiceLocked),
		errors.Is(err, order.ErrInvoiceAlreadyGenerated),
		errors.Is(err, commands.ErrDriverDispatchRequired):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStorage):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err. Server errors are logged and their details hidden.
func writeError(c echo.Context, logger *slog.Logger, err error) error {
	code := statusFor(err)
	message := err.Error()

	if code == http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return c.JSON(code, servers.Error{Code: code, Message: message})
}

// handleHTTPError renders errors that escape the handlers, such as routing
// failures, parameter binding in the generated wrappers and OpenAPI
// validation, in the same servers.Error shape.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		_ = writeError(c, s.logger, err)
		return
	}

	message := http.StatusText(httpErr.Code)
	if httpErr.Code < http.StatusInternalServerError {
		message = fmt.Sprint(httpErr.Message)
	} else {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Code)
		return
	}
	_ = c.JSON(httpErr.Code, servers.Error{Code: httpErr.Code, Message: message})
}
