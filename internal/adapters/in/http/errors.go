package http

import (
	"errors"
	"net/http"

	"supply/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps the domain error taxonomy onto HTTP statuses:
// validation errors are the client's fault (400), unknown objects are 404,
// stock and lifecycle conflicts are 409, and a sourcing-rule violation is a
// semantically invalid but well-formed request (422).
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrComplianceRuleViolated):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
