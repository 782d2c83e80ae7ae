package http

import (
	"errors"
	"net/http"

	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a typed error onto the HTTP taxonomy: validation failures
// are 400, unknown references 404, authorization failures 403, lost races
// and duplicate inserts 409. Anything untyped is a 500 with a generic
// message so internals never leak to the client.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errs.IsValidationError(err):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}
