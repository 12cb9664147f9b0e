package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"locationreminder/internal/application/dto"
	"locationreminder/internal/domain/result"
	appErrors "locationreminder/internal/pkg/errors"
	"locationreminder/internal/pkg/validation"
)

// bindAndValidate decodes the request body into req and validates it.
// On failure the error response has already been written and ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}
	if err := validation.ValidateStruct(req); err != nil {
		var ve *appErrors.ValidationError
		if errors.As(err, &ve) {
			return false, c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: ve.Message, Field: ve.Field})
		}
		return false, c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}
	return true, nil
}

// resultStatus maps an error result to an HTTP status. An error without a
// status code is a lookup miss.
func resultStatus[T any](res result.Result[T]) int {
	if code, ok := res.StatusCode(); ok {
		return code
	}
	return http.StatusNotFound
}
