package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"investment-service/internal/apperr"
)

var errInvalidID = apperr.Validation("id must be a positive integer")

// errorResponse maps a service-layer error kind onto an HTTP status
// and a JSON message body.
func errorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict:
		status = http.StatusBadRequest
		message = err.Error()
	case apperr.KindNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case apperr.KindUnauthorized:
		status = http.StatusUnauthorized
		message = err.Error()
	}

	return c.JSON(status, echo.Map{"message": message})
}
