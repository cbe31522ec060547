package errs

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// HTTP maps a domain error to the echo error the handler should return.
// Validation problems are client errors, missing foreign-key targets are
// unprocessable, and store failures become a generic 500 so that query
// text and connection details never reach the caller.
func HTTP(err error) *echo.HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	}
	var re *ReferentialError
	if errors.As(err, &re) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, re.Error())
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
