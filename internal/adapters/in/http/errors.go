package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"jobboard/internal/core/ports"
	"jobboard/internal/generated/servers"
	"jobboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NewErrorHandler renders every failed request as a servers.Error. Domain
// errors are classified by their errs sentinel; anything unclassified is a
// 500 whose detail goes to the log, not to the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := classify(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, servers.Error{Code: status, Message: message})
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", slog.Any("error", err))
		}
	}
}

func classify(err error) (int, string) {
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, http.StatusText(httpErr.Code)
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.Is(err, ports.ErrInvalidCredentials):
		return http.StatusUnauthorized, ports.ErrInvalidCredentials.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
