package controller

import (
	"go-weather/pkg/log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorHandler replaces echo's JSON error responses with the error page,
// so unmatched routes and recovered panics look like any other failure.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if renderErr := RenderError(c, err); renderErr != nil {
		log.Error("Failed to render error page", zap.Error(renderErr), zap.NamedError("cause", err))
	}
}
