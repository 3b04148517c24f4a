package middleware

import (
	"net/http"

	"vpnAdvisor/pkg/logger"

	jsonres "vpnAdvisor/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the central echo error handler: echo.HTTPErrors keep their
// status, everything else becomes an opaque 500 so internal diagnostics never
// leak to callers.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", "error", err, "path", c.Request().URL.Path)
	}

	if err := c.JSON(code, jsonres.Error("ERROR", message, nil)); err != nil {
		logger.Error("Failed to write error response", "error", err)
	}
}
