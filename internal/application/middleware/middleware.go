package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const bodyLimit = "1M"

// Setup installs the middleware chain shared by every route.
func Setup(e *echo.Echo) {
	e.Use(echomw.RequestID())
	SetupRequestLogger(e)
	e.Use(echomw.Recover())
	e.Use(echomw.BodyLimit(bodyLimit))
}
