package controller

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// errorResponse maps domain errors to {"error": ...} bodies. Anything unexpected
// is logged and answered with a generic 500.
func errorResponse(c echo.Context, err error) error {
	var validationErr *model.ValidationError
	var notFoundErr *model.NotFoundError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &validationErr):
		body := map[string]string{"error": validationErr.Message}
		if validationErr.Field != "" {
			body["field"] = validationErr.Field
		}
		return c.JSON(http.StatusBadRequest, body)
	case errors.As(err, &notFoundErr):
		return c.JSON(http.StatusNotFound, map[string]string{"error": notFoundErr.Error()})
	case errors.As(err, &httpErr):
		// body limit and similar framework errors keep their status
		return httpErr
	default:
		log.Error(err.Error(),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg.GetMessage("app.error.internal")})
	}
}
