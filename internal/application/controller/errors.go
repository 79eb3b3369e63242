package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-app/internal/domain/gateway/store"
	"weather-app/internal/domain/usecase/home"
)

// writeError maps use case errors to status codes. Provider failures never get here:
// the use cases log them and return the unchanged screen.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrScreenNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Screen not found"})
	case errors.Is(err, home.ErrLocationUnavailable):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}
