// Package httpx maps core errors onto HTTP responses so every controller
// reports them the same way.
package httpx

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/pkg/remote"
	"agro/pkg/stock"
)

func Error(c echo.Context, err error) error {
	var short *stock.InsufficientStockError
	switch {
	case errors.As(err, &short):
		details := make([]map[string]any, 0, len(short.Shortfalls))
		for _, s := range short.Shortfalls {
			details = append(details, map[string]any{
				"product_id": s.ProductID,
				"name":       s.Name,
				"available":  s.Available,
				"required":   s.Required,
			})
		}
		return c.JSON(http.StatusConflict, map[string]any{
			"error":     "insufficient stock",
			"shortages": details,
		})
	case errors.Is(err, remote.ErrNoSession), errors.Is(err, remote.ErrNoInstitution):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, remote.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func BadRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
}
