package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/entities"
	"agro/pkg/httpx"
	"agro/pkg/product/repository"
)

type ProductCtrl struct{ repo repository.ProductRepository }

func New(r repository.ProductRepository) *ProductCtrl { return &ProductCtrl{repo: r} }

func (ct *ProductCtrl) List(c echo.Context) error {
	out, err := ct.repo.List(c.Request().Context())
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Low lists products at or below their minimum stock level.
func (ct *ProductCtrl) Low(c echo.Context) error {
	out, err := ct.repo.LowStock(c.Request().Context())
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (ct *ProductCtrl) Create(c echo.Context) error {
	var p entities.Product
	if err := c.Bind(&p); err != nil {
		return httpx.BadRequest(c, err)
	}
	out, err := ct.repo.Create(c.Request().Context(), p)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (ct *ProductCtrl) Patch(c echo.Context) error {
	var p repository.ProductPatch
	if err := c.Bind(&p); err != nil {
		return httpx.BadRequest(c, err)
	}
	out, err := ct.repo.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (ct *ProductCtrl) Delete(c echo.Context) error {
	if err := ct.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpx.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
