package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/entities"
	"agro/pkg/area/repository"
	"agro/pkg/httpx"
)

type AreaCtrl struct{ repo repository.AreaRepository }

func New(r repository.AreaRepository) *AreaCtrl { return &AreaCtrl{repo: r} }

func (ct *AreaCtrl) List(c echo.Context) error {
	out, err := ct.repo.List(c.Request().Context())
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (ct *AreaCtrl) Create(c echo.Context) error {
	var a entities.Area
	if err := c.Bind(&a); err != nil {
		return httpx.BadRequest(c, err)
	}
	out, err := ct.repo.Create(c.Request().Context(), a)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (ct *AreaCtrl) Patch(c echo.Context) error {
	var p repository.AreaPatch
	if err := c.Bind(&p); err != nil {
		return httpx.BadRequest(c, err)
	}
	out, err := ct.repo.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (ct *AreaCtrl) Delete(c echo.Context) error {
	if err := ct.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpx.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
