package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/entities"
	"agro/pkg/httpx"
	"agro/pkg/maintenance/repository"
)

type MaintenanceCtrl struct{ repo repository.MaintenanceRepository }

func New(r repository.MaintenanceRepository) *MaintenanceCtrl { return &MaintenanceCtrl{repo: r} }

func (ct *MaintenanceCtrl) List(c echo.Context) error {
	out, err := ct.repo.List(c.Request().Context())
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (ct *MaintenanceCtrl) Create(c echo.Context) error {
	var m entities.Maintenance
	if err := c.Bind(&m); err != nil {
		return httpx.BadRequest(c, err)
	}
	if m.Cost < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cost must not be negative"})
	}
	out, err := ct.repo.Create(c.Request().Context(), m)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (ct *MaintenanceCtrl) Patch(c echo.Context) error {
	var p repository.MaintenancePatch
	if err := c.Bind(&p); err != nil {
		return httpx.BadRequest(c, err)
	}
	out, err := ct.repo.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (ct *MaintenanceCtrl) Delete(c echo.Context) error {
	if err := ct.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpx.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
