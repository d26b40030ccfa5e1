package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/entities"
	"agro/pkg/httpx"
	"agro/pkg/mainttype/repository"
)

type MaintenanceTypeCtrl struct{ repo repository.MaintenanceTypeRepository }

func New(r repository.MaintenanceTypeRepository) *MaintenanceTypeCtrl {
	return &MaintenanceTypeCtrl{repo: r}
}

func (ct *MaintenanceTypeCtrl) List(c echo.Context) error {
	out, err := ct.repo.List(c.Request().Context())
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (ct *MaintenanceTypeCtrl) Create(c echo.Context) error {
	var t entities.MaintenanceType
	if err := c.Bind(&t); err != nil {
		return httpx.BadRequest(c, err)
	}
	out, err := ct.repo.Create(c.Request().Context(), t)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (ct *MaintenanceTypeCtrl) Patch(c echo.Context) error {
	var p repository.MaintenanceTypePatch
	if err := c.Bind(&p); err != nil {
		return httpx.BadRequest(c, err)
	}
	out, err := ct.repo.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (ct *MaintenanceTypeCtrl) Delete(c echo.Context) error {
	if err := ct.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpx.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
