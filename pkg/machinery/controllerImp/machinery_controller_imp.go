package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/entities"
	"agro/pkg/httpx"
	"agro/pkg/machinery/repository"
	maintenanceRepo "agro/pkg/maintenance/repository"
)

type MachineryCtrl struct {
	repo         repository.MachineryRepository
	maintenances maintenanceRepo.MaintenanceRepository
}

func New(r repository.MachineryRepository, m maintenanceRepo.MaintenanceRepository) *MachineryCtrl {
	return &MachineryCtrl{repo: r, maintenances: m}
}

func (ct *MachineryCtrl) List(c echo.Context) error {
	out, err := ct.repo.List(c.Request().Context())
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (ct *MachineryCtrl) Create(c echo.Context) error {
	var m entities.Machinery
	if err := c.Bind(&m); err != nil {
		return httpx.BadRequest(c, err)
	}
	out, err := ct.repo.Create(c.Request().Context(), m)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (ct *MachineryCtrl) Patch(c echo.Context) error {
	var p repository.MachineryPatch
	if err := c.Bind(&p); err != nil {
		return httpx.BadRequest(c, err)
	}
	out, err := ct.repo.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (ct *MachineryCtrl) Delete(c echo.Context) error {
	if err := ct.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpx.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Maintenances lists one machine's maintenance history.
func (ct *MachineryCtrl) Maintenances(c echo.Context) error {
	out, err := ct.maintenances.ListByMachinery(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
