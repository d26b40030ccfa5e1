package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/entities"
	areaRepo "agro/pkg/area/repository"
	"agro/pkg/httpx"
	"agro/pkg/operation/repository"
)

type OperationCtrl struct {
	repo  repository.OperationRepository
	areas areaRepo.AreaRepository
}

func New(r repository.OperationRepository, areas areaRepo.AreaRepository) *OperationCtrl {
	return &OperationCtrl{repo: r, areas: areas}
}

// List returns the active season's operations; ?all=true returns every
// mirrored operation regardless of season.
func (ct *OperationCtrl) List(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		out []entities.Operation
		err error
	)
	if c.QueryParam("all") == "true" {
		out, err = ct.repo.ListAll(ctx)
	} else {
		out, err = ct.repo.List(ctx)
	}
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (ct *OperationCtrl) Create(c echo.Context) error {
	var o entities.Operation
	if err := c.Bind(&o); err != nil {
		return httpx.BadRequest(c, err)
	}
	ctx := c.Request().Context()
	area, err := ct.areas.Get(ctx, o.AreaID)
	if err != nil {
		return httpx.Error(c, err)
	}
	if err := o.Validate(area); err != nil {
		return httpx.BadRequest(c, err)
	}
	out, err := ct.repo.Create(ctx, o)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (ct *OperationCtrl) Patch(c echo.Context) error {
	var p repository.OperationPatch
	if err := c.Bind(&p); err != nil {
		return httpx.BadRequest(c, err)
	}
	out, err := ct.repo.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (ct *OperationCtrl) Delete(c echo.Context) error {
	if err := ct.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpx.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
