package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/entities"
	"agro/pkg/httpx"
	"agro/pkg/season/repository"
)

type SeasonCtrl struct{ repo repository.SeasonRepository }

func New(r repository.SeasonRepository) *SeasonCtrl { return &SeasonCtrl{repo: r} }

func (ct *SeasonCtrl) List(c echo.Context) error {
	out, err := ct.repo.List(c.Request().Context())
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (ct *SeasonCtrl) Create(c echo.Context) error {
	var s entities.Season
	if err := c.Bind(&s); err != nil {
		return httpx.BadRequest(c, err)
	}
	out, err := ct.repo.Create(c.Request().Context(), s)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (ct *SeasonCtrl) Patch(c echo.Context) error {
	var p repository.SeasonPatch
	if err := c.Bind(&p); err != nil {
		return httpx.BadRequest(c, err)
	}
	out, err := ct.repo.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Activate makes this season the institution's active one.
func (ct *SeasonCtrl) Activate(c echo.Context) error {
	if err := ct.repo.SetActive(c.Request().Context(), c.Param("id")); err != nil {
		return httpx.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ct *SeasonCtrl) Delete(c echo.Context) error {
	if err := ct.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpx.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
