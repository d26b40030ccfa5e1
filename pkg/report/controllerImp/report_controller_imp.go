package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/pkg/httpx"
	productRepo "agro/pkg/product/repository"
	"agro/pkg/report"
)

type ReportCtrl struct{ products productRepo.ProductRepository }

func New(products productRepo.ProductRepository) *ReportCtrl {
	return &ReportCtrl{products: products}
}

func (ct *ReportCtrl) StockXLSX(c echo.Context) error {
	products, err := ct.products.List(c.Request().Context())
	if err != nil {
		return httpx.Error(c, err)
	}
	f, err := report.StockXLSX(products)
	if err != nil {
		return httpx.Error(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="stock.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
