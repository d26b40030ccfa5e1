package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	areaCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	operationCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	productCtrl interface {
		List(echo.Context) error
		Low(echo.Context) error
		Create(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	seasonCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Patch(echo.Context) error
		Activate(echo.Context) error
		Delete(echo.Context) error
	},
	machineryCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
		Maintenances(echo.Context) error
	},
	maintTypeCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	maintenanceCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	syncCtrl interface {
		Trigger(echo.Context) error
		Status(echo.Context) error
	},
	reportCtrl interface{ StockXLSX(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/sync", syncCtrl.Trigger)
	e.GET("/sync/status", syncCtrl.Status)

	e.GET("/areas", areaCtrl.List)
	e.POST("/areas", areaCtrl.Create)
	e.PATCH("/areas/:id", areaCtrl.Patch)
	e.DELETE("/areas/:id", areaCtrl.Delete)

	e.GET("/operations", operationCtrl.List)
	e.POST("/operations", operationCtrl.Create)
	e.PATCH("/operations/:id", operationCtrl.Patch)
	e.DELETE("/operations/:id", operationCtrl.Delete)

	e.GET("/products", productCtrl.List)
	e.GET("/products/low", productCtrl.Low)
	e.POST("/products", productCtrl.Create)
	e.PATCH("/products/:id", productCtrl.Patch)
	e.DELETE("/products/:id", productCtrl.Delete)

	e.GET("/seasons", seasonCtrl.List)
	e.POST("/seasons", seasonCtrl.Create)
	e.PATCH("/seasons/:id", seasonCtrl.Patch)
	e.POST("/seasons/:id/activate", seasonCtrl.Activate)
	e.DELETE("/seasons/:id", seasonCtrl.Delete)

	e.GET("/machinery", machineryCtrl.List)
	e.POST("/machinery", machineryCtrl.Create)
	e.PATCH("/machinery/:id", machineryCtrl.Patch)
	e.DELETE("/machinery/:id", machineryCtrl.Delete)
	e.GET("/machinery/:id/maintenances", machineryCtrl.Maintenances)

	e.GET("/maintenance-types", maintTypeCtrl.List)
	e.POST("/maintenance-types", maintTypeCtrl.Create)
	e.PATCH("/maintenance-types/:id", maintTypeCtrl.Patch)
	e.DELETE("/maintenance-types/:id", maintTypeCtrl.Delete)

	e.GET("/maintenances", maintenanceCtrl.List)
	e.POST("/maintenances", maintenanceCtrl.Create)
	e.PATCH("/maintenances/:id", maintenanceCtrl.Patch)
	e.DELETE("/maintenances/:id", maintenanceCtrl.Delete)

	e.GET("/reports/stock.xlsx", reportCtrl.StockXLSX)

	return e
}
