package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"agro/config"
	"agro/database"
	"agro/router"

	"agro/pkg/app"
	"agro/pkg/connectivity"
	"agro/pkg/mirror"
	"agro/pkg/remote"

	areaCtrlImp "agro/pkg/area/controllerImp"
	healthCtrlImp "agro/pkg/health/controllerImp"
	machineryCtrlImp "agro/pkg/machinery/controllerImp"
	maintenanceCtrlImp "agro/pkg/maintenance/controllerImp"
	mainttypeCtrlImp "agro/pkg/mainttype/controllerImp"
	operationCtrlImp "agro/pkg/operation/controllerImp"
	productCtrlImp "agro/pkg/product/controllerImp"
	reportCtrlImp "agro/pkg/report/controllerImp"
	seasonCtrlImp "agro/pkg/season/controllerImp"
	syncCtrlImp "agro/pkg/sync/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Local mirror (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)
	store := mirror.New(db)

	// 3) Remote store (mock fallback when unconfigured)
	var rc remote.Client
	if cfg.RemoteURL != "" {
		rc = remote.NewREST(cfg.RemoteURL, cfg.RemoteAPIKey, cfg.RemoteToken)
	} else {
		log.Warnf("[main] REMOTE_URL not set, using in-memory remote")
		mock := remote.NewMock()
		mock.SetUser("dev-user", "dev-institution")
		rc = mock
	}

	// 4) Connectivity monitor with background probing
	mon := connectivity.New()
	if cfg.RemoteURL != "" {
		ping := func(ctx context.Context) error {
			req, err := http.NewRequestWithContext(ctx, http.MethodHead, cfg.RemoteURL, nil)
			if err != nil {
				return err
			}
			httpc := &http.Client{Timeout: 5 * time.Second}
			resp, err := httpc.Do(req)
			if err != nil {
				return err
			}
			return resp.Body.Close()
		}
		mon.StartProber(context.Background(), cfg.ProbeInterval, ping)
	}

	// 5) Facade: repositories, stock ledger, reconciliation engine
	a := app.New(rc, store, mon)
	a.Engine().OnCollectionSynced(func(col string) {
		log.Printf("[main] collection synced: %s", col)
	})
	a.Engine().OnAllSynced(func() {
		log.Printf("[main] all collections synced")
	})

	// 6) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	// 7) Controllers
	areaCtrl := areaCtrlImp.New(a.Areas)
	operationCtrl := operationCtrlImp.New(a.Operations, a.Areas)
	productCtrl := productCtrlImp.New(a.Products)
	seasonCtrl := seasonCtrlImp.New(a.Seasons)
	machineryCtrl := machineryCtrlImp.New(a.Machinery, a.Maintenances)
	maintTypeCtrl := mainttypeCtrlImp.New(a.MaintenanceTypes)
	maintenanceCtrl := maintenanceCtrlImp.New(a.Maintenances)
	syncCtrl := syncCtrlImp.New(a)
	reportCtrl := reportCtrlImp.New(a.Products)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db, mon)

	// 8) Router
	r := router.New(
		e,
		areaCtrl,
		operationCtrl,
		productCtrl,
		seasonCtrl,
		machineryCtrl,
		maintTypeCtrl,
		maintenanceCtrl,
		syncCtrl,
		reportCtrl,
		healthCtrl,
	)

	// 9) Start
	log.Printf("[main] listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
