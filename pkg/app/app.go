// Package app aggregates the repositories, the stock ledger and the
// reconciliation engine behind the one surface the HTTP layer consumes.
package app

import (
	"context"
	"sync/atomic"

	"github.com/labstack/gommon/log"

	"agro/pkg/connectivity"
	"agro/pkg/mirror"
	"agro/pkg/remote"
	"agro/pkg/stock"
	"agro/pkg/syncer"

	areaRepo "agro/pkg/area/repository"
	areaImp "agro/pkg/area/repositoryImp"
	machineryRepo "agro/pkg/machinery/repository"
	machineryImp "agro/pkg/machinery/repositoryImp"
	maintenanceRepo "agro/pkg/maintenance/repository"
	maintenanceImp "agro/pkg/maintenance/repositoryImp"
	mainttypeRepo "agro/pkg/mainttype/repository"
	mainttypeImp "agro/pkg/mainttype/repositoryImp"
	operationRepo "agro/pkg/operation/repository"
	operationImp "agro/pkg/operation/repositoryImp"
	productRepo "agro/pkg/product/repository"
	productImp "agro/pkg/product/repositoryImp"
	seasonRepo "agro/pkg/season/repository"
	seasonImp "agro/pkg/season/repositoryImp"
)

type App struct {
	Areas            areaRepo.AreaRepository
	Operations       operationRepo.OperationRepository
	Products         productRepo.ProductRepository
	Seasons          seasonRepo.SeasonRepository
	Machinery        machineryRepo.MachineryRepository
	MaintenanceTypes mainttypeRepo.MaintenanceTypeRepository
	Maintenances     maintenanceRepo.MaintenanceRepository

	Ledger *stock.Ledger

	monitor *connectivity.Monitor
	mirror  *mirror.Store
	engine  *syncer.Engine
	syncing atomic.Bool
}

func New(rc remote.Client, ms *mirror.Store, mon *connectivity.Monitor) *App {
	ledger := stock.New(rc, ms, mon)
	seasons := seasonImp.New(rc, ms, mon)

	a := &App{
		Areas:            areaImp.New(rc, ms, mon),
		Operations:       operationImp.New(rc, ms, mon, ledger, seasons),
		Products:         productImp.New(rc, ms, mon),
		Seasons:          seasons,
		Machinery:        machineryImp.New(rc, ms, mon),
		MaintenanceTypes: mainttypeImp.New(rc, ms, mon),
		Maintenances:     maintenanceImp.New(rc, ms, mon),
		Ledger:           ledger,
		monitor:          mon,
		mirror:           ms,
		engine:           syncer.New(rc, ms),
	}

	// Offline writes drain automatically when connectivity returns.
	mon.Subscribe(func(online bool) {
		if !online {
			return
		}
		go func() {
			if err := a.SyncData(context.Background()); err != nil {
				log.Warnf("[app] sync on reconnect: %v", err)
			}
		}()
	})
	return a
}

func (a *App) IsOnline() bool { return a.monitor.Online() }

func (a *App) Monitor() *connectivity.Monitor { return a.monitor }

// Engine exposes the reconciliation engine for notification wiring.
func (a *App) Engine() *syncer.Engine { return a.engine }

// HasPendingSync reports whether any collection holds unreconciled
// offline writes.
func (a *App) HasPendingSync() (bool, error) {
	cols, err := a.mirror.PendingCollections()
	if err != nil {
		return false, err
	}
	return len(cols) > 0, nil
}

func (a *App) PendingCollections() ([]string, error) {
	return a.mirror.PendingCollections()
}

// SyncData runs one reconciliation pass over all pending collections.
// At most one pass runs at a time; a call arriving while a pass is in
// flight is a no-op, since interleaved passes would race on the mirror.
func (a *App) SyncData(ctx context.Context) error {
	if !a.syncing.CompareAndSwap(false, true) {
		return nil
	}
	defer a.syncing.Store(false)
	return a.engine.SyncAll(ctx)
}
