package repositoryImp

import (
	"context"

	"agro/entities"
	"agro/pkg/connectivity"
	"agro/pkg/maintenance/repository"
	"agro/pkg/mirror"
	"agro/pkg/remote"
	"agro/pkg/syncrepo"
)

type maintenanceRepo struct{ core *syncrepo.Repo }

func New(rc remote.Client, ms *mirror.Store, mon *connectivity.Monitor) repository.MaintenanceRepository {
	return &maintenanceRepo{core: syncrepo.New(entities.CollectionMaintenances, "owner_id", rc, ms, mon)}
}

func (r *maintenanceRepo) List(ctx context.Context) ([]entities.Maintenance, error) {
	rows, err := r.core.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Maintenance, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.MaintenanceFromRow(row))
	}
	return out, nil
}

func (r *maintenanceRepo) ListByMachinery(ctx context.Context, machineryID string) ([]entities.Maintenance, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.Maintenance
	for _, m := range all {
		if m.MachineryID == machineryID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *maintenanceRepo) Get(ctx context.Context, id string) (entities.Maintenance, error) {
	row, err := r.core.Get(ctx, id)
	if err != nil {
		return entities.Maintenance{}, err
	}
	return entities.MaintenanceFromRow(row), nil
}

func (r *maintenanceRepo) Create(ctx context.Context, m entities.Maintenance) (entities.Maintenance, error) {
	row, err := r.core.Create(ctx, m.Row())
	if err != nil {
		return entities.Maintenance{}, err
	}
	return entities.MaintenanceFromRow(row), nil
}

func (r *maintenanceRepo) Update(ctx context.Context, id string, p repository.MaintenancePatch) (entities.Maintenance, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return entities.Maintenance{}, err
	}
	p.Apply(&cur)
	row, err := r.core.Update(ctx, id, cur.Row())
	if err != nil {
		return entities.Maintenance{}, err
	}
	return entities.MaintenanceFromRow(row), nil
}

func (r *maintenanceRepo) Delete(ctx context.Context, id string) error {
	return r.core.Delete(ctx, id)
}
