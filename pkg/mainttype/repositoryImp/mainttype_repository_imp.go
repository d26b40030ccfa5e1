package repositoryImp

import (
	"context"

	"agro/entities"
	"agro/pkg/connectivity"
	"agro/pkg/mainttype/repository"
	"agro/pkg/mirror"
	"agro/pkg/remote"
	"agro/pkg/syncrepo"
)

type maintTypeRepo struct{ core *syncrepo.Repo }

func New(rc remote.Client, ms *mirror.Store, mon *connectivity.Monitor) repository.MaintenanceTypeRepository {
	return &maintTypeRepo{core: syncrepo.New(entities.CollectionMaintenanceTypes, "owner_id", rc, ms, mon)}
}

func (r *maintTypeRepo) List(ctx context.Context) ([]entities.MaintenanceType, error) {
	rows, err := r.core.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.MaintenanceType, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.MaintenanceTypeFromRow(row))
	}
	return out, nil
}

func (r *maintTypeRepo) Get(ctx context.Context, id string) (entities.MaintenanceType, error) {
	row, err := r.core.Get(ctx, id)
	if err != nil {
		return entities.MaintenanceType{}, err
	}
	return entities.MaintenanceTypeFromRow(row), nil
}

func (r *maintTypeRepo) Create(ctx context.Context, t entities.MaintenanceType) (entities.MaintenanceType, error) {
	row, err := r.core.Create(ctx, t.Row())
	if err != nil {
		return entities.MaintenanceType{}, err
	}
	return entities.MaintenanceTypeFromRow(row), nil
}

func (r *maintTypeRepo) Update(ctx context.Context, id string, p repository.MaintenanceTypePatch) (entities.MaintenanceType, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return entities.MaintenanceType{}, err
	}
	p.Apply(&cur)
	row, err := r.core.Update(ctx, id, cur.Row())
	if err != nil {
		return entities.MaintenanceType{}, err
	}
	return entities.MaintenanceTypeFromRow(row), nil
}

func (r *maintTypeRepo) Delete(ctx context.Context, id string) error {
	return r.core.Delete(ctx, id)
}
