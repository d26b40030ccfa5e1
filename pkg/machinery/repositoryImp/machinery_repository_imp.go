package repositoryImp

import (
	"context"

	"agro/entities"
	"agro/pkg/connectivity"
	"agro/pkg/machinery/repository"
	"agro/pkg/mirror"
	"agro/pkg/remote"
	"agro/pkg/syncrepo"
)

type machineryRepo struct{ core *syncrepo.Repo }

func New(rc remote.Client, ms *mirror.Store, mon *connectivity.Monitor) repository.MachineryRepository {
	return &machineryRepo{core: syncrepo.New(entities.CollectionMachinery, "owner_id", rc, ms, mon)}
}

func (r *machineryRepo) List(ctx context.Context) ([]entities.Machinery, error) {
	rows, err := r.core.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Machinery, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.MachineryFromRow(row))
	}
	return out, nil
}

func (r *machineryRepo) Get(ctx context.Context, id string) (entities.Machinery, error) {
	row, err := r.core.Get(ctx, id)
	if err != nil {
		return entities.Machinery{}, err
	}
	return entities.MachineryFromRow(row), nil
}

func (r *machineryRepo) Create(ctx context.Context, m entities.Machinery) (entities.Machinery, error) {
	row, err := r.core.Create(ctx, m.Row())
	if err != nil {
		return entities.Machinery{}, err
	}
	return entities.MachineryFromRow(row), nil
}

func (r *machineryRepo) Update(ctx context.Context, id string, p repository.MachineryPatch) (entities.Machinery, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return entities.Machinery{}, err
	}
	p.Apply(&cur)
	row, err := r.core.Update(ctx, id, cur.Row())
	if err != nil {
		return entities.Machinery{}, err
	}
	return entities.MachineryFromRow(row), nil
}

func (r *machineryRepo) Delete(ctx context.Context, id string) error {
	return r.core.Delete(ctx, id)
}
