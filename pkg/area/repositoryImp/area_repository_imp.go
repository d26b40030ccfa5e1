package repositoryImp

import (
	"context"

	"agro/entities"
	"agro/pkg/area/repository"
	"agro/pkg/connectivity"
	"agro/pkg/mirror"
	"agro/pkg/remote"
	"agro/pkg/syncrepo"
)

type areaRepo struct{ core *syncrepo.Repo }

func New(rc remote.Client, ms *mirror.Store, mon *connectivity.Monitor) repository.AreaRepository {
	return &areaRepo{core: syncrepo.New(entities.CollectionAreas, "created_by", rc, ms, mon)}
}

func (r *areaRepo) List(ctx context.Context) ([]entities.Area, error) {
	rows, err := r.core.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Area, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.AreaFromRow(row))
	}
	return out, nil
}

func (r *areaRepo) Get(ctx context.Context, id string) (entities.Area, error) {
	row, err := r.core.Get(ctx, id)
	if err != nil {
		return entities.Area{}, err
	}
	return entities.AreaFromRow(row), nil
}

func (r *areaRepo) Create(ctx context.Context, a entities.Area) (entities.Area, error) {
	row, err := r.core.Create(ctx, a.Row())
	if err != nil {
		return entities.Area{}, err
	}
	return entities.AreaFromRow(row), nil
}

func (r *areaRepo) Update(ctx context.Context, id string, p repository.AreaPatch) (entities.Area, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return entities.Area{}, err
	}
	p.Apply(&cur)
	row, err := r.core.Update(ctx, id, cur.Row())
	if err != nil {
		return entities.Area{}, err
	}
	return entities.AreaFromRow(row), nil
}

func (r *areaRepo) Delete(ctx context.Context, id string) error {
	return r.core.Delete(ctx, id)
}
