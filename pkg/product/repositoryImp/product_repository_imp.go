package repositoryImp

import (
	"context"

	"agro/entities"
	"agro/pkg/connectivity"
	"agro/pkg/mirror"
	"agro/pkg/product/repository"
	"agro/pkg/remote"
	"agro/pkg/syncrepo"
)

type productRepo struct {
	core   *syncrepo.Repo
	mirror *mirror.Store
}

func New(rc remote.Client, ms *mirror.Store, mon *connectivity.Monitor) repository.ProductRepository {
	return &productRepo{
		core:   syncrepo.New(entities.CollectionProducts, "created_by", rc, ms, mon),
		mirror: ms,
	}
}

func (r *productRepo) List(ctx context.Context) ([]entities.Product, error) {
	rows, err := r.core.List(ctx)
	if err != nil {
		return nil, err
	}
	return fromRows(rows), nil
}

func (r *productRepo) Get(ctx context.Context, id string) (entities.Product, error) {
	row, err := r.core.Get(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	return entities.ProductFromRow(row), nil
}

func (r *productRepo) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	row, err := r.core.Create(ctx, p.Row())
	if err != nil {
		return entities.Product{}, err
	}
	return entities.ProductFromRow(row), nil
}

func (r *productRepo) Update(ctx context.Context, id string, p repository.ProductPatch) (entities.Product, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	p.Apply(&cur)
	row, err := r.core.Update(ctx, id, cur.Row())
	if err != nil {
		return entities.Product{}, err
	}
	return entities.ProductFromRow(row), nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	return r.core.Delete(ctx, id)
}

func (r *productRepo) LowStock(ctx context.Context) ([]entities.Product, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var low []entities.Product
	for _, p := range all {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

func (r *productRepo) Refresh(ctx context.Context) ([]entities.Product, error) {
	// Dropping the pending flag makes List take the remote path again;
	// after a partial stock application the remote store is the only
	// truth worth keeping.
	if err := r.mirror.SetPending(entities.CollectionProducts, false); err != nil {
		return nil, err
	}
	return r.List(ctx)
}

func fromRows(rows []remote.Row) []entities.Product {
	out := make([]entities.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.ProductFromRow(row))
	}
	return out
}
