package repositoryImp

import (
	"context"

	"github.com/labstack/gommon/log"

	"agro/entities"
	"agro/pkg/connectivity"
	"agro/pkg/mirror"
	"agro/pkg/operation/repository"
	"agro/pkg/remote"
	seasonRepo "agro/pkg/season/repository"
	"agro/pkg/stock"
	"agro/pkg/syncrepo"
)

type operationRepo struct {
	core    *syncrepo.Repo
	ledger  *stock.Ledger
	seasons seasonRepo.SeasonRepository
}

func New(rc remote.Client, ms *mirror.Store, mon *connectivity.Monitor, ledger *stock.Ledger, seasons seasonRepo.SeasonRepository) repository.OperationRepository {
	return &operationRepo{
		core:    syncrepo.New(entities.CollectionOperations, "created_by", rc, ms, mon),
		ledger:  ledger,
		seasons: seasons,
	}
}

func (r *operationRepo) List(ctx context.Context) ([]entities.Operation, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	active, ok, err := r.seasons.Active(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var out []entities.Operation
	for _, o := range all {
		if o.SeasonID == active.ID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *operationRepo) ListAll(ctx context.Context) ([]entities.Operation, error) {
	rows, err := r.core.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Operation, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.OperationFromRow(row))
	}
	return out, nil
}

func (r *operationRepo) Get(ctx context.Context, id string) (entities.Operation, error) {
	row, err := r.core.Get(ctx, id)
	if err != nil {
		return entities.Operation{}, err
	}
	return entities.OperationFromRow(row), nil
}

// Create debits consumed product stock before persisting the operation.
// An InsufficientStock rejection happens before any mutation. If the
// operation write itself fails after the debit succeeded, stock and
// operation have diverged: the error is surfaced and the caller must
// refresh products rather than assume nothing changed.
func (r *operationRepo) Create(ctx context.Context, o entities.Operation) (entities.Operation, error) {
	if o.SeasonID == "" {
		active, ok, err := r.seasons.Active(ctx)
		if err != nil {
			return entities.Operation{}, err
		}
		if ok {
			o.SeasonID = active.ID
		}
	}
	if err := r.ledger.Reserve(ctx, o.Products); err != nil {
		return entities.Operation{}, err
	}
	created, err := r.core.Create(ctx, o.Row())
	if err != nil {
		return entities.Operation{}, err
	}
	return entities.OperationFromRow(created), nil
}

// Update releases the old usage list and reserves the new one when the
// patch changes products, so the net stock delta matches the edit.
func (r *operationRepo) Update(ctx context.Context, id string, p repository.OperationPatch) (entities.Operation, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return entities.Operation{}, err
	}
	oldUsages := cur.Products
	p.Apply(&cur)

	if p.Products != nil && !usagesEqual(oldUsages, *p.Products) {
		if err := r.ledger.Release(ctx, oldUsages); err != nil {
			return entities.Operation{}, err
		}
		if err := r.ledger.Reserve(ctx, *p.Products); err != nil {
			// Put the released quantities back; a re-reserve of what was
			// just released cannot be short.
			if rerr := r.ledger.Reserve(ctx, oldUsages); rerr != nil {
				log.Errorf("[operation] restore after failed reserve: %v", rerr)
			}
			return entities.Operation{}, err
		}
	}

	row, err := r.core.Update(ctx, id, cur.Row())
	if err != nil {
		return entities.Operation{}, err
	}
	return entities.OperationFromRow(row), nil
}

// Delete credits the operation's consumed products back before removing
// the record.
func (r *operationRepo) Delete(ctx context.Context, id string) error {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := r.ledger.Release(ctx, cur.Products); err != nil {
		// Best effort: the delete still proceeds, the remote stock row
		// is reconciled on the next products refresh.
		log.Warnf("[operation] release on delete: %v", err)
	}
	return r.core.Delete(ctx, id)
}

func usagesEqual(a, b []entities.ProductUsage) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ProductID != b[i].ProductID || a[i].Quantity != b[i].Quantity {
			return false
		}
	}
	return true
}
