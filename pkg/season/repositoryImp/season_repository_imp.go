package repositoryImp

import (
	"context"

	"agro/entities"
	"agro/pkg/connectivity"
	"agro/pkg/mirror"
	"agro/pkg/remote"
	"agro/pkg/season/repository"
	"agro/pkg/syncrepo"
)

type seasonRepo struct {
	core    *syncrepo.Repo
	remote  remote.Client
	monitor *connectivity.Monitor
}

func New(rc remote.Client, ms *mirror.Store, mon *connectivity.Monitor) repository.SeasonRepository {
	return &seasonRepo{
		core:    syncrepo.New(entities.CollectionSeasons, "created_by", rc, ms, mon),
		remote:  rc,
		monitor: mon,
	}
}

func (r *seasonRepo) List(ctx context.Context) ([]entities.Season, error) {
	rows, err := r.core.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.SeasonFromRow(row))
	}
	return out, nil
}

func (r *seasonRepo) Get(ctx context.Context, id string) (entities.Season, error) {
	row, err := r.core.Get(ctx, id)
	if err != nil {
		return entities.Season{}, err
	}
	return entities.SeasonFromRow(row), nil
}

func (r *seasonRepo) Create(ctx context.Context, s entities.Season) (entities.Season, error) {
	if s.Status == "" {
		s.Status = entities.SeasonPlanned
	}
	row, err := r.core.Create(ctx, s.Row())
	if err != nil {
		return entities.Season{}, err
	}
	return entities.SeasonFromRow(row), nil
}

func (r *seasonRepo) Update(ctx context.Context, id string, p repository.SeasonPatch) (entities.Season, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return entities.Season{}, err
	}
	p.Apply(&cur)
	row, err := r.core.Update(ctx, id, cur.Row())
	if err != nil {
		return entities.Season{}, err
	}
	return entities.SeasonFromRow(row), nil
}

func (r *seasonRepo) Delete(ctx context.Context, id string) error {
	return r.core.Delete(ctx, id)
}

func (r *seasonRepo) SetActive(ctx context.Context, id string) error {
	if r.monitor.Online() {
		actx, err := remote.ResolveContext(ctx, r.remote)
		if err != nil {
			return err
		}
		_, err = r.remote.Call(ctx, "set_active_season", remote.Row{
			"season_id":      id,
			"institution_id": actx.InstitutionID,
		})
		if err != nil {
			return err
		}
		_, err = r.core.List(ctx) // refresh mirror with the server's result
		return err
	}

	// Offline: flip statuses in the mirror through the normal write path
	// so the changes replay during reconciliation.
	seasons, err := r.List(ctx)
	if err != nil {
		return err
	}
	for _, s := range seasons {
		switch {
		case s.ID == id && s.Status != entities.SeasonActive:
			if _, err := r.core.Update(ctx, s.ID, remote.Row{"status": entities.SeasonActive}); err != nil {
				return err
			}
		case s.ID != id && s.Status == entities.SeasonActive:
			if _, err := r.core.Update(ctx, s.ID, remote.Row{"status": entities.SeasonCompleted}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *seasonRepo) Active(ctx context.Context) (entities.Season, bool, error) {
	seasons, err := r.List(ctx)
	if err != nil {
		return entities.Season{}, false, err
	}
	for _, s := range seasons {
		if s.Status == entities.SeasonActive {
			return s, true, nil
		}
	}
	return entities.Season{}, false, nil
}
