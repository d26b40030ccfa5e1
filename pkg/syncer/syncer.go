// Package syncer replays offline writes against the remote store when
// connectivity returns.
//
// Reconciliation is best-effort: a record that fails to replay is logged
// and skipped, and the trailing full reload then drops it from the mirror.
// That lossy behavior is deliberate; the pending flag still clears so the
// collection converges on the remote truth.
package syncer

import (
	"context"
	"fmt"

	"github.com/labstack/gommon/log"

	"agro/entities"
	"agro/pkg/mirror"
	"agro/pkg/remote"
	"agro/pkg/syncrepo"
)

// Collections is the fixed reconciliation order. Keeping it stable keeps
// test runs reproducible.
var Collections = []string{
	entities.CollectionAreas,
	entities.CollectionOperations,
	entities.CollectionProducts,
	entities.CollectionSeasons,
	entities.CollectionMachinery,
	entities.CollectionMaintenanceTypes,
	entities.CollectionMaintenances,
}

// ownerFields maps each collection to the column carrying the acting
// user on insert.
var ownerFields = map[string]string{
	entities.CollectionAreas:            "created_by",
	entities.CollectionOperations:       "created_by",
	entities.CollectionProducts:         "created_by",
	entities.CollectionSeasons:          "created_by",
	entities.CollectionMachinery:        "owner_id",
	entities.CollectionMaintenanceTypes: "owner_id",
	entities.CollectionMaintenances:     "owner_id",
}

type Engine struct {
	remote remote.Client
	mirror *mirror.Store

	onCollection []func(collection string)
	onAll        []func()
}

func New(rc remote.Client, ms *mirror.Store) *Engine {
	return &Engine{remote: rc, mirror: ms}
}

// OnCollectionSynced registers a callback fired after each collection's
// pass completes and its pending flag clears.
func (e *Engine) OnCollectionSynced(fn func(collection string)) {
	e.onCollection = append(e.onCollection, fn)
}

// OnAllSynced registers a callback fired when no collection is left
// pending after a pass.
func (e *Engine) OnAllSynced(fn func()) {
	e.onAll = append(e.onAll, fn)
}

// SyncAll reconciles every pending collection in the fixed order. The
// acting context is resolved once; if that fails, the whole pass aborts
// with every pending flag untouched so the next trigger retries.
func (e *Engine) SyncAll(ctx context.Context) error {
	actx, err := remote.ResolveContext(ctx, e.remote)
	if err != nil {
		return fmt.Errorf("sync aborted: %w", err)
	}
	for _, col := range Collections {
		pending, err := e.mirror.Pending(col)
		if err != nil {
			return err
		}
		if !pending {
			continue
		}
		if err := e.syncCollection(ctx, actx, col); err != nil {
			// Pending stays set; retried on the next transition.
			log.Errorf("[sync] %s: %v", col, err)
			continue
		}
		log.Printf("[sync] %s reconciled", col)
		for _, fn := range e.onCollection {
			fn(col)
		}
	}
	left, err := e.mirror.PendingCollections()
	if err != nil {
		return err
	}
	if len(left) == 0 {
		for _, fn := range e.onAll {
			fn()
		}
	}
	return nil
}

// syncCollection walks the mirrored records, inserts the locally created
// ones, updates the surviving server ones, then reloads the collection
// from the remote store and clears the pending flag.
func (e *Engine) syncCollection(ctx context.Context, actx remote.ActingContext, col string) error {
	rows, _, err := e.mirror.Read(col)
	if err != nil {
		return err
	}
	for _, row := range rows {
		id, _ := row["id"].(string)
		if syncrepo.IsLocalID(id) {
			payload := stripServerFields(row)
			payload[ownerFields[col]] = actx.UserID
			payload["institution_id"] = actx.InstitutionID
			if _, err := e.remote.Insert(ctx, col, payload); err != nil {
				log.Warnf("[sync] %s: insert of local record %s failed, skipping: %v", col, id, err)
			}
			continue
		}
		existing, err := e.remote.Query(ctx, col, remote.Filter{"id": id}, "")
		if err != nil {
			log.Warnf("[sync] %s: existence check for %s failed, skipping: %v", col, id, err)
			continue
		}
		if len(existing) == 0 {
			// Deleted upstream; the trailing reload drops it here too.
			continue
		}
		if _, err := e.remote.Update(ctx, col, id, stripServerFields(row)); err != nil {
			log.Warnf("[sync] %s: update of %s failed, skipping: %v", col, id, err)
		}
	}

	fresh, err := e.remote.Query(ctx, col,
		remote.Filter{"institution_id": actx.InstitutionID}, "created_at.asc")
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	return e.mirror.Write(col, fresh, false)
}

func stripServerFields(r remote.Row) remote.Row {
	out := make(remote.Row, len(r))
	for k, v := range r {
		switch k {
		case "id", "created_at", "updated_at":
		default:
			out[k] = v
		}
	}
	return out
}
