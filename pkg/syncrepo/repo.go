// Package syncrepo is the shared write path of every entity repository.
// Each call picks one of two strategies from the connectivity monitor:
// RemoteThenMirror (online) writes to the remote store first and folds the
// authoritative row back into the mirror; MirrorOnlyPending (offline)
// writes the mirror alone, synthesizes a local identifier for creates and
// flags the collection pending for the reconciliation engine.
package syncrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"agro/pkg/connectivity"
	"agro/pkg/mirror"
	"agro/pkg/remote"
)

// LocalIDPrefix marks identifiers synthesized offline. They are replaced
// by server identifiers during reconciliation.
const LocalIDPrefix = "local-"

func NewLocalID() string { return LocalIDPrefix + uuid.NewString() }

func IsLocalID(id string) bool { return strings.HasPrefix(id, LocalIDPrefix) }

// RemoteWriteError wraps a failed remote insert/update/delete. The mirror
// is left untouched when it is returned from an online write.
type RemoteWriteError struct {
	Op         string
	Collection string
	Err        error
}

func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("remote %s on %s failed: %v", e.Op, e.Collection, e.Err)
}

func (e *RemoteWriteError) Unwrap() error { return e.Err }

type Repo struct {
	Collection string
	OwnerField string // "created_by" or "owner_id"

	remote  remote.Client
	mirror  *mirror.Store
	monitor *connectivity.Monitor
	now     func() time.Time
}

func New(collection, ownerField string, rc remote.Client, ms *mirror.Store, mon *connectivity.Monitor) *Repo {
	return &Repo{
		Collection: collection,
		OwnerField: ownerField,
		remote:     rc,
		mirror:     ms,
		monitor:    mon,
		now:        time.Now,
	}
}

// SetNow overrides the clock, for tests.
func (r *Repo) SetNow(now func() time.Time) { r.now = now }

// List returns the mirrored rows, refreshed from the remote store when
// online. A pending mirror is never refreshed: its offline writes have
// not been replayed yet and a refresh would overwrite them.
func (r *Repo) List(ctx context.Context) ([]remote.Row, error) {
	if r.monitor.Online() {
		pending, err := r.mirror.Pending(r.Collection)
		if err != nil {
			return nil, err
		}
		if !pending {
			if rows, err := r.refresh(ctx); err == nil {
				return rows, nil
			} else {
				log.Warnf("[repo] %s refresh failed, serving mirror: %v", r.Collection, err)
			}
		}
	}
	rows, _, err := r.mirror.Read(r.Collection)
	return rows, err
}

func (r *Repo) refresh(ctx context.Context) ([]remote.Row, error) {
	actx, err := remote.ResolveContext(ctx, r.remote)
	if err != nil {
		return nil, err
	}
	rows, err := r.remote.Query(ctx, r.Collection,
		remote.Filter{"institution_id": actx.InstitutionID}, "created_at.asc")
	if err != nil {
		return nil, err
	}
	if err := r.mirror.Write(r.Collection, rows, false); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repo) Create(ctx context.Context, row remote.Row) (remote.Row, error) {
	return r.strategy().Create(ctx, r, row)
}

func (r *Repo) Update(ctx context.Context, id string, row remote.Row) (remote.Row, error) {
	return r.strategy().Update(ctx, r, id, row)
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.strategy().Delete(ctx, r, id)
}

// Get reads one row from the mirror.
func (r *Repo) Get(ctx context.Context, id string) (remote.Row, error) {
	rows, _, err := r.mirror.Read(r.Collection)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if rowID(row) == id {
			return row, nil
		}
	}
	return nil, remote.ErrNotFound
}

// WriteStrategy is the single place online/offline branching lives.
type WriteStrategy interface {
	Create(ctx context.Context, r *Repo, row remote.Row) (remote.Row, error)
	Update(ctx context.Context, r *Repo, id string, row remote.Row) (remote.Row, error)
	Delete(ctx context.Context, r *Repo, id string) error
}

func (r *Repo) strategy() WriteStrategy {
	if r.monitor.Online() {
		return remoteThenMirror{}
	}
	return mirrorOnlyPending{}
}

type remoteThenMirror struct{}

func (remoteThenMirror) Create(ctx context.Context, r *Repo, row remote.Row) (remote.Row, error) {
	actx, err := remote.ResolveContext(ctx, r.remote)
	if err != nil {
		return nil, err
	}
	payload := stripServerFields(row)
	payload["institution_id"] = actx.InstitutionID
	payload[r.OwnerField] = actx.UserID
	created, err := r.remote.Insert(ctx, r.Collection, payload)
	if err != nil {
		return nil, &RemoteWriteError{Op: "insert", Collection: r.Collection, Err: err}
	}
	rows, pending, err := r.mirror.Read(r.Collection)
	if err != nil {
		return created, err
	}
	return created, r.mirror.Write(r.Collection, append(rows, created), pending)
}

func (remoteThenMirror) Update(ctx context.Context, r *Repo, id string, row remote.Row) (remote.Row, error) {
	patch := stripServerFields(row)
	updated, err := r.remote.Update(ctx, r.Collection, id, patch)
	if err != nil {
		return nil, &RemoteWriteError{Op: "update", Collection: r.Collection, Err: err}
	}
	rows, pending, err := r.mirror.Read(r.Collection)
	if err != nil {
		return updated, err
	}
	for i, existing := range rows {
		if rowID(existing) == id {
			rows[i] = updated
			break
		}
	}
	return updated, r.mirror.Write(r.Collection, rows, pending)
}

func (remoteThenMirror) Delete(ctx context.Context, r *Repo, id string) error {
	if err := r.remote.Delete(ctx, r.Collection, id); err != nil {
		return &RemoteWriteError{Op: "delete", Collection: r.Collection, Err: err}
	}
	rows, pending, err := r.mirror.Read(r.Collection)
	if err != nil {
		return err
	}
	return r.mirror.Write(r.Collection, removeRow(rows, id), pending)
}

type mirrorOnlyPending struct{}

func (mirrorOnlyPending) Create(ctx context.Context, r *Repo, row remote.Row) (remote.Row, error) {
	created := cloneRow(row)
	created["id"] = NewLocalID()
	now := r.now().UTC().Format(time.RFC3339)
	created["created_at"] = now
	created["updated_at"] = now
	rows, _, err := r.mirror.Read(r.Collection)
	if err != nil {
		return nil, err
	}
	return created, r.mirror.Write(r.Collection, append(rows, created), true)
}

func (mirrorOnlyPending) Update(ctx context.Context, r *Repo, id string, row remote.Row) (remote.Row, error) {
	rows, _, err := r.mirror.Read(r.Collection)
	if err != nil {
		return nil, err
	}
	for i, existing := range rows {
		if rowID(existing) != id {
			continue
		}
		patched := cloneRow(existing)
		for k, v := range row {
			if k == "id" || k == "created_at" {
				continue
			}
			patched[k] = v
		}
		patched["updated_at"] = r.now().UTC().Format(time.RFC3339)
		rows[i] = patched
		return patched, r.mirror.Write(r.Collection, rows, true)
	}
	return nil, remote.ErrNotFound
}

func (mirrorOnlyPending) Delete(ctx context.Context, r *Repo, id string) error {
	rows, _, err := r.mirror.Read(r.Collection)
	if err != nil {
		return err
	}
	trimmed := removeRow(rows, id)
	if len(trimmed) == len(rows) {
		return remote.ErrNotFound
	}
	return r.mirror.Write(r.Collection, trimmed, true)
}

func rowID(r remote.Row) string {
	id, _ := r["id"].(string)
	return id
}

func cloneRow(r remote.Row) remote.Row {
	out := make(remote.Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// stripServerFields drops what the server assigns itself.
func stripServerFields(r remote.Row) remote.Row {
	out := cloneRow(r)
	delete(out, "id")
	delete(out, "created_at")
	delete(out, "updated_at")
	return out
}

func removeRow(rows []remote.Row, id string) []remote.Row {
	out := rows[:0]
	for _, r := range rows {
		if rowID(r) != id {
			out = append(out, r)
		}
	}
	return out
}
