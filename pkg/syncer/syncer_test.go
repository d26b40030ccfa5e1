package syncer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agro/pkg/remote"
	"agro/pkg/syncer"
	"agro/pkg/syncrepo"
	"agro/pkg/testutil"
)

// TestSyncAllReplaysOfflineCreates: a locally created record is inserted
// with a server id, ownership and institution stamped, and the mirror is
// replaced by the remote truth with the pending flag cleared.
func TestSyncAllReplaysOfflineCreates(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	mock.SetUser("u1", "i1")
	require.NoError(t, ms.Write("areas", []remote.Row{
		{"id": syncrepo.NewLocalID(), "name": "Offline field", "size": 4.0},
	}, true))
	e := syncer.New(mock, ms)

	var synced []string
	allDone := false
	e.OnCollectionSynced(func(col string) { synced = append(synced, col) })
	e.OnAllSynced(func() { allDone = true })

	require.NoError(t, e.SyncAll(context.Background()))

	remoteRows := mock.Rows("areas")
	require.Len(t, remoteRows, 1)
	id, _ := remoteRows[0]["id"].(string)
	assert.False(t, syncrepo.IsLocalID(id))
	assert.Equal(t, "u1", remoteRows[0]["created_by"])
	assert.Equal(t, "i1", remoteRows[0]["institution_id"])

	rows, pending, err := ms.Read("areas")
	require.NoError(t, err)
	assert.False(t, pending)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0]["id"])

	assert.Equal(t, []string{"areas"}, synced)
	assert.True(t, allDone)
}

// TestSyncAllReplaysOfflineUpdates: a surviving server record carries its
// offline edits back upstream.
func TestSyncAllReplaysOfflineUpdates(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	mock.SetUser("u1", "i1")
	mock.Seed("areas", remote.Row{"id": "a1", "name": "Old name", "institution_id": "i1"})
	require.NoError(t, ms.Write("areas", []remote.Row{
		{"id": "a1", "name": "New name", "institution_id": "i1"},
	}, true))
	e := syncer.New(mock, ms)

	require.NoError(t, e.SyncAll(context.Background()))

	remoteRows := mock.Rows("areas")
	require.Len(t, remoteRows, 1)
	assert.Equal(t, "New name", remoteRows[0]["name"])
	pending, err := ms.Pending("areas")
	require.NoError(t, err)
	assert.False(t, pending)
}

// TestSyncAllDropsRecordsDeletedUpstream: an offline edit to a record
// another client deleted is not resurrected; the reload removes it.
func TestSyncAllDropsRecordsDeletedUpstream(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	mock.SetUser("u1", "i1")
	mock.Seed("areas", remote.Row{"id": "a1", "name": "Keeper", "institution_id": "i1"})
	require.NoError(t, ms.Write("areas", []remote.Row{
		{"id": "a1", "name": "Keeper", "institution_id": "i1"},
		{"id": "gone", "name": "Edited after deletion", "institution_id": "i1"},
	}, true))
	e := syncer.New(mock, ms)

	require.NoError(t, e.SyncAll(context.Background()))

	rows, pending, err := ms.Read("areas")
	require.NoError(t, err)
	assert.False(t, pending)
	require.Len(t, rows, 1)
	assert.Equal(t, "a1", rows[0]["id"])
	require.Len(t, mock.Rows("areas"), 1, "deleted record not resurrected")
}

// TestSyncAllSkipsFailedRecordAndStillConverges: one record failing to
// replay does not block the rest; the pending flag clears and the mirror
// ends equal to the remote content, dropping the failed record.
func TestSyncAllSkipsFailedRecordAndStillConverges(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	mock.SetUser("u1", "i1")
	require.NoError(t, ms.Write("areas", []remote.Row{
		{"id": syncrepo.NewLocalID(), "name": "First"},
		{"id": syncrepo.NewLocalID(), "name": "Second"},
	}, true))
	inserts := 0
	mock.FailHook = func(op, table, id string) error {
		if op == "insert" && table == "areas" {
			inserts++
			if inserts == 1 {
				return errors.New("constraint violation")
			}
		}
		return nil
	}
	e := syncer.New(mock, ms)

	require.NoError(t, e.SyncAll(context.Background()))

	remoteRows := mock.Rows("areas")
	require.Len(t, remoteRows, 1)
	assert.Equal(t, "Second", remoteRows[0]["name"])

	rows, pending, err := ms.Read("areas")
	require.NoError(t, err)
	assert.False(t, pending, "pending clears even when a record was skipped")
	require.Len(t, rows, 1)
	assert.Equal(t, "Second", rows[0]["name"])
}

// TestSyncAllAbortsWithoutSession: no acting context means nothing is
// replayed and every pending flag survives for the next attempt.
func TestSyncAllAbortsWithoutSession(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock() // no SetUser
	require.NoError(t, ms.Write("areas", []remote.Row{{"id": syncrepo.NewLocalID()}}, true))
	e := syncer.New(mock, ms)

	err := e.SyncAll(context.Background())
	assert.ErrorIs(t, err, remote.ErrNoSession)

	pending, perr := ms.Pending("areas")
	require.NoError(t, perr)
	assert.True(t, pending)
	assert.Empty(t, mock.Rows("areas"))
}

// TestSyncAllTouchesOnlyPendingCollections: clean collections are not
// queried or rewritten.
func TestSyncAllTouchesOnlyPendingCollections(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	mock.SetUser("u1", "i1")
	mock.Seed("products", remote.Row{"id": "p1", "name": "Server product", "institution_id": "i1"})
	require.NoError(t, ms.Write("areas", []remote.Row{{"id": syncrepo.NewLocalID(), "name": "A"}}, true))
	require.NoError(t, ms.Write("products", []remote.Row{{"id": "p-stale", "name": "Stale local"}}, false))
	e := syncer.New(mock, ms)

	var synced []string
	e.OnCollectionSynced(func(col string) { synced = append(synced, col) })

	require.NoError(t, e.SyncAll(context.Background()))

	assert.Equal(t, []string{"areas"}, synced)
	rows, _, err := ms.Read("products")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "p-stale", rows[0]["id"], "clean collection left as-is")
}

// TestSyncAllRespectsCollectionOrder: pending collections reconcile in
// the engine's fixed order regardless of write order.
func TestSyncAllRespectsCollectionOrder(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	mock.SetUser("u1", "i1")
	require.NoError(t, ms.Write("seasons", nil, true))
	require.NoError(t, ms.Write("areas", nil, true))
	require.NoError(t, ms.Write("machinery", nil, true))
	e := syncer.New(mock, ms)

	var synced []string
	e.OnCollectionSynced(func(col string) { synced = append(synced, col) })

	require.NoError(t, e.SyncAll(context.Background()))
	assert.Equal(t, []string{"areas", "seasons", "machinery"}, synced)
}
