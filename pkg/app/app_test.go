package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agro/entities"
	"agro/pkg/app"
	"agro/pkg/remote"
	"agro/pkg/testutil"
)

// TestOfflineCreateThenReconnectDrainsPending is the core offline-first
// flow: work offline, come back online, and the engine replays the
// writes without an explicit sync call.
func TestOfflineCreateThenReconnectDrainsPending(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	mock.SetUser("u1", "i1")
	mon := testutil.NewMonitor(t, false)
	a := app.New(mock, ms, mon)

	_, err := a.Areas.Create(context.Background(), entities.Area{Name: "North", Size: 12})
	require.NoError(t, err)
	pending, err := a.HasPendingSync()
	require.NoError(t, err)
	assert.True(t, pending)
	assert.False(t, a.IsOnline())

	mon.SetOnline(true)

	require.Eventually(t, func() bool {
		p, err := a.HasPendingSync()
		return err == nil && !p
	}, 2*time.Second, 10*time.Millisecond)
	require.Len(t, mock.Rows(entities.CollectionAreas), 1)
	assert.Equal(t, "North", mock.Rows(entities.CollectionAreas)[0]["name"])
}

// TestSyncDataSingleFlight: a pass arriving while one is running returns
// immediately instead of interleaving.
func TestSyncDataSingleFlight(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	mock.SetUser("u1", "i1")
	require.NoError(t, ms.Write(entities.CollectionAreas, nil, true))
	a := app.New(mock, ms, testutil.NewMonitor(t, true))

	release := make(chan struct{})
	entered := make(chan struct{})
	mock.FailHook = func(op, table, id string) error {
		if op == "query" && table == entities.CollectionAreas {
			close(entered)
			<-release
		}
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- a.SyncData(context.Background()) }()
	<-entered

	// Second caller sees the in-flight pass and backs off.
	require.NoError(t, a.SyncData(context.Background()))
	pending, err := a.HasPendingSync()
	require.NoError(t, err)
	assert.True(t, pending, "second call did not run a pass of its own")

	close(release)
	require.NoError(t, <-done)
	pending, err = a.HasPendingSync()
	require.NoError(t, err)
	assert.False(t, pending)
}

// TestPendingCollectionsListsFlaggedOnly.
func TestPendingCollectionsListsFlaggedOnly(t *testing.T) {
	ms := testutil.NewMirror(t)
	require.NoError(t, ms.Write(entities.CollectionAreas, nil, true))
	require.NoError(t, ms.Write(entities.CollectionProducts, nil, false))
	a := app.New(remote.NewMock(), ms, testutil.NewMonitor(t, false))

	cols, err := a.PendingCollections()
	require.NoError(t, err)
	assert.Equal(t, []string{entities.CollectionAreas}, cols)
}

// TestSyncDataPropagatesAbort: without a session the pass fails and the
// pending flags survive.
func TestSyncDataPropagatesAbort(t *testing.T) {
	ms := testutil.NewMirror(t)
	require.NoError(t, ms.Write(entities.CollectionAreas, nil, true))
	a := app.New(remote.NewMock(), ms, testutil.NewMonitor(t, true))

	err := a.SyncData(context.Background())
	assert.ErrorIs(t, err, remote.ErrNoSession)
	pending, perr := a.HasPendingSync()
	require.NoError(t, perr)
	assert.True(t, pending)
}
