package repositoryImp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agro/entities"
	"agro/pkg/connectivity"
	"agro/pkg/mirror"
	"agro/pkg/operation/repository"
	operationImp "agro/pkg/operation/repositoryImp"
	"agro/pkg/remote"
	seasonImp "agro/pkg/season/repositoryImp"
	"agro/pkg/stock"
	"agro/pkg/testutil"
)

type fixture struct {
	mirror  *mirror.Store
	mock    *remote.Mock
	monitor *connectivity.Monitor
	ops     repository.OperationRepository
}

func newFixture(t *testing.T, online bool) *fixture {
	t.Helper()
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	mock.SetUser("u1", "i1")
	mon := testutil.NewMonitor(t, online)
	ledger := stock.New(mock, ms, mon)
	seasons := seasonImp.New(mock, ms, mon)
	return &fixture{
		mirror:  ms,
		mock:    mock,
		monitor: mon,
		ops:     operationImp.New(mock, ms, mon, ledger, seasons),
	}
}

func (f *fixture) seedProduct(t *testing.T, id, name string, qty float64) {
	t.Helper()
	p := entities.Product{ID: id, Name: name, QuantityInStock: qty, InstitutionID: "i1"}
	rows, _, err := f.mirror.Read(entities.CollectionProducts)
	require.NoError(t, err)
	require.NoError(t, f.mirror.Write(entities.CollectionProducts, append(rows, p.Row()), false))
	f.mock.Seed(entities.CollectionProducts, p.Row())
}

func (f *fixture) productStock(t *testing.T, id string) float64 {
	t.Helper()
	rows, _, err := f.mirror.Read(entities.CollectionProducts)
	require.NoError(t, err)
	for _, r := range rows {
		if r["id"] == id {
			return entities.ProductFromRow(r).QuantityInStock
		}
	}
	t.Fatalf("product %s not mirrored", id)
	return 0
}

func usage(id string, qty float64) entities.ProductUsage {
	return entities.ProductUsage{ProductID: id, Quantity: qty}
}

// TestCreateUpdateDeleteKeepStockConsistent walks a spraying operation
// through its whole life: creating with 30 units of urea
// debits stock to 70, editing the usage to 50 lands stock at 50, and
// deleting the operation restores the full 100.
func TestCreateUpdateDeleteKeepStockConsistent(t *testing.T) {
	f := newFixture(t, false)
	f.seedProduct(t, "urea", "Urea", 100)

	op, err := f.ops.Create(context.Background(), entities.Operation{
		AreaID:        "a1",
		Type:          entities.OpHerbicide,
		StartDate:     time.Now().UTC(),
		OperationSize: 5,
		Products:      []entities.ProductUsage{usage("urea", 30)},
	})
	require.NoError(t, err)
	assert.Equal(t, 70.0, f.productStock(t, "urea"))

	newUsages := []entities.ProductUsage{usage("urea", 50)}
	_, err = f.ops.Update(context.Background(), op.ID, repository.OperationPatch{Products: &newUsages})
	require.NoError(t, err)
	assert.Equal(t, 50.0, f.productStock(t, "urea"))

	require.NoError(t, f.ops.Delete(context.Background(), op.ID))
	assert.Equal(t, 100.0, f.productStock(t, "urea"))

	all, err := f.ops.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

// TestCreateRejectedOnInsufficientStock: the operation is not persisted
// and no stock moves.
func TestCreateRejectedOnInsufficientStock(t *testing.T) {
	f := newFixture(t, false)
	f.seedProduct(t, "urea", "Urea", 10)

	_, err := f.ops.Create(context.Background(), entities.Operation{
		AreaID:        "a1",
		Type:          entities.OpHerbicide,
		OperationSize: 5,
		Products:      []entities.ProductUsage{usage("urea", 11)},
	})
	var short *stock.InsufficientStockError
	require.ErrorAs(t, err, &short)

	assert.Equal(t, 10.0, f.productStock(t, "urea"))
	all, lerr := f.ops.ListAll(context.Background())
	require.NoError(t, lerr)
	assert.Empty(t, all)
}

// TestUpdateFailedReserveRestoresStock: when the edited usage cannot be
// covered, the already-released old usage is re-reserved so stock ends
// where it started and the operation keeps its old products.
func TestUpdateFailedReserveRestoresStock(t *testing.T) {
	f := newFixture(t, false)
	f.seedProduct(t, "urea", "Urea", 100)

	op, err := f.ops.Create(context.Background(), entities.Operation{
		AreaID:        "a1",
		Type:          entities.OpHerbicide,
		OperationSize: 5,
		Products:      []entities.ProductUsage{usage("urea", 30)},
	})
	require.NoError(t, err)

	tooMuch := []entities.ProductUsage{usage("urea", 500)}
	_, err = f.ops.Update(context.Background(), op.ID, repository.OperationPatch{Products: &tooMuch})
	var short *stock.InsufficientStockError
	require.ErrorAs(t, err, &short)

	assert.Equal(t, 70.0, f.productStock(t, "urea"))
	cur, err := f.ops.Get(context.Background(), op.ID)
	require.NoError(t, err)
	assert.Equal(t, []entities.ProductUsage{usage("urea", 30)}, cur.Products)
}

// TestUpdateWithoutProductChangeMovesNoStock: patching unrelated fields
// leaves the ledger alone.
func TestUpdateWithoutProductChangeMovesNoStock(t *testing.T) {
	f := newFixture(t, false)
	f.seedProduct(t, "urea", "Urea", 100)

	op, err := f.ops.Create(context.Background(), entities.Operation{
		AreaID:        "a1",
		Type:          entities.OpHerbicide,
		OperationSize: 5,
		Products:      []entities.ProductUsage{usage("urea", 30)},
	})
	require.NoError(t, err)

	notes := "wind from the north"
	updated, err := f.ops.Update(context.Background(), op.ID, repository.OperationPatch{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "wind from the north", updated.Notes)
	assert.Equal(t, 70.0, f.productStock(t, "urea"))
}

// TestCreateOnlineDebitsRemoteStock: the debit and the operation insert
// both reach the remote store.
func TestCreateOnlineDebitsRemoteStock(t *testing.T) {
	f := newFixture(t, true)
	f.seedProduct(t, "urea", "Urea", 100)

	op, err := f.ops.Create(context.Background(), entities.Operation{
		AreaID:        "a1",
		Type:          entities.OpHerbicide,
		StartDate:     time.Now().UTC(),
		OperationSize: 5,
		Products:      []entities.ProductUsage{usage("urea", 30)},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, op.ID)

	for _, r := range f.mock.Rows(entities.CollectionProducts) {
		if r["id"] == "urea" {
			assert.Equal(t, 70.0, entities.ProductFromRow(r).QuantityInStock)
		}
	}
	require.Len(t, f.mock.Rows(entities.CollectionOperations), 1)
}

// TestCreateAdoptsActiveSeason: an operation created without a season is
// stamped with the active one.
func TestCreateAdoptsActiveSeason(t *testing.T) {
	f := newFixture(t, false)
	require.NoError(t, f.mirror.Write(entities.CollectionSeasons, []remote.Row{
		entities.Season{ID: "s1", Name: "Winter 25", Status: entities.SeasonCompleted}.Row(),
		entities.Season{ID: "s2", Name: "Summer 26", Status: entities.SeasonActive}.Row(),
	}, false))

	op, err := f.ops.Create(context.Background(), entities.Operation{
		AreaID: "a1", Type: entities.OpHarrowing, OperationSize: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "s2", op.SeasonID)
}

// TestListScopedToActiveSeason: List returns the active season's
// operations only; ListAll returns everything; with no active season
// List is empty.
func TestListScopedToActiveSeason(t *testing.T) {
	f := newFixture(t, false)
	require.NoError(t, f.mirror.Write(entities.CollectionSeasons, []remote.Row{
		entities.Season{ID: "s1", Status: entities.SeasonActive}.Row(),
		entities.Season{ID: "s2", Status: entities.SeasonPlanned}.Row(),
	}, false))
	require.NoError(t, f.mirror.Write(entities.CollectionOperations, []remote.Row{
		entities.Operation{ID: "op1", SeasonID: "s1", Type: entities.OpHarrowing}.Row(),
		entities.Operation{ID: "op2", SeasonID: "s2", Type: entities.OpHarrowing}.Row(),
	}, false))

	scoped, err := f.ops.List(context.Background())
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "op1", scoped[0].ID)

	all, err := f.ops.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, f.mirror.Write(entities.CollectionSeasons, []remote.Row{
		entities.Season{ID: "s1", Status: entities.SeasonCompleted}.Row(),
	}, false))
	scoped, err = f.ops.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, scoped)
}
