package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agro/entities"
	"agro/pkg/connectivity"
	"agro/pkg/mirror"
	"agro/pkg/remote"
	"agro/pkg/stock"
	"agro/pkg/testutil"
)

func seedProducts(t *testing.T, ms *mirror.Store, mock *remote.Mock, products ...entities.Product) {
	t.Helper()
	rows := make([]remote.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, p.Row())
		mock.Seed(entities.CollectionProducts, p.Row())
	}
	require.NoError(t, ms.Write(entities.CollectionProducts, rows, false))
}

func mirrorStock(t *testing.T, ms *mirror.Store, id string) float64 {
	t.Helper()
	rows, _, err := ms.Read(entities.CollectionProducts)
	require.NoError(t, err)
	for _, r := range rows {
		if r["id"] == id {
			return entities.ProductFromRow(r).QuantityInStock
		}
	}
	t.Fatalf("product %s not in mirror", id)
	return 0
}

func remoteStock(t *testing.T, mock *remote.Mock, id string) float64 {
	t.Helper()
	for _, r := range mock.Rows(entities.CollectionProducts) {
		if r["id"] == id {
			return entities.ProductFromRow(r).QuantityInStock
		}
	}
	t.Fatalf("product %s not in remote", id)
	return 0
}

// TestReserveRejectsShortfallBeforeAnyMutation: with P1 at 10 and P2 at
// 5, reserving 3xP1 and 8xP2 fails naming only P2, and P1 stays at 10
// everywhere. The decision is all-or-nothing.
func TestReserveRejectsShortfallBeforeAnyMutation(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	mon := connectivity.New()
	seedProducts(t, ms, mock,
		entities.Product{ID: "p1", Name: "P1", QuantityInStock: 10},
		entities.Product{ID: "p2", Name: "P2", QuantityInStock: 5},
	)
	l := stock.New(mock, ms, mon)

	err := l.Reserve(context.Background(), []entities.ProductUsage{
		{ProductID: "p1", Quantity: 3},
		{ProductID: "p2", Quantity: 8},
	})

	var short *stock.InsufficientStockError
	require.ErrorAs(t, err, &short)
	require.Len(t, short.Shortfalls, 1)
	assert.Equal(t, "p2", short.Shortfalls[0].ProductID)
	assert.Equal(t, 5.0, short.Shortfalls[0].Available)
	assert.Equal(t, 8.0, short.Shortfalls[0].Required)

	assert.Equal(t, 10.0, mirrorStock(t, ms, "p1"))
	assert.Equal(t, 10.0, remoteStock(t, mock, "p1"))
	assert.Equal(t, 5.0, mirrorStock(t, ms, "p2"))
}

// TestReserveNamesEveryShortProduct: the error enumerates all
// insufficient products, including ones missing entirely.
func TestReserveNamesEveryShortProduct(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	seedProducts(t, ms, mock, entities.Product{ID: "p1", Name: "P1", QuantityInStock: 1})
	l := stock.New(mock, ms, connectivity.New())

	err := l.Reserve(context.Background(), []entities.ProductUsage{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "ghost", Quantity: 4},
	})

	var short *stock.InsufficientStockError
	require.ErrorAs(t, err, &short)
	require.Len(t, short.Shortfalls, 2)
	assert.Equal(t, "p1", short.Shortfalls[0].ProductID)
	assert.Equal(t, "ghost", short.Shortfalls[1].ProductID)
	assert.Equal(t, 0.0, short.Shortfalls[1].Available)
}

// TestReserveReleaseRoundTrip: release after reserve restores every
// product's pre-reserve stock, in the mirror and remotely.
func TestReserveReleaseRoundTrip(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	seedProducts(t, ms, mock,
		entities.Product{ID: "p1", Name: "Urea", QuantityInStock: 100},
		entities.Product{ID: "p2", Name: "Lime", QuantityInStock: 40},
	)
	l := stock.New(mock, ms, connectivity.New())
	usages := []entities.ProductUsage{
		{ProductID: "p1", Quantity: 30},
		{ProductID: "p2", Quantity: 12.5},
	}

	require.NoError(t, l.Reserve(context.Background(), usages))
	assert.Equal(t, 70.0, mirrorStock(t, ms, "p1"))
	assert.Equal(t, 70.0, remoteStock(t, mock, "p1"))
	assert.Equal(t, 27.5, mirrorStock(t, ms, "p2"))

	require.NoError(t, l.Release(context.Background(), usages))
	assert.Equal(t, 100.0, mirrorStock(t, ms, "p1"))
	assert.Equal(t, 100.0, remoteStock(t, mock, "p1"))
	assert.Equal(t, 40.0, mirrorStock(t, ms, "p2"))
	assert.Equal(t, 40.0, remoteStock(t, mock, "p2"))
}

// TestOfflineReserveMarksProductsPending: offline debits touch only the
// mirror and flag the collection for reconciliation.
func TestOfflineReserveMarksProductsPending(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	mon := connectivity.New()
	seedProducts(t, ms, mock, entities.Product{ID: "p1", Name: "P1", QuantityInStock: 10})
	mon.SetOnline(false)
	l := stock.New(mock, ms, mon)

	require.NoError(t, l.Reserve(context.Background(), []entities.ProductUsage{{ProductID: "p1", Quantity: 4}}))

	assert.Equal(t, 6.0, mirrorStock(t, ms, "p1"))
	assert.Equal(t, 10.0, remoteStock(t, mock, "p1"), "remote untouched while offline")
	pending, err := ms.Pending(entities.CollectionProducts)
	require.NoError(t, err)
	assert.True(t, pending)
}

// TestReservePartialRemoteFailureSurfaces: when one product's remote
// update fails after another's succeeded, Reserve reports failure and
// the remote store may be left partially applied. There is no rollback;
// callers must reload products.
func TestReservePartialRemoteFailureSurfaces(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	seedProducts(t, ms, mock,
		entities.Product{ID: "p1", Name: "P1", QuantityInStock: 10},
		entities.Product{ID: "p2", Name: "P2", QuantityInStock: 10},
	)
	mock.FailHook = func(op, table, id string) error {
		if op == "update" && id == "p2" {
			return errors.New("gateway timeout")
		}
		return nil
	}
	l := stock.New(mock, ms, connectivity.New())

	err := l.Reserve(context.Background(), []entities.ProductUsage{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 1},
	})

	require.Error(t, err)
	var short *stock.InsufficientStockError
	assert.False(t, errors.As(err, &short), "a remote failure is not an insufficiency")
	assert.Equal(t, 10.0, remoteStock(t, mock, "p2"), "failed update left p2 untouched remotely")
}

// TestReleaseSkipsMissingProducts: releasing usages of a product that no
// longer exists credits the rest and succeeds.
func TestReleaseSkipsMissingProducts(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	seedProducts(t, ms, mock, entities.Product{ID: "p1", Name: "P1", QuantityInStock: 5})
	l := stock.New(mock, ms, connectivity.New())

	require.NoError(t, l.Release(context.Background(), []entities.ProductUsage{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "gone", Quantity: 9},
	}))
	assert.Equal(t, 7.0, mirrorStock(t, ms, "p1"))
}

// TestRepeatedUsageOfSameProductAggregates: two usages of one product in
// a single operation are summed before the sufficiency check.
func TestRepeatedUsageOfSameProductAggregates(t *testing.T) {
	ms := testutil.NewMirror(t)
	mock := remote.NewMock()
	seedProducts(t, ms, mock, entities.Product{ID: "p1", Name: "P1", QuantityInStock: 10})
	l := stock.New(mock, ms, connectivity.New())

	err := l.Reserve(context.Background(), []entities.ProductUsage{
		{ProductID: "p1", Quantity: 6},
		{ProductID: "p1", Quantity: 6},
	})
	var short *stock.InsufficientStockError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 12.0, short.Shortfalls[0].Required)
	assert.Equal(t, 10.0, mirrorStock(t, ms, "p1"))
}
