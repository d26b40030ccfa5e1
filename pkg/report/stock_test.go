package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agro/entities"
)

func TestStockXLSX(t *testing.T) {
	f, err := StockXLSX([]entities.Product{
		{Name: "Urea", Category: "fertilizer", Unit: "kg", QuantityInStock: 100, MinStockLevel: 20, PricePerUnit: 2.5},
		{Name: "Seed", Category: "seed", Unit: "bag", QuantityInStock: 3, MinStockLevel: 10, PricePerUnit: 40},
	})
	require.NoError(t, err)

	get := func(cell string) string {
		v, err := f.GetCellValue("Stock", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Name", get("A1"))
	assert.Equal(t, "Urea", get("A2"))
	assert.Equal(t, "100", get("D2"))
	assert.Equal(t, "", get("F2"))
	assert.Equal(t, "250", get("H2"), "stock value is quantity times price")

	assert.Equal(t, "Seed", get("A3"))
	assert.Equal(t, "LOW", get("F3"))
	assert.Equal(t, "120", get("H3"))
}
