package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAreaRowRoundTrip verifies the wire codec is symmetric: a row
// produced by Row() decodes back to the identical entity. Reconciliation
// replays mirrored rows against the remote store, so this symmetry is a
// correctness requirement, not a convenience.
func TestAreaRowRoundTrip(t *testing.T) {
	a := Area{
		ID:            "a1",
		Name:          "North field",
		Size:          12.5,
		Unit:          UnitHectare,
		Location:      "back lot",
		CurrentCrop:   "soybean",
		Cultivar:      "BRS 284",
		CreatedBy:     "u1",
		InstitutionID: "i1",
		CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, a, AreaFromRow(a.Row()))
}

// TestOperationRowRoundTripThroughJSON verifies symmetry through a full
// JSON encode/decode, the shape rows take inside the persisted mirror.
func TestOperationRowRoundTripThroughJSON(t *testing.T) {
	dose := 1.5
	yield := 62.0
	end := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	o := Operation{
		ID:              "op1",
		AreaID:          "a1",
		SeasonID:        "s1",
		Type:            OpHarvest,
		StartDate:       time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         &end,
		OperatorName:    "J. Silva",
		Products:        []ProductUsage{{ProductID: "p1", Quantity: 30, Dose: &dose}},
		OperationSize:   8,
		YieldPerHectare: &yield,
		CreatedBy:       "u1",
		InstitutionID:   "i1",
		CreatedAt:       time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(o.Row())
	require.NoError(t, err)
	var row map[string]any
	require.NoError(t, json.Unmarshal(data, &row))

	assert.Equal(t, o, OperationFromRow(row))
}

// TestOperationValidate covers the form-layer rules the core re-checks.
func TestOperationValidate(t *testing.T) {
	area := Area{Name: "A", Size: 10}
	yield := 50.0

	tests := []struct {
		name string
		op   Operation
		ok   bool
	}{
		{"valid harvest", Operation{Type: OpHarvest, OperationSize: 5, YieldPerHectare: &yield}, true},
		{"zero size", Operation{Type: OpHarrowing, OperationSize: 0}, false},
		{"exceeds area", Operation{Type: OpHarrowing, OperationSize: 11}, false},
		{"harvest without yield", Operation{Type: OpHarvest, OperationSize: 5}, false},
		{"planting without seeds", Operation{Type: OpPlanting, OperationSize: 5}, false},
		{"non-positive usage", Operation{Type: OpHarrowing, OperationSize: 5,
			Products: []ProductUsage{{ProductID: "p1", Quantity: 0}}}, false},
		{"custom type", Operation{Type: "fence repair", OperationSize: 2}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.op.Validate(area)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

// TestProductLowStock verifies the threshold is inclusive.
func TestProductLowStock(t *testing.T) {
	assert.True(t, Product{QuantityInStock: 20, MinStockLevel: 20}.LowStock())
	assert.True(t, Product{QuantityInStock: 5, MinStockLevel: 20}.LowStock())
	assert.False(t, Product{QuantityInStock: 21, MinStockLevel: 20}.LowStock())
}
