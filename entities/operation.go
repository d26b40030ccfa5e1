package entities

import (
	"fmt"
	"time"
)

// Common operation types. The field is an open string; custom types pass
// through untouched.
const (
	OpHarrowing   = "harrowing"
	OpSubsoiling  = "subsoiling"
	OpPlanting    = "planting"
	OpHarvest     = "harvest"
	OpDesiccation = "desiccation"
	OpHerbicide   = "herbicide"
	OpFungicide   = "fungicide"
)

// ProductUsage ties a consumed product to an operation.
type ProductUsage struct {
	ProductID string   `json:"product_id"`
	Quantity  float64  `json:"quantity"`
	Dose      *float64 `json:"dose"` // per-hectare dose, optional
}

type Operation struct {
	ID              string         `json:"id"`
	AreaID          string         `json:"area_id"`
	SeasonID        string         `json:"season_id"`
	Type            string         `json:"type"`
	StartDate       time.Time      `json:"start_date"`
	EndDate         *time.Time     `json:"end_date"`
	NextPlannedDate *time.Time     `json:"next_planned_date"`
	Description     string         `json:"description"`
	OperatorName    string         `json:"operator_name"`
	Products        []ProductUsage `json:"products"`
	OperationSize   float64        `json:"operation_size"` // applied area, <= Area.Size
	YieldPerHectare *float64       `json:"yield_per_hectare"`
	SeedsPerHectare *float64       `json:"seeds_per_hectare"`
	Notes           string         `json:"notes"`
	CreatedBy       string         `json:"created_by"`
	InstitutionID   string         `json:"institution_id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Validate enforces the form-layer rules so offline-created operations do
// not replay invalid data later.
func (o Operation) Validate(area Area) error {
	if o.OperationSize <= 0 {
		return fmt.Errorf("operation size must be positive, got %v", o.OperationSize)
	}
	if o.OperationSize > area.Size {
		return fmt.Errorf("operation size %v exceeds area %q size %v", o.OperationSize, area.Name, area.Size)
	}
	if o.Type == OpHarvest && o.YieldPerHectare == nil {
		return fmt.Errorf("harvest operation requires yield per hectare")
	}
	if o.Type == OpPlanting && o.SeedsPerHectare == nil {
		return fmt.Errorf("planting operation requires seeds per hectare")
	}
	for _, u := range o.Products {
		if u.Quantity <= 0 {
			return fmt.Errorf("product %s: usage quantity must be positive", u.ProductID)
		}
	}
	return nil
}

func (u ProductUsage) row() map[string]any {
	return map[string]any{
		"product_id": u.ProductID,
		"quantity":   u.Quantity,
		"dose":       u.Dose,
	}
}

func usagesFromRow(r map[string]any, k string) []ProductUsage {
	var out []ProductUsage
	switch list := r[k].(type) {
	case []map[string]any:
		for _, m := range list {
			out = append(out, usageFrom(m))
		}
	case []any:
		for _, v := range list {
			if m, ok := v.(map[string]any); ok {
				out = append(out, usageFrom(m))
			}
		}
	}
	return out
}

func usageFrom(m map[string]any) ProductUsage {
	return ProductUsage{
		ProductID: rowStr(m, "product_id"),
		Quantity:  rowF64(m, "quantity"),
		Dose:      rowF64Ptr(m, "dose"),
	}
}

func (o Operation) Row() map[string]any {
	products := make([]map[string]any, 0, len(o.Products))
	for _, u := range o.Products {
		products = append(products, u.row())
	}
	return map[string]any{
		"id":                o.ID,
		"area_id":           o.AreaID,
		"season_id":         o.SeasonID,
		"type":              o.Type,
		"start_date":        wireTime(o.StartDate),
		"end_date":          wireTimePtr(o.EndDate),
		"next_planned_date": wireTimePtr(o.NextPlannedDate),
		"description":       o.Description,
		"operator_name":     o.OperatorName,
		"products":          products,
		"operation_size":    o.OperationSize,
		"yield_per_hectare": o.YieldPerHectare,
		"seeds_per_hectare": o.SeedsPerHectare,
		"notes":             o.Notes,
		"created_by":        o.CreatedBy,
		"institution_id":    o.InstitutionID,
		"created_at":        wireTime(o.CreatedAt),
		"updated_at":        wireTime(o.UpdatedAt),
	}
}

func OperationFromRow(r map[string]any) Operation {
	return Operation{
		ID:              rowStr(r, "id"),
		AreaID:          rowStr(r, "area_id"),
		SeasonID:        rowStr(r, "season_id"),
		Type:            rowStr(r, "type"),
		StartDate:       rowTime(r, "start_date"),
		EndDate:         rowTimePtr(r, "end_date"),
		NextPlannedDate: rowTimePtr(r, "next_planned_date"),
		Description:     rowStr(r, "description"),
		OperatorName:    rowStr(r, "operator_name"),
		Products:        usagesFromRow(r, "products"),
		OperationSize:   rowF64(r, "operation_size"),
		YieldPerHectare: rowF64Ptr(r, "yield_per_hectare"),
		SeedsPerHectare: rowF64Ptr(r, "seeds_per_hectare"),
		Notes:           rowStr(r, "notes"),
		CreatedBy:       rowStr(r, "created_by"),
		InstitutionID:   rowStr(r, "institution_id"),
		CreatedAt:       rowTime(r, "created_at"),
		UpdatedAt:       rowTime(r, "updated_at"),
	}
}
