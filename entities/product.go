package entities

import "time"

type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"` // fertilizer|herbicide|seed|... open
	Unit            string    `json:"unit"`     // kg, L, bag, ...
	QuantityInStock float64   `json:"quantity_in_stock"` // never negative
	MinStockLevel   float64   `json:"min_stock_level"`
	PricePerUnit    float64   `json:"price_per_unit"`
	Supplier        string    `json:"supplier"`
	Description     string    `json:"description"`
	CreatedBy       string    `json:"created_by"`
	InstitutionID   string    `json:"institution_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LowStock reports whether the product has reached its minimum level.
func (p Product) LowStock() bool { return p.QuantityInStock <= p.MinStockLevel }

func (p Product) Row() map[string]any {
	return map[string]any{
		"id":                p.ID,
		"name":              p.Name,
		"category":          p.Category,
		"unit":              p.Unit,
		"quantity_in_stock": p.QuantityInStock,
		"min_stock_level":   p.MinStockLevel,
		"price_per_unit":    p.PricePerUnit,
		"supplier":          p.Supplier,
		"description":       p.Description,
		"created_by":        p.CreatedBy,
		"institution_id":    p.InstitutionID,
		"created_at":        wireTime(p.CreatedAt),
		"updated_at":        wireTime(p.UpdatedAt),
	}
}

func ProductFromRow(r map[string]any) Product {
	return Product{
		ID:              rowStr(r, "id"),
		Name:            rowStr(r, "name"),
		Category:        rowStr(r, "category"),
		Unit:            rowStr(r, "unit"),
		QuantityInStock: rowF64(r, "quantity_in_stock"),
		MinStockLevel:   rowF64(r, "min_stock_level"),
		PricePerUnit:    rowF64(r, "price_per_unit"),
		Supplier:        rowStr(r, "supplier"),
		Description:     rowStr(r, "description"),
		CreatedBy:       rowStr(r, "created_by"),
		InstitutionID:   rowStr(r, "institution_id"),
		CreatedAt:       rowTime(r, "created_at"),
		UpdatedAt:       rowTime(r, "updated_at"),
	}
}
