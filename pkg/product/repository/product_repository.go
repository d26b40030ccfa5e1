package repository

import (
	"context"

	"agro/entities"
)

type ProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	Get(ctx context.Context, id string) (entities.Product, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, id string, p ProductPatch) (entities.Product, error)
	Delete(ctx context.Context, id string) error

	// LowStock lists products at or below their minimum stock level.
	LowStock(ctx context.Context) ([]entities.Product, error)
	// Refresh re-reads the collection from the remote store, discarding
	// the mirror content. Callers use it after a failed stock
	// reservation, when remote quantities may be partially applied.
	Refresh(ctx context.Context) ([]entities.Product, error)
}

type ProductPatch struct {
	Name            *string  `json:"name"`
	Category        *string  `json:"category"`
	Unit            *string  `json:"unit"`
	QuantityInStock *float64 `json:"quantity_in_stock"`
	MinStockLevel   *float64 `json:"min_stock_level"`
	PricePerUnit    *float64 `json:"price_per_unit"`
	Supplier        *string  `json:"supplier"`
	Description     *string  `json:"description"`
}

func (p ProductPatch) Apply(e *entities.Product) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Unit != nil {
		e.Unit = *p.Unit
	}
	if p.QuantityInStock != nil {
		e.QuantityInStock = *p.QuantityInStock
	}
	if p.MinStockLevel != nil {
		e.MinStockLevel = *p.MinStockLevel
	}
	if p.PricePerUnit != nil {
		e.PricePerUnit = *p.PricePerUnit
	}
	if p.Supplier != nil {
		e.Supplier = *p.Supplier
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
}
