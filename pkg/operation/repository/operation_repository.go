package repository

import (
	"context"
	"time"

	"agro/entities"
)

type OperationRepository interface {
	// List returns operations scoped to the currently active season.
	// Operations of other seasons stay mirrored but are not returned.
	List(ctx context.Context) ([]entities.Operation, error)
	ListAll(ctx context.Context) ([]entities.Operation, error)
	Get(ctx context.Context, id string) (entities.Operation, error)
	Create(ctx context.Context, o entities.Operation) (entities.Operation, error)
	Update(ctx context.Context, id string, p OperationPatch) (entities.Operation, error)
	Delete(ctx context.Context, id string) error
}

type OperationPatch struct {
	AreaID          *string                  `json:"area_id"`
	Type            *string                  `json:"type"`
	StartDate       *time.Time               `json:"start_date"`
	EndDate         *time.Time               `json:"end_date"`
	NextPlannedDate *time.Time               `json:"next_planned_date"`
	Description     *string                  `json:"description"`
	OperatorName    *string                  `json:"operator_name"`
	Products        *[]entities.ProductUsage `json:"products"`
	OperationSize   *float64                 `json:"operation_size"`
	YieldPerHectare *float64                 `json:"yield_per_hectare"`
	SeedsPerHectare *float64                 `json:"seeds_per_hectare"`
	Notes           *string                  `json:"notes"`
}

func (p OperationPatch) Apply(o *entities.Operation) {
	if p.AreaID != nil {
		o.AreaID = *p.AreaID
	}
	if p.Type != nil {
		o.Type = *p.Type
	}
	if p.StartDate != nil {
		o.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		o.EndDate = p.EndDate
	}
	if p.NextPlannedDate != nil {
		o.NextPlannedDate = p.NextPlannedDate
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.OperatorName != nil {
		o.OperatorName = *p.OperatorName
	}
	if p.Products != nil {
		o.Products = *p.Products
	}
	if p.OperationSize != nil {
		o.OperationSize = *p.OperationSize
	}
	if p.YieldPerHectare != nil {
		o.YieldPerHectare = p.YieldPerHectare
	}
	if p.SeedsPerHectare != nil {
		o.SeedsPerHectare = p.SeedsPerHectare
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
}
