package repository

import (
	"context"

	"agro/entities"
)

type AreaRepository interface {
	List(ctx context.Context) ([]entities.Area, error)
	Get(ctx context.Context, id string) (entities.Area, error)
	Create(ctx context.Context, a entities.Area) (entities.Area, error)
	Update(ctx context.Context, id string, p AreaPatch) (entities.Area, error)
	Delete(ctx context.Context, id string) error
}

type AreaPatch struct {
	Name        *string  `json:"name"`
	Size        *float64 `json:"size"`
	Unit        *string  `json:"unit"`
	Location    *string  `json:"location"`
	Description *string  `json:"description"`
	CurrentCrop *string  `json:"current_crop"`
	Cultivar    *string  `json:"cultivar"`
}

func (p AreaPatch) Apply(a *entities.Area) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Size != nil {
		a.Size = *p.Size
	}
	if p.Unit != nil {
		a.Unit = *p.Unit
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.CurrentCrop != nil {
		a.CurrentCrop = *p.CurrentCrop
	}
	if p.Cultivar != nil {
		a.Cultivar = *p.Cultivar
	}
}
