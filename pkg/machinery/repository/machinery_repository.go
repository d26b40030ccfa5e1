package repository

import (
	"context"

	"agro/entities"
)

type MachineryRepository interface {
	List(ctx context.Context) ([]entities.Machinery, error)
	Get(ctx context.Context, id string) (entities.Machinery, error)
	Create(ctx context.Context, m entities.Machinery) (entities.Machinery, error)
	Update(ctx context.Context, id string, p MachineryPatch) (entities.Machinery, error)
	Delete(ctx context.Context, id string) error
}

type MachineryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Model       *string `json:"model"`
	Year        *int    `json:"year"`
}

func (p MachineryPatch) Apply(m *entities.Machinery) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Model != nil {
		m.Model = *p.Model
	}
	if p.Year != nil {
		m.Year = p.Year
	}
}
