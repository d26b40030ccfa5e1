package repository

import (
	"context"

	"agro/entities"
)

type MaintenanceTypeRepository interface {
	List(ctx context.Context) ([]entities.MaintenanceType, error)
	Get(ctx context.Context, id string) (entities.MaintenanceType, error)
	Create(ctx context.Context, t entities.MaintenanceType) (entities.MaintenanceType, error)
	Update(ctx context.Context, id string, p MaintenanceTypePatch) (entities.MaintenanceType, error)
	Delete(ctx context.Context, id string) error
}

type MaintenanceTypePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (p MaintenanceTypePatch) Apply(t *entities.MaintenanceType) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
}
