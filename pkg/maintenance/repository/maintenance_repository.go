package repository

import (
	"context"
	"time"

	"agro/entities"
)

type MaintenanceRepository interface {
	List(ctx context.Context) ([]entities.Maintenance, error)
	ListByMachinery(ctx context.Context, machineryID string) ([]entities.Maintenance, error)
	Get(ctx context.Context, id string) (entities.Maintenance, error)
	Create(ctx context.Context, m entities.Maintenance) (entities.Maintenance, error)
	Update(ctx context.Context, id string, p MaintenancePatch) (entities.Maintenance, error)
	Delete(ctx context.Context, id string) error
}

type MaintenancePatch struct {
	MachineryID       *string    `json:"machinery_id"`
	MaintenanceTypeID *string    `json:"maintenance_type_id"`
	Description       *string    `json:"description"`
	MaterialUsed      *string    `json:"material_used"`
	Date              *time.Time `json:"date"`
	MachineHours      *float64   `json:"machine_hours"`
	Cost              *float64   `json:"cost"`
	Notes             *string    `json:"notes"`
}

func (p MaintenancePatch) Apply(m *entities.Maintenance) {
	if p.MachineryID != nil {
		m.MachineryID = *p.MachineryID
	}
	if p.MaintenanceTypeID != nil {
		m.MaintenanceTypeID = *p.MaintenanceTypeID
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.MaterialUsed != nil {
		m.MaterialUsed = *p.MaterialUsed
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.MachineHours != nil {
		m.MachineHours = p.MachineHours
	}
	if p.Cost != nil {
		m.Cost = *p.Cost
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
}
