package entities

import "time"

type MaintenanceType struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	OwnerID       string    `json:"owner_id"`
	InstitutionID string    `json:"institution_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (t MaintenanceType) Row() map[string]any {
	return map[string]any{
		"id":             t.ID,
		"name":           t.Name,
		"description":    t.Description,
		"owner_id":       t.OwnerID,
		"institution_id": t.InstitutionID,
		"created_at":     wireTime(t.CreatedAt),
		"updated_at":     wireTime(t.UpdatedAt),
	}
}

func MaintenanceTypeFromRow(r map[string]any) MaintenanceType {
	return MaintenanceType{
		ID:            rowStr(r, "id"),
		Name:          rowStr(r, "name"),
		Description:   rowStr(r, "description"),
		OwnerID:       rowStr(r, "owner_id"),
		InstitutionID: rowStr(r, "institution_id"),
		CreatedAt:     rowTime(r, "created_at"),
		UpdatedAt:     rowTime(r, "updated_at"),
	}
}

type Maintenance struct {
	ID                string     `json:"id"`
	MachineryID       string     `json:"machinery_id"`
	MaintenanceTypeID string     `json:"maintenance_type_id"`
	Description       string     `json:"description"`
	MaterialUsed      string     `json:"material_used"`
	Date              time.Time  `json:"date"`
	MachineHours      *float64   `json:"machine_hours"`
	Cost              float64    `json:"cost"` // non-negative
	Notes             string     `json:"notes"`
	OwnerID           string     `json:"owner_id"`
	InstitutionID     string     `json:"institution_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (m Maintenance) Row() map[string]any {
	return map[string]any{
		"id":                  m.ID,
		"machinery_id":        m.MachineryID,
		"maintenance_type_id": m.MaintenanceTypeID,
		"description":         m.Description,
		"material_used":       m.MaterialUsed,
		"date":                wireTime(m.Date),
		"machine_hours":       m.MachineHours,
		"cost":                m.Cost,
		"notes":               m.Notes,
		"owner_id":            m.OwnerID,
		"institution_id":      m.InstitutionID,
		"created_at":          wireTime(m.CreatedAt),
		"updated_at":          wireTime(m.UpdatedAt),
	}
}

func MaintenanceFromRow(r map[string]any) Maintenance {
	return Maintenance{
		ID:                rowStr(r, "id"),
		MachineryID:       rowStr(r, "machinery_id"),
		MaintenanceTypeID: rowStr(r, "maintenance_type_id"),
		Description:       rowStr(r, "description"),
		MaterialUsed:      rowStr(r, "material_used"),
		Date:              rowTime(r, "date"),
		MachineHours:      rowF64Ptr(r, "machine_hours"),
		Cost:              rowF64(r, "cost"),
		Notes:             rowStr(r, "notes"),
		OwnerID:           rowStr(r, "owner_id"),
		InstitutionID:     rowStr(r, "institution_id"),
		CreatedAt:         rowTime(r, "created_at"),
		UpdatedAt:         rowTime(r, "updated_at"),
	}
}
