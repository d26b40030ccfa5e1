package entities

import "time"

type Machinery struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Model         string    `json:"model"`
	Year          *int      `json:"year"`
	OwnerID       string    `json:"owner_id"`
	InstitutionID string    `json:"institution_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (m Machinery) Row() map[string]any {
	return map[string]any{
		"id":             m.ID,
		"name":           m.Name,
		"description":    m.Description,
		"model":          m.Model,
		"year":           m.Year,
		"owner_id":       m.OwnerID,
		"institution_id": m.InstitutionID,
		"created_at":     wireTime(m.CreatedAt),
		"updated_at":     wireTime(m.UpdatedAt),
	}
}

func MachineryFromRow(r map[string]any) Machinery {
	return Machinery{
		ID:            rowStr(r, "id"),
		Name:          rowStr(r, "name"),
		Description:   rowStr(r, "description"),
		Model:         rowStr(r, "model"),
		Year:          rowIntPtr(r, "year"),
		OwnerID:       rowStr(r, "owner_id"),
		InstitutionID: rowStr(r, "institution_id"),
		CreatedAt:     rowTime(r, "created_at"),
		UpdatedAt:     rowTime(r, "updated_at"),
	}
}
