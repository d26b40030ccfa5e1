package entities

import "time"

// Season status values. One season per institution is "active" by
// convention; the remote set_active_season procedure flips the others
// to completed.
const (
	SeasonPlanned   = "planned"
	SeasonActive    = "active"
	SeasonCompleted = "completed"
)

type Season struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Status        string     `json:"status"` // planned|active|completed
	Description   string     `json:"description"`
	CreatedBy     string     `json:"created_by"`
	InstitutionID string     `json:"institution_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (s Season) Row() map[string]any {
	return map[string]any{
		"id":             s.ID,
		"name":           s.Name,
		"start_date":     wireTime(s.StartDate),
		"end_date":       wireTimePtr(s.EndDate),
		"status":         s.Status,
		"description":    s.Description,
		"created_by":     s.CreatedBy,
		"institution_id": s.InstitutionID,
		"created_at":     wireTime(s.CreatedAt),
		"updated_at":     wireTime(s.UpdatedAt),
	}
}

func SeasonFromRow(r map[string]any) Season {
	return Season{
		ID:            rowStr(r, "id"),
		Name:          rowStr(r, "name"),
		StartDate:     rowTime(r, "start_date"),
		EndDate:       rowTimePtr(r, "end_date"),
		Status:        rowStr(r, "status"),
		Description:   rowStr(r, "description"),
		CreatedBy:     rowStr(r, "created_by"),
		InstitutionID: rowStr(r, "institution_id"),
		CreatedAt:     rowTime(r, "created_at"),
		UpdatedAt:     rowTime(r, "updated_at"),
	}
}
