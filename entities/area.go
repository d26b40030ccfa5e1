package entities

import "time"

// Area size units.
const (
	UnitHectare     = "hectare"
	UnitAcre        = "acre"
	UnitSquareMeter = "square_meter"
)

type Area struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Size          float64   `json:"size"` // in Unit, > 0
	Unit          string    `json:"unit"` // hectare|acre|square_meter
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	CurrentCrop   string    `json:"current_crop"`
	Cultivar      string    `json:"cultivar"`
	CreatedBy     string    `json:"created_by"`
	InstitutionID string    `json:"institution_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Row converts to the wire shape. AreaFromRow must invert it exactly:
// the reconciliation pass replays mirrored rows against the remote store
// as-is, so any asymmetry here corrupts replayed records.
func (a Area) Row() map[string]any {
	return map[string]any{
		"id":             a.ID,
		"name":           a.Name,
		"size":           a.Size,
		"unit":           a.Unit,
		"location":       a.Location,
		"description":    a.Description,
		"current_crop":   a.CurrentCrop,
		"cultivar":       a.Cultivar,
		"created_by":     a.CreatedBy,
		"institution_id": a.InstitutionID,
		"created_at":     wireTime(a.CreatedAt),
		"updated_at":     wireTime(a.UpdatedAt),
	}
}

func AreaFromRow(r map[string]any) Area {
	return Area{
		ID:            rowStr(r, "id"),
		Name:          rowStr(r, "name"),
		Size:          rowF64(r, "size"),
		Unit:          rowStr(r, "unit"),
		Location:      rowStr(r, "location"),
		Description:   rowStr(r, "description"),
		CurrentCrop:   rowStr(r, "current_crop"),
		Cultivar:      rowStr(r, "cultivar"),
		CreatedBy:     rowStr(r, "created_by"),
		InstitutionID: rowStr(r, "institution_id"),
		CreatedAt:     rowTime(r, "created_at"),
		UpdatedAt:     rowTime(r, "updated_at"),
	}
}
