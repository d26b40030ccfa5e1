package entities

import "time"

// Collection keys. They double as remote table names and as the keys the
// local mirror persists under, so offline rows can be replayed against the
// remote store without renaming anything.
const (
	CollectionAreas            = "areas"
	CollectionOperations       = "operations"
	CollectionProducts         = "products"
	CollectionSeasons          = "seasons"
	CollectionMachinery        = "machinery"
	CollectionMaintenanceTypes = "maintenance_types"
	CollectionMaintenances     = "maintenances"
)

// Row value extraction. Rows arrive either straight from a JSON decode
// (float64, string, []any) or from in-process callers (typed values),
// so every getter accepts both.

func rowStr(r map[string]any, k string) string {
	if v, ok := r[k].(string); ok {
		return v
	}
	return ""
}

func rowF64(r map[string]any, k string) float64 {
	switch v := r[k].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func rowF64Ptr(r map[string]any, k string) *float64 {
	if _, ok := r[k]; !ok || r[k] == nil {
		return nil
	}
	v := rowF64(r, k)
	return &v
}

func rowIntPtr(r map[string]any, k string) *int {
	if _, ok := r[k]; !ok || r[k] == nil {
		return nil
	}
	v := int(rowF64(r, k))
	return &v
}

func rowTime(r map[string]any, k string) time.Time {
	switch v := r[k].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func rowTimePtr(r map[string]any, k string) *time.Time {
	if _, ok := r[k]; !ok || r[k] == nil {
		return nil
	}
	t := rowTime(r, k)
	if t.IsZero() {
		return nil
	}
	return &t
}

func wireTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func wireTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return wireTime(*t)
}
