package remote

import (
	"context"
	"errors"
	"fmt"
)

// Row is one record in wire shape: snake_case keys, RFC3339 time strings.
type Row = map[string]any

// Filter is a set of equality conditions on columns.
type Filter map[string]any

var (
	ErrNoSession     = errors.New("remote: no authenticated session")
	ErrNoInstitution = errors.New("remote: user has no institution")
	ErrNotFound      = errors.New("remote: row not found")
)

// Client is the generic query/mutation surface over named remote tables.
// Server-side business rules stay behind Call; the core never reimplements
// them.
type Client interface {
	Query(ctx context.Context, table string, filter Filter, order string) ([]Row, error)
	Insert(ctx context.Context, table string, row Row) (Row, error)
	Update(ctx context.Context, table, id string, patch Row) (Row, error)
	Delete(ctx context.Context, table, id string) error
	Call(ctx context.Context, procedure string, args Row) (any, error)
	CurrentUser() (string, error)
}

// ActingContext is the user/institution pair resolved once per top-level
// call and threaded through repositories, ledger and reconciliation,
// instead of each of them re-reading ambient session state.
type ActingContext struct {
	UserID        string
	InstitutionID string
}

// ResolveContext looks up the acting user's institution membership.
func ResolveContext(ctx context.Context, c Client) (ActingContext, error) {
	uid, err := c.CurrentUser()
	if err != nil {
		return ActingContext{}, err
	}
	rows, err := c.Query(ctx, "institution_members", Filter{"user_id": uid}, "")
	if err != nil {
		return ActingContext{}, fmt.Errorf("resolve institution: %w", err)
	}
	if len(rows) == 0 {
		return ActingContext{}, ErrNoInstitution
	}
	inst, _ := rows[0]["institution_id"].(string)
	if inst == "" {
		return ActingContext{}, ErrNoInstitution
	}
	return ActingContext{UserID: uid, InstitutionID: inst}, nil
}
