package remote

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ProcCall records one Call invocation for assertions.
type ProcCall struct {
	Procedure string
	Args      Row
}

// Mock is an in-memory Client for tests and for running without a backend.
// FailHook, when set, is consulted before every table operation and lets a
// test fail one specific record while the rest of a pass succeeds.
type Mock struct {
	mu       sync.Mutex
	tables   map[string][]Row
	userID   string
	Calls    []ProcCall
	FailHook func(op, table, id string) error
}

func NewMock() *Mock {
	return &Mock{tables: map[string][]Row{}}
}

// SetUser signs in uid and records its institution membership.
func (m *Mock) SetUser(uid, institutionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userID = uid
	m.tables["institution_members"] = append(m.tables["institution_members"], Row{
		"id": uuid.NewString(), "user_id": uid, "institution_id": institutionID,
	})
}

func (m *Mock) SignOut() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userID = ""
}

// Seed inserts rows verbatim, without assigning ids or timestamps.
func (m *Mock) Seed(table string, rows ...Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range rows {
		m.tables[table] = append(m.tables[table], cloneRow(r))
	}
}

// Rows returns a copy of a table's current content.
func (m *Mock) Rows(table string) []Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Row, 0, len(m.tables[table]))
	for _, r := range m.tables[table] {
		out = append(out, cloneRow(r))
	}
	return out
}

func (m *Mock) fail(op, table, id string) error {
	if m.FailHook == nil {
		return nil
	}
	return m.FailHook(op, table, id)
}

func (m *Mock) Query(ctx context.Context, table string, filter Filter, order string) ([]Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("query", table, ""); err != nil {
		return nil, err
	}
	var out []Row
	for _, r := range m.tables[table] {
		if rowMatches(r, filter) {
			out = append(out, cloneRow(r))
		}
	}
	return out, nil
}

func (m *Mock) Insert(ctx context.Context, table string, row Row) (Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("insert", table, rowID(row)); err != nil {
		return nil, err
	}
	r := cloneRow(row)
	if rowID(r) == "" {
		r["id"] = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if r["created_at"] == nil {
		r["created_at"] = now
	}
	r["updated_at"] = now
	m.tables[table] = append(m.tables[table], r)
	return cloneRow(r), nil
}

func (m *Mock) Update(ctx context.Context, table, id string, patch Row) (Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("update", table, id); err != nil {
		return nil, err
	}
	for _, r := range m.tables[table] {
		if rowID(r) == id {
			for k, v := range patch {
				if k == "id" {
					continue
				}
				r[k] = v
			}
			r["updated_at"] = time.Now().UTC().Format(time.RFC3339)
			return cloneRow(r), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Mock) Delete(ctx context.Context, table, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("delete", table, id); err != nil {
		return err
	}
	rows := m.tables[table]
	for i, r := range rows {
		if rowID(r) == id {
			m.tables[table] = append(rows[:i:i], rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Mock) Call(ctx context.Context, procedure string, args Row) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("call", procedure, ""); err != nil {
		return nil, err
	}
	m.Calls = append(m.Calls, ProcCall{Procedure: procedure, Args: cloneRow(args)})
	switch procedure {
	case "set_active_season":
		target, _ := args["season_id"].(string)
		inst, _ := args["institution_id"].(string)
		for _, r := range m.tables["seasons"] {
			if inst != "" && rowStr(r, "institution_id") != inst {
				continue
			}
			if rowID(r) == target {
				r["status"] = "active"
			} else if rowStr(r, "status") == "active" {
				r["status"] = "completed"
			}
		}
		return nil, nil
	case "institution_name_taken":
		name, _ := args["name"].(string)
		for _, r := range m.tables["institutions"] {
			if rowStr(r, "name") == name {
				return true, nil
			}
		}
		return false, nil
	}
	return nil, fmt.Errorf("remote: unknown procedure %q", procedure)
}

func (m *Mock) CurrentUser() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.userID == "" {
		return "", ErrNoSession
	}
	return m.userID, nil
}

func rowID(r Row) string {
	id, _ := r["id"].(string)
	return id
}

func rowStr(r Row, k string) string {
	s, _ := r[k].(string)
	return s
}

func rowMatches(r Row, f Filter) bool {
	for k, want := range f {
		if fmt.Sprint(r[k]) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func cloneRow(r Row) Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
