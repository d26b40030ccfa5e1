// Package stock applies and reverses the product-quantity deltas implied
// by an operation's product usage.
//
// The success/failure decision of Reserve is made before any mutation, so
// a rejected reservation leaves every product untouched. The per-product
// remote updates that follow a successful decision are issued concurrently
// and are independent: if one fails after another succeeded, the remote
// store is left partially applied and Reserve reports failure. There is no
// automatic rollback; callers must treat any Reserve error as "remote
// state may be inconsistent" and reload products.
package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"agro/entities"
	"agro/pkg/connectivity"
	"agro/pkg/mirror"
	"agro/pkg/remote"
)

// Shortfall names one product that cannot cover its requested quantity.
type Shortfall struct {
	ProductID string
	Name      string
	Available float64
	Required  float64
}

type InsufficientStockError struct {
	Shortfalls []Shortfall
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		name := s.Name
		if name == "" {
			name = s.ProductID
		}
		parts = append(parts, fmt.Sprintf("%s (available %v, required %v)", name, s.Available, s.Required))
	}
	return "insufficient stock: " + strings.Join(parts, ", ")
}

type Ledger struct {
	remote  remote.Client
	mirror  *mirror.Store
	monitor *connectivity.Monitor
	now     func() time.Time
}

func New(rc remote.Client, ms *mirror.Store, mon *connectivity.Monitor) *Ledger {
	return &Ledger{remote: rc, mirror: ms, monitor: mon, now: time.Now}
}

func (l *Ledger) SetNow(now func() time.Time) { l.now = now }

// Reserve debits every referenced product's stock by its usage quantity.
// All-or-nothing on the decision: a missing product or one short on stock
// rejects the whole call, enumerating every shortfall, before anything is
// mutated.
func (l *Ledger) Reserve(ctx context.Context, usages []entities.ProductUsage) error {
	if len(usages) == 0 {
		return nil
	}
	rows, pending, err := l.mirror.Read(entities.CollectionProducts)
	if err != nil {
		return err
	}
	byID := indexRows(rows)
	required := totalsByProduct(usages)

	var short []Shortfall
	for _, u := range orderedIDs(usages) {
		req := required[u]
		row, ok := byID[u]
		if !ok {
			short = append(short, Shortfall{ProductID: u, Required: req})
			continue
		}
		p := entities.ProductFromRow(row)
		if p.QuantityInStock < req {
			short = append(short, Shortfall{
				ProductID: u, Name: p.Name,
				Available: p.QuantityInStock, Required: req,
			})
		}
	}
	if len(short) > 0 {
		return &InsufficientStockError{Shortfalls: short}
	}

	return l.apply(ctx, rows, pending, byID, required, -1)
}

// Release credits the usages back. It cannot fail on capacity and is
// applied for every usage whose product still exists; unknown products
// are skipped.
func (l *Ledger) Release(ctx context.Context, usages []entities.ProductUsage) error {
	if len(usages) == 0 {
		return nil
	}
	rows, pending, err := l.mirror.Read(entities.CollectionProducts)
	if err != nil {
		return err
	}
	byID := indexRows(rows)
	deltas := totalsByProduct(usages)
	for id := range deltas {
		if _, ok := byID[id]; !ok {
			delete(deltas, id)
		}
	}
	return l.apply(ctx, rows, pending, byID, deltas, +1)
}

// apply mutates the mirror and pushes per-product remote updates. sign is
// -1 for a debit, +1 for a credit.
func (l *Ledger) apply(ctx context.Context, rows []remote.Row, pending bool, byID map[string]remote.Row, deltas map[string]float64, sign float64) error {
	now := l.now().UTC().Format(time.RFC3339)
	online := l.monitor.Online()

	type update struct {
		id  string
		qty float64
	}
	updates := make([]update, 0, len(deltas))
	for id, qty := range deltas {
		row := byID[id]
		newQty := entities.ProductFromRow(row).QuantityInStock + sign*qty
		row["quantity_in_stock"] = newQty
		row["updated_at"] = now
		updates = append(updates, update{id: id, qty: newQty})
	}
	if err := l.mirror.Write(entities.CollectionProducts, rows, pending || !online); err != nil {
		return err
	}
	if !online {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, u := range updates {
		u := u
		g.Go(func() error {
			_, err := l.remote.Update(gctx, entities.CollectionProducts, u.id, remote.Row{
				"quantity_in_stock": u.qty,
				"updated_at":        now,
			})
			if err != nil {
				return fmt.Errorf("product %s: %w", u.id, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("stock remote update failed (remote may be partially applied): %w", err)
	}
	return nil
}

func indexRows(rows []remote.Row) map[string]remote.Row {
	byID := make(map[string]remote.Row, len(rows))
	for _, r := range rows {
		if id, _ := r["id"].(string); id != "" {
			byID[id] = r
		}
	}
	return byID
}

func totalsByProduct(usages []entities.ProductUsage) map[string]float64 {
	totals := make(map[string]float64, len(usages))
	for _, u := range usages {
		totals[u.ProductID] += u.Quantity
	}
	return totals
}

// orderedIDs keeps shortfall reporting in usage order.
func orderedIDs(usages []entities.ProductUsage) []string {
	seen := make(map[string]bool, len(usages))
	var out []string
	for _, u := range usages {
		if !seen[u.ProductID] {
			seen[u.ProductID] = true
			out = append(out, u.ProductID)
		}
	}
	return out
}
