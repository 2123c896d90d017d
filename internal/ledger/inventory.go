package ledger

import (
	"fmt"
	"strings"
	"time"
)

// Inventory owns the stock line collection. The Settlement Engine may debit
// lines through the store but never creates or deletes them.
type Inventory struct {
	s *Store
}

func NewInventory(s *Store) *Inventory {
	return &Inventory{s: s}
}

// AddStock appends a new line for the purchase batch. Lines are never merged:
// buying the same item twice leaves two lines, and costing aggregates across
// them (see unitCost).
func (v *Inventory) AddStock(outlet, item string, quantity float64, unit Unit, totalCost float64) (StockLine, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return StockLine{}, fmt.Errorf("item name is required: %w", ErrValidation)
	}
	if quantity < 0 || totalCost < 0 {
		return StockLine{}, fmt.Errorf("quantity and total cost cannot be negative: %w", ErrValidation)
	}
	if _, err := ParseUnit(string(unit)); err != nil {
		return StockLine{}, err
	}

	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	if v.s.findOutlet(outlet) == nil {
		return StockLine{}, fmt.Errorf("outlet %q: %w", outlet, ErrUnknownOutlet)
	}

	l := &StockLine{
		ID:        v.s.allocID(),
		Outlet:    outlet,
		Item:      item,
		Quantity:  quantity,
		Unit:      unit,
		TotalCost: totalCost,
		CreatedAt: time.Now(),
	}
	v.s.stock = append(v.s.stock, l)
	return *l, nil
}

// UnitCost prices one unit of an item as the weighted average over every line
// of that (outlet, item) still holding stock. 0 when nothing is on hand.
func (v *Inventory) UnitCost(outlet, item string) float64 {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.unitCost(outlet, item)
}

// Available sums quantity on hand across all lines of (outlet, item).
func (v *Inventory) Available(outlet, item string) float64 {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.available(outlet, item)
}

// Debit consumes quantity from (outlet, item). It never fails on shortage —
// the overdraw lands as negative quantity on the last line. Callers that need
// a stock floor must pre-check Available themselves; the Settlement Engine is
// the only such call site in this codebase and always pre-checks.
func (v *Inventory) Debit(outlet, item string, quantity float64) error {
	if quantity < 0 {
		return fmt.Errorf("debit quantity cannot be negative: %w", ErrValidation)
	}
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.debit(outlet, item, quantity)
	return nil
}

// RemoveLine deletes a stock line by id.
func (v *Inventory) RemoveLine(id uint64) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	for i, l := range v.s.stock {
		if l.ID == id {
			v.s.stock = append(v.s.stock[:i], v.s.stock[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("stock line %d: %w", id, ErrNotFound)
}

// List returns the outlet's stock lines in insertion order.
func (v *Inventory) List(outlet string) []StockLine {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	out := make([]StockLine, 0)
	for _, l := range v.s.stock {
		if l.Outlet == outlet {
			out = append(out, *l)
		}
	}
	return out
}

// LowStock returns the outlet's lines whose quantity fell below the
// unit-dependent threshold. Pure read; call again to rescan.
func (v *Inventory) LowStock(outlet string) []StockLine {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	out := make([]StockLine, 0)
	for _, l := range v.s.stock {
		if l.Outlet == outlet && l.Quantity < l.Unit.LowStockThreshold() {
			out = append(out, *l)
		}
	}
	return out
}

// ---- locked internals, shared with the Settlement Engine ----

func (s *Store) unitCost(outlet, item string) float64 {
	var qty, cost float64
	for _, l := range s.stock {
		if l.Outlet == outlet && l.Item == item && l.Quantity > 0 {
			qty += l.Quantity
			cost += l.TotalCost
		}
	}
	if qty <= 0 {
		return 0
	}
	return cost / qty
}

func (s *Store) available(outlet, item string) float64 {
	var qty float64
	for _, l := range s.stock {
		if l.Outlet == outlet && l.Item == item {
			qty += l.Quantity
		}
	}
	return qty
}

// debit drains lines in insertion order. Each line's acquisition cost shrinks
// proportionally so its unit cost stays stable across debits. Caller holds mu.
func (s *Store) debit(outlet, item string, quantity float64) {
	remaining := quantity
	var last *StockLine
	for _, l := range s.stock {
		if l.Outlet != outlet || l.Item != item {
			continue
		}
		last = l
		if remaining <= 0 || l.Quantity <= 0 {
			continue
		}
		take := remaining
		if take > l.Quantity {
			take = l.Quantity
		}
		cost := l.UnitCost() * take
		l.Quantity -= take
		l.TotalCost -= cost
		if l.TotalCost < 0 {
			l.TotalCost = 0
		}
		remaining -= take
	}
	if remaining > 0 && last != nil {
		// overdraw: quantity goes negative on the last line, cost floors at 0
		last.Quantity -= remaining
		last.TotalCost = 0
	}
}
