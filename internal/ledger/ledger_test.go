package ledger

import (
	"math"
	"testing"
	"time"
)

type fixture struct {
	store      *Store
	registry   *Registry
	inventory  *Inventory
	catalog    *Catalog
	settlement *Settlement
	expenses   *Expenses
	reports    *Reports
}

func newFixture(opts Options) *fixture {
	s := NewStore(opts)
	return &fixture{
		store:      s,
		registry:   NewRegistry(s),
		inventory:  NewInventory(s),
		catalog:    NewCatalog(s),
		settlement: NewSettlement(s),
		expenses:   NewExpenses(s),
		reports:    NewReports(s),
	}
}

func (f *fixture) mustOutlet(t *testing.T, name string) {
	t.Helper()
	if _, err := f.registry.Register(name); err != nil {
		t.Fatalf("register outlet %s: %v", name, err)
	}
}

func (f *fixture) mustStock(t *testing.T, outlet, item string, qty float64, unit Unit, cost float64) StockLine {
	t.Helper()
	l, err := f.inventory.AddStock(outlet, item, qty, unit, cost)
	if err != nil {
		t.Fatalf("add stock %s: %v", item, err)
	}
	return l
}

func (f *fixture) mustRecipe(t *testing.T, dish string, ingredients map[string]float64) {
	t.Helper()
	if _, err := f.catalog.SaveRecipe(dish, ingredients); err != nil {
		t.Fatalf("save recipe %s: %v", dish, err)
	}
}

var zeroTime time.Time

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}
