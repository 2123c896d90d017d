package ledger

import (
	"testing"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")
	if _, err := f.registry.ConfigurePlatform("Main", "Zomato", 25, 10); err != nil {
		t.Fatalf("configure: %v", err)
	}
	f.mustStock(t, "Main", "Flour", 10, UnitKilogram, 100)
	f.mustRecipe(t, "Bread", map[string]float64{"Flour": 2})
	if err := f.catalog.SetPrice("Bread", 50); err != nil {
		t.Fatalf("price: %v", err)
	}
	sale, err := f.settlement.RecordSale(SaleInput{Outlet: "Main", Dish: "Bread", Price: 50})
	if err != nil {
		t.Fatalf("sale: %v", err)
	}
	if _, err := f.expenses.Record("Main", ExpenseRent, 100, date(2025, 1, 1), ""); err != nil {
		t.Fatalf("expense: %v", err)
	}

	snap := f.store.Snapshot()

	g := newFixture(Options{})
	g.store.Restore(snap)

	if got := len(g.registry.List()); got != 1 {
		t.Errorf("outlets = %d, want 1", got)
	}
	platforms, err := g.registry.Platforms("Main")
	if err != nil || len(platforms) != 2 {
		t.Errorf("platforms = %v (%v), want Direct + Zomato", platforms, err)
	}
	if got := g.inventory.Available("Main", "Flour"); !almostEqual(got, 8) {
		t.Errorf("flour = %v, want 8", got)
	}
	if p, ok := g.catalog.Price("Bread"); !ok || p != 50 {
		t.Errorf("price = %v/%v, want 50", p, ok)
	}
	sales := g.settlement.List("Main", zeroTime, zeroTime)
	if len(sales) != 1 || !almostEqual(sales[0].NetProfit, sale.NetProfit) {
		t.Errorf("sales = %+v, want the settled record back", sales)
	}

	// Ids stay monotonic across a restore: new records never reuse an id.
	l, err := g.inventory.AddStock("Main", "Sugar", 5, UnitKilogram, 50)
	if err != nil {
		t.Fatalf("add stock: %v", err)
	}
	if l.ID <= sale.ID {
		t.Errorf("new id %d not beyond restored ids (last sale %d)", l.ID, sale.ID)
	}
}
