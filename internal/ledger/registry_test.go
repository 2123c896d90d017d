package ledger

import (
	"errors"
	"testing"
)

func TestRegisterCreatesDirectPlatform(t *testing.T) {
	f := newFixture(Options{})
	o, err := f.registry.Register("Main")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(o.Platforms) != 1 || o.Platforms[0].Name != DirectPlatform {
		t.Fatalf("platforms = %+v, want a single Direct entry", o.Platforms)
	}
	if o.Platforms[0].CommissionPercent != 0 || o.Platforms[0].DeliveryFee != 0 {
		t.Errorf("Direct must be zero-fee, got %+v", o.Platforms[0])
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")

	if _, err := f.registry.Register("Main"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate register = %v, want ErrDuplicate", err)
	}
	if _, err := f.registry.Register("  "); !errors.Is(err, ErrValidation) {
		t.Errorf("blank register = %v, want ErrValidation", err)
	}
}

func TestRemoveOutlet(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")

	if err := f.registry.Remove("Main"); !errors.Is(err, ErrLastOutlet) {
		t.Errorf("removing last outlet = %v, want ErrLastOutlet", err)
	}

	f.mustOutlet(t, "Branch")
	f.mustStock(t, "Branch", "Flour", 10, UnitKilogram, 100)

	if err := f.registry.Remove("Branch"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := f.registry.Remove("Branch"); !errors.Is(err, ErrUnknownOutlet) {
		t.Errorf("second remove = %v, want ErrUnknownOutlet", err)
	}

	// Removal only shrinks the active set; the stock rows stay queryable
	// under the historical name.
	if got := len(f.inventory.List("Branch")); got != 1 {
		t.Errorf("orphaned stock lines = %d, want 1", got)
	}
	if got := len(f.registry.List()); got != 1 {
		t.Errorf("active outlets = %d, want 1", got)
	}
}

func TestRenameCascadesToAllRecords(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Old Name")
	f.mustStock(t, "Old Name", "Flour", 10, UnitKilogram, 100)
	f.mustRecipe(t, "Bread", map[string]float64{"Flour": 2})
	if _, err := f.settlement.RecordSale(SaleInput{Outlet: "Old Name", Dish: "Bread", Price: 50}); err != nil {
		t.Fatalf("record sale: %v", err)
	}
	if _, err := f.expenses.Record("Old Name", ExpenseRent, 100, date(2025, 1, 5), ""); err != nil {
		t.Fatalf("record expense: %v", err)
	}

	if err := f.registry.Rename("Old Name", "New Name"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	if got := len(f.inventory.List("New Name")); got != 1 {
		t.Errorf("stock under new name = %d, want 1", got)
	}
	if got := len(f.settlement.List("New Name", zeroTime, zeroTime)); got != 1 {
		t.Errorf("sales under new name = %d, want 1", got)
	}
	if got := len(f.expenses.List("New Name", zeroTime, zeroTime)); got != 1 {
		t.Errorf("expenses under new name = %d, want 1", got)
	}
	if got := len(f.inventory.List("Old Name")); got != 0 {
		t.Errorf("stock still under old name = %d, want 0", got)
	}

	// Renaming back restores the original name on every record.
	if err := f.registry.Rename("New Name", "Old Name"); err != nil {
		t.Fatalf("rename back: %v", err)
	}
	if got := len(f.inventory.List("Old Name")); got != 1 {
		t.Errorf("stock after round trip = %d, want 1", got)
	}
	if got := len(f.settlement.List("Old Name", zeroTime, zeroTime)); got != 1 {
		t.Errorf("sales after round trip = %d, want 1", got)
	}
	if got := len(f.expenses.List("Old Name", zeroTime, zeroTime)); got != 1 {
		t.Errorf("expenses after round trip = %d, want 1", got)
	}
}

func TestRenameValidation(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")
	f.mustOutlet(t, "Branch")

	if err := f.registry.Rename("Ghost", "X"); !errors.Is(err, ErrUnknownOutlet) {
		t.Errorf("rename unknown = %v, want ErrUnknownOutlet", err)
	}
	if err := f.registry.Rename("Main", "Branch"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("rename onto existing = %v, want ErrDuplicate", err)
	}
	if err := f.registry.Rename("Main", "Main"); err != nil {
		t.Errorf("no-op rename = %v, want nil", err)
	}
}

func TestConfigurePlatform(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")

	pc, err := f.registry.ConfigurePlatform("Main", "Zomato", 25, 10)
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if pc.CommissionPercent != 25 || pc.DeliveryFee != 10 {
		t.Errorf("config = %+v", pc)
	}

	// Upsert: last write wins.
	if _, err := f.registry.ConfigurePlatform("Main", "Zomato", 30, 12); err != nil {
		t.Fatalf("reconfigure: %v", err)
	}
	platforms, err := f.registry.Platforms("Main")
	if err != nil {
		t.Fatalf("platforms: %v", err)
	}
	if len(platforms) != 2 { // Direct + Zomato
		t.Fatalf("platforms = %d, want 2", len(platforms))
	}
	for _, p := range platforms {
		if p.Name == "Zomato" && (p.CommissionPercent != 30 || p.DeliveryFee != 12) {
			t.Errorf("upsert did not overwrite: %+v", p)
		}
	}

	if _, err := f.registry.ConfigurePlatform("Ghost", "Zomato", 25, 10); !errors.Is(err, ErrUnknownOutlet) {
		t.Errorf("unknown outlet = %v, want ErrUnknownOutlet", err)
	}
	if _, err := f.registry.ConfigurePlatform("Main", "Zomato", 120, 10); !errors.Is(err, ErrValidation) {
		t.Errorf("commission 120 = %v, want ErrValidation", err)
	}
	if _, err := f.registry.ConfigurePlatform("Main", "Zomato", 25, -1); !errors.Is(err, ErrValidation) {
		t.Errorf("negative delivery = %v, want ErrValidation", err)
	}
}
