package ledger

import (
	"testing"
	"time"
)

func TestMonthBucketJoinsSalesAndExpenses(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")
	f.mustStock(t, "Main", "Flour", 10, UnitKilogram, 100)
	f.mustRecipe(t, "Bread", map[string]float64{"Flour": 2})

	if _, err := f.settlement.RecordSale(SaleInput{Outlet: "Main", Dish: "Bread", Price: 50, Date: date(2025, 3, 10)}); err != nil {
		t.Fatalf("record sale: %v", err)
	}
	if _, err := f.expenses.Record("Main", ExpenseRent, 100, date(2025, 3, 1), ""); err != nil {
		t.Fatalf("expense: %v", err)
	}
	if _, err := f.expenses.Record("Main", ExpenseElectricity, 200, date(2025, 3, 20), ""); err != nil {
		t.Fatalf("expense: %v", err)
	}

	stats, err := f.reports.Summarize("Main", ByMonth, zeroTime, zeroTime)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("periods = %d, want 1", len(stats))
	}
	b := stats[0]
	if b.Period != "2025-03" {
		t.Errorf("period = %q, want 2025-03", b.Period)
	}
	if !almostEqual(b.NetProfit, 30) {
		t.Errorf("net profit = %v, want 30", b.NetProfit)
	}
	if !almostEqual(b.Expenses, 300) {
		t.Errorf("expenses = %v, want 300", b.Expenses)
	}
	if !almostEqual(b.FinalProfit, -270) {
		t.Errorf("final profit = %v, want -270", b.FinalProfit)
	}
}

// No record may be dropped or double-counted across bucket boundaries.
func TestAggregationCompleteness(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")
	f.mustStock(t, "Main", "Flour", 1000, UnitKilogram, 10000)
	f.mustRecipe(t, "Bread", map[string]float64{"Flour": 2})

	dates := []time.Time{
		date(2024, 12, 31), date(2025, 1, 1), date(2025, 1, 31),
		date(2025, 2, 1), date(2025, 2, 28), date(2025, 6, 15),
	}
	var wantRevenue float64
	for i, d := range dates {
		price := float64(40 + i)
		sale, err := f.settlement.RecordSale(SaleInput{Outlet: "Main", Dish: "Bread", Price: price, Date: d})
		if err != nil {
			t.Fatalf("sale %d: %v", i, err)
		}
		wantRevenue += sale.Revenue
	}

	for _, g := range []Granularity{ByDay, ByMonth, ByYear} {
		stats, err := f.reports.Summarize("Main", g, zeroTime, zeroTime)
		if err != nil {
			t.Fatalf("summarize %s: %v", g, err)
		}
		var got float64
		for _, b := range stats {
			got += b.Revenue
		}
		if !almostEqual(got, wantRevenue) {
			t.Errorf("%s: revenue over periods = %v, want %v", g, got, wantRevenue)
		}
	}
}

func TestExpenseOnlyBucketStillAppears(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")
	if _, err := f.expenses.Record("Main", ExpenseSalary, 5000, date(2025, 4, 1), "cook"); err != nil {
		t.Fatalf("expense: %v", err)
	}

	stats, err := f.reports.Summarize("Main", ByMonth, zeroTime, zeroTime)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("periods = %d, want 1", len(stats))
	}
	if stats[0].Revenue != 0 || !almostEqual(stats[0].FinalProfit, -5000) {
		t.Errorf("bucket = %+v, want zero sales side and final profit -5000", stats[0])
	}
}

func TestSummarizeOrdersAndFiltersPeriods(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")
	for _, d := range []time.Time{date(2025, 5, 1), date(2025, 1, 1), date(2025, 3, 1)} {
		if _, err := f.expenses.Record("Main", ExpenseOther, 10, d, ""); err != nil {
			t.Fatalf("expense: %v", err)
		}
	}

	stats, err := f.reports.Summarize("Main", ByMonth, zeroTime, zeroTime)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	want := []string{"2025-01", "2025-03", "2025-05"}
	if len(stats) != len(want) {
		t.Fatalf("periods = %d, want %d", len(stats), len(want))
	}
	for i, b := range stats {
		if b.Period != want[i] {
			t.Errorf("period[%d] = %q, want %q", i, b.Period, want[i])
		}
	}

	ranged, err := f.reports.Summarize("Main", ByMonth, date(2025, 2, 1), date(2025, 4, 1))
	if err != nil {
		t.Fatalf("summarize ranged: %v", err)
	}
	if len(ranged) != 1 || ranged[0].Period != "2025-03" {
		t.Errorf("ranged = %+v, want only 2025-03", ranged)
	}
}

func TestSummarizeRejectsBadGranularity(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")
	if _, err := f.reports.Summarize("Main", Granularity("week"), zeroTime, zeroTime); err == nil {
		t.Error("week granularity accepted, want error")
	}
}

func TestDashboardTotals(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")
	f.mustStock(t, "Main", "Flour", 10, UnitKilogram, 100)
	f.mustStock(t, "Main", "Yeast", 100, UnitGram, 20) // below 500g threshold
	f.mustRecipe(t, "Bread", map[string]float64{"Flour": 2})
	if _, err := f.settlement.RecordSale(SaleInput{Outlet: "Main", Dish: "Bread", Price: 50}); err != nil {
		t.Fatalf("sale: %v", err)
	}
	if _, err := f.expenses.Record("Main", ExpenseRent, 100, date(2025, 1, 1), ""); err != nil {
		t.Fatalf("expense: %v", err)
	}

	d := f.reports.Dashboard("Main")
	if d.Sales != 1 || !almostEqual(d.Revenue, 50) {
		t.Errorf("dashboard sales = %d revenue = %v", d.Sales, d.Revenue)
	}
	if !almostEqual(d.FinalProfit, -70) {
		t.Errorf("final profit = %v, want -70", d.FinalProfit)
	}
	if d.StockLines != 2 || d.LowStock != 2 {
		t.Errorf("stock lines = %d low = %d, want 2 and 2", d.StockLines, d.LowStock)
	}
}
