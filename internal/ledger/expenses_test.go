package ledger

import (
	"errors"
	"testing"
	"time"
)

func TestRecordExpense(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")

	e, err := f.expenses.Record("Main", ExpensePackaging, 250, date(2025, 2, 10), "pizza boxes")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if e.ID == 0 || e.Amount != 250 || e.Category != ExpensePackaging {
		t.Errorf("expense = %+v", e)
	}
}

func TestRecordExpenseValidation(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")

	if _, err := f.expenses.Record("Main", ExpenseRent, -1, date(2025, 1, 1), ""); !errors.Is(err, ErrValidation) {
		t.Errorf("negative amount = %v, want ErrValidation", err)
	}
	if _, err := f.expenses.Record("Main", ExpenseCategory("Bribes"), 10, date(2025, 1, 1), ""); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown category = %v, want ErrValidation", err)
	}
	if _, err := f.expenses.Record("Ghost", ExpenseRent, 10, date(2025, 1, 1), ""); !errors.Is(err, ErrUnknownOutlet) {
		t.Errorf("unknown outlet = %v, want ErrUnknownOutlet", err)
	}
}

func TestListExpensesFiltersByDate(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")
	for _, d := range []struct{ m, day int }{{1, 10}, {2, 10}, {3, 10}} {
		if _, err := f.expenses.Record("Main", ExpenseOther, 10, date(2025, time.Month(d.m), d.day), ""); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	all := f.expenses.List("Main", zeroTime, zeroTime)
	if len(all) != 3 {
		t.Fatalf("all = %d, want 3", len(all))
	}
	ranged := f.expenses.List("Main", date(2025, 2, 1), date(2025, 2, 28))
	if len(ranged) != 1 || ranged[0].Date.Month() != 2 {
		t.Errorf("ranged = %+v, want only February", ranged)
	}
}

func TestDeleteExpense(t *testing.T) {
	f := newFixture(Options{})
	f.mustOutlet(t, "Main")
	e, err := f.expenses.Record("Main", ExpenseRent, 100, date(2025, 1, 1), "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if err := f.expenses.Delete(e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(f.expenses.List("Main", zeroTime, zeroTime)); got != 0 {
		t.Errorf("expenses = %d, want 0", got)
	}
	if err := f.expenses.Delete(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}
