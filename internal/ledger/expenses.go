package ledger

import (
	"fmt"
	"time"
)

// Expenses owns the free-form dated expense log. Expenses only meet sales at
// reporting time.
type Expenses struct {
	s *Store
}

func NewExpenses(s *Store) *Expenses {
	return &Expenses{s: s}
}

func (x *Expenses) Record(outlet string, category ExpenseCategory, amount float64, date time.Time, notes string) (ExpenseRecord, error) {
	if amount < 0 {
		return ExpenseRecord{}, fmt.Errorf("amount cannot be negative: %w", ErrValidation)
	}
	if _, err := ParseExpenseCategory(string(category)); err != nil {
		return ExpenseRecord{}, err
	}
	if date.IsZero() {
		date = time.Now()
	}

	x.s.mu.Lock()
	defer x.s.mu.Unlock()

	if x.s.findOutlet(outlet) == nil {
		return ExpenseRecord{}, fmt.Errorf("outlet %q: %w", outlet, ErrUnknownOutlet)
	}

	e := &ExpenseRecord{
		ID:       x.s.allocID(),
		Date:     date,
		Outlet:   outlet,
		Category: category,
		Amount:   amount,
		Notes:    notes,
	}
	x.s.expenses = append(x.s.expenses, e)
	return *e, nil
}

func (x *Expenses) Delete(id uint64) error {
	x.s.mu.Lock()
	defer x.s.mu.Unlock()

	for i, e := range x.s.expenses {
		if e.ID == id {
			x.s.expenses = append(x.s.expenses[:i], x.s.expenses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("expense %d: %w", id, ErrNotFound)
}

// List returns the outlet's expenses in record order, optionally bounded by
// [from, to].
func (x *Expenses) List(outlet string, from, to time.Time) []ExpenseRecord {
	x.s.mu.Lock()
	defer x.s.mu.Unlock()

	out := make([]ExpenseRecord, 0)
	for _, e := range x.s.expenses {
		if e.Outlet == outlet && withinRange(e.Date, from, to) {
			out = append(out, *e)
		}
	}
	return out
}
