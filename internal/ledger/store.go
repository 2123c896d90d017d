package ledger

import (
	"sync"
	"time"
)

// Options configure store-wide policy.
type Options struct {
	// TaxReducesProfit subtracts recorded tax from net profit. Off by default:
	// tax is normally pass-through to the tax authority, not outlet revenue.
	TaxReducesProfit bool
}

// Store is the single shared in-memory database behind every component.
// It is created once at startup and handed to each component by reference;
// there is no package-level instance. One mutex covers all collections —
// contention is low and critical sections are short, so nothing finer is
// warranted. record_sale's check + debits + append all run under one hold
// of the lock, so readers never see a half-debited recipe.
type Store struct {
	mu   sync.Mutex
	opts Options

	outlets  []*Outlet
	stock    []*StockLine
	recipes  map[string]Recipe
	prices   map[string]float64
	sales    []*SaleRecord
	expenses []*ExpenseRecord

	nextID uint64
}

func NewStore(opts Options) *Store {
	return &Store{
		opts:    opts,
		recipes: make(map[string]Recipe),
		prices:  make(map[string]float64),
	}
}

// allocID hands out store-scoped monotonic ids. Caller holds mu.
func (s *Store) allocID() uint64 {
	s.nextID++
	return s.nextID
}

// findOutlet returns the active outlet by name, or nil. Caller holds mu.
func (s *Store) findOutlet(name string) *Outlet {
	for _, o := range s.outlets {
		if o.Name == name {
			return o
		}
	}
	return nil
}

func copyIngredients(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyOutlet(o *Outlet) Outlet {
	cp := *o
	cp.Platforms = append([]PlatformConfig(nil), o.Platforms...)
	return cp
}

// withinRange treats a zero bound as open.
func withinRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}
