package ledger

// Snapshot is a full copy of the store for a persistence layer underneath the
// core. Prices are keyed by dish; NextID keeps ids monotonic across restarts.
type Snapshot struct {
	Outlets  []Outlet
	Stock    []StockLine
	Recipes  []Recipe
	Prices   map[string]float64
	Sales    []SaleRecord
	Expenses []ExpenseRecord
	NextID   uint64
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Outlets:  make([]Outlet, 0, len(s.outlets)),
		Stock:    make([]StockLine, 0, len(s.stock)),
		Recipes:  make([]Recipe, 0, len(s.recipes)),
		Prices:   make(map[string]float64, len(s.prices)),
		Sales:    make([]SaleRecord, 0, len(s.sales)),
		Expenses: make([]ExpenseRecord, 0, len(s.expenses)),
		NextID:   s.nextID,
	}
	for _, o := range s.outlets {
		snap.Outlets = append(snap.Outlets, copyOutlet(o))
	}
	for _, l := range s.stock {
		snap.Stock = append(snap.Stock, *l)
	}
	for _, rec := range s.recipes {
		snap.Recipes = append(snap.Recipes, Recipe{Dish: rec.Dish, Ingredients: copyIngredients(rec.Ingredients)})
	}
	for dish, p := range s.prices {
		snap.Prices[dish] = p
	}
	for _, sale := range s.sales {
		snap.Sales = append(snap.Sales, *sale)
	}
	for _, e := range s.expenses {
		snap.Expenses = append(snap.Expenses, *e)
	}
	return snap
}

// Restore replaces the store's contents wholesale. Meant for boot-time loads
// before the store is shared.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.outlets = nil
	for i := range snap.Outlets {
		o := copyOutlet(&snap.Outlets[i])
		s.outlets = append(s.outlets, &o)
	}
	s.stock = nil
	for _, l := range snap.Stock {
		line := l
		s.stock = append(s.stock, &line)
	}
	s.recipes = make(map[string]Recipe, len(snap.Recipes))
	for _, rec := range snap.Recipes {
		s.recipes[rec.Dish] = Recipe{Dish: rec.Dish, Ingredients: copyIngredients(rec.Ingredients)}
	}
	s.prices = make(map[string]float64, len(snap.Prices))
	for dish, p := range snap.Prices {
		s.prices[dish] = p
	}
	s.sales = nil
	for _, sale := range snap.Sales {
		rec := sale
		s.sales = append(s.sales, &rec)
	}
	s.expenses = nil
	for _, e := range snap.Expenses {
		rec := e
		s.expenses = append(s.expenses, &rec)
	}
	s.nextID = snap.NextID
}
