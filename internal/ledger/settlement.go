package ledger

import (
	"fmt"
	"time"
)

// Settlement records sales: it prices the recipe from current stock, debits
// the ingredients and computes commission and profit, all under one hold of
// the store lock. It is the only component that creates SaleRecords.
type Settlement struct {
	s *Store
}

func NewSettlement(s *Store) *Settlement {
	return &Settlement{s: s}
}

// SaleInput describes one sale of one unit of a dish.
type SaleInput struct {
	Outlet   string
	Dish     string
	Platform string
	// Price is the declared selling price (the stored menu price is only a
	// default the caller may pass through).
	Price float64
	// Tax is recorded on the sale; whether it reduces profit is store policy.
	Tax float64
	// ExtraDelivery is added on top of the platform's fixed delivery fee.
	ExtraDelivery float64
	// Date defaults to now when zero.
	Date time.Time
}

// RecordSale settles one sale. Stock sufficiency is verified for the whole
// recipe before the first debit: either every ingredient is debited or none
// is. An unconfigured platform falls back to the zero-fee Direct schedule
// instead of failing.
func (e *Settlement) RecordSale(in SaleInput) (SaleRecord, error) {
	if in.Price < 0 {
		return SaleRecord{}, fmt.Errorf("price cannot be negative: %w", ErrValidation)
	}
	if in.Tax < 0 || in.ExtraDelivery < 0 {
		return SaleRecord{}, fmt.Errorf("tax and extra delivery cannot be negative: %w", ErrValidation)
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	if in.Platform == "" {
		in.Platform = DirectPlatform
	}

	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	o := e.s.findOutlet(in.Outlet)
	if o == nil {
		return SaleRecord{}, fmt.Errorf("outlet %q: %w", in.Outlet, ErrUnknownOutlet)
	}
	rec, ok := e.s.recipes[in.Dish]
	if !ok {
		return SaleRecord{}, fmt.Errorf("dish %q: %w", in.Dish, ErrUnknownDish)
	}

	// Price ingredients and check stock for the whole recipe up front.
	var ingredientCost float64
	for item, per := range rec.Ingredients {
		if avail := e.s.available(in.Outlet, item); avail < per {
			return SaleRecord{}, &InsufficientStockError{Item: item, Needed: per, Available: avail}
		}
		ingredientCost += e.s.unitCost(in.Outlet, item) * per
	}
	for item, per := range rec.Ingredients {
		e.s.debit(in.Outlet, item, per)
	}

	pc := platformSchedule(o, in.Platform)
	commission := in.Price * pc.CommissionPercent / 100
	delivery := pc.DeliveryFee + in.ExtraDelivery

	profit := in.Price - commission - delivery - ingredientCost
	if e.s.opts.TaxReducesProfit {
		profit -= in.Tax
	}

	sale := &SaleRecord{
		ID:             e.s.allocID(),
		Date:           in.Date,
		Outlet:         in.Outlet,
		Dish:           in.Dish,
		Platform:       in.Platform,
		Revenue:        in.Price,
		Commission:     commission,
		Delivery:       delivery,
		IngredientCost: ingredientCost,
		Tax:            in.Tax,
		NetProfit:      profit,
	}
	e.s.sales = append(e.s.sales, sale)
	return *sale, nil
}

// platformSchedule resolves the fee schedule, defaulting to Direct/zero-fee
// for platforms never configured on this outlet. The sale keeps the declared
// platform name either way.
func platformSchedule(o *Outlet, platform string) PlatformConfig {
	for _, pc := range o.Platforms {
		if pc.Name == platform {
			return pc
		}
	}
	return PlatformConfig{Name: DirectPlatform}
}

// DeleteSale removes the record only. Debited stock is NOT restored — sales
// are not reversible transactions; restocking is a manual inventory
// operation. Documented limitation, not a bug.
func (e *Settlement) DeleteSale(id uint64) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	for i, sale := range e.s.sales {
		if sale.ID == id {
			e.s.sales = append(e.s.sales[:i], e.s.sales[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("sale %d: %w", id, ErrNotFound)
}

// List returns the outlet's sales in record order, optionally bounded by
// [from, to] (zero time = open end). Removed outlets can still be queried by
// their historical name.
func (e *Settlement) List(outlet string, from, to time.Time) []SaleRecord {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	out := make([]SaleRecord, 0)
	for _, sale := range e.s.sales {
		if sale.Outlet == outlet && withinRange(sale.Date, from, to) {
			out = append(out, *sale)
		}
	}
	return out
}
