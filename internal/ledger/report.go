package ledger

import (
	"fmt"
	"sort"
	"time"
)

type Granularity string

const (
	ByDay   Granularity = "day"
	ByMonth Granularity = "month"
	ByYear  Granularity = "year"
)

func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case ByDay, ByMonth, ByYear:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("granularity %q: %w", s, ErrValidation)
}

func (g Granularity) layout() string {
	switch g {
	case ByDay:
		return "2006-01-02"
	case ByYear:
		return "2006"
	default:
		return "2006-01"
	}
}

// PeriodStats is one row of a period report. The shape is deliberately flat:
// rows export straight to a spreadsheet.
type PeriodStats struct {
	Period         string  `json:"period"`
	Revenue        float64 `json:"revenue"`
	Commission     float64 `json:"commission"`
	Delivery       float64 `json:"delivery"`
	IngredientCost float64 `json:"ingredient_cost"`
	NetProfit      float64 `json:"net_profit"`
	Expenses       float64 `json:"expenses"`
	FinalProfit    float64 `json:"final_profit"`
}

// DashboardSummary totals one outlet across all time.
type DashboardSummary struct {
	Outlet      string  `json:"outlet"`
	Sales       int     `json:"sales"`
	Revenue     float64 `json:"revenue"`
	NetProfit   float64 `json:"net_profit"`
	Expenses    float64 `json:"expenses"`
	FinalProfit float64 `json:"final_profit"`
	StockLines  int     `json:"stock_lines"`
	LowStock    int     `json:"low_stock"`
}

// Reports aggregates the sale and expense logs. Read-only.
type Reports struct {
	s *Store
}

func NewReports(s *Store) *Reports {
	return &Reports{s: s}
}

// Summarize buckets the outlet's sales and expenses by period and outer-joins
// them: a period holding only expenses (or only sales) still gets a row, with
// the missing side at 0. final_profit = net profit sum - expense sum. Rows
// come back ordered by period.
func (r *Reports) Summarize(outlet string, g Granularity, from, to time.Time) ([]PeriodStats, error) {
	if _, err := ParseGranularity(string(g)); err != nil {
		return nil, err
	}
	layout := g.layout()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	buckets := make(map[string]*PeriodStats)
	bucket := func(key string) *PeriodStats {
		b, ok := buckets[key]
		if !ok {
			b = &PeriodStats{Period: key}
			buckets[key] = b
		}
		return b
	}

	for _, sale := range r.s.sales {
		if sale.Outlet != outlet || !withinRange(sale.Date, from, to) {
			continue
		}
		b := bucket(sale.Date.Format(layout))
		b.Revenue += sale.Revenue
		b.Commission += sale.Commission
		b.Delivery += sale.Delivery
		b.IngredientCost += sale.IngredientCost
		b.NetProfit += sale.NetProfit
	}
	for _, e := range r.s.expenses {
		if e.Outlet != outlet || !withinRange(e.Date, from, to) {
			continue
		}
		bucket(e.Date.Format(layout)).Expenses += e.Amount
	}

	out := make([]PeriodStats, 0, len(buckets))
	for _, b := range buckets {
		b.FinalProfit = b.NetProfit - b.Expenses
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out, nil
}

// Dashboard totals the outlet across all time, the quick-look numbers the
// original product showed on its landing screen.
func (r *Reports) Dashboard(outlet string) DashboardSummary {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d := DashboardSummary{Outlet: outlet}
	for _, sale := range r.s.sales {
		if sale.Outlet != outlet {
			continue
		}
		d.Sales++
		d.Revenue += sale.Revenue
		d.NetProfit += sale.NetProfit
	}
	for _, e := range r.s.expenses {
		if e.Outlet == outlet {
			d.Expenses += e.Amount
		}
	}
	for _, l := range r.s.stock {
		if l.Outlet != outlet {
			continue
		}
		d.StockLines++
		if l.Quantity < l.Unit.LowStockThreshold() {
			d.LowStock++
		}
	}
	d.FinalProfit = d.NetProfit - d.Expenses
	return d
}
