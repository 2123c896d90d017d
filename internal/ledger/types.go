package ledger

import (
	"fmt"
	"time"
)

// Unit: measurement unit of a stock line.
type Unit string

const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitPiece      Unit = "pcs"
)

func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitPiece:
		return Unit(s), nil
	}
	return "", fmt.Errorf("unit %q: %w", s, ErrValidation)
}

// LowStockThreshold: smallest-denomination units (g, ml) run low below 500,
// everything else below 10.
func (u Unit) LowStockThreshold() float64 {
	switch u {
	case UnitGram, UnitMilliliter:
		return 500
	default:
		return 10
	}
}

// PlatformConfig: fee schedule of one order channel for one outlet.
type PlatformConfig struct {
	Name              string  `json:"name"`
	CommissionPercent float64 `json:"commission_percent"`
	DeliveryFee       float64 `json:"delivery_fee"`
}

type Outlet struct {
	Name      string           `json:"name"`
	Platforms []PlatformConfig `json:"platforms"`
	CreatedAt time.Time        `json:"created_at"`
}

// StockLine: one purchase batch of an item. TotalCost is what was paid for the
// quantity currently on hand; it shrinks proportionally as the line is debited.
type StockLine struct {
	ID        uint64    `json:"id"`
	Outlet    string    `json:"outlet"`
	Item      string    `json:"item"`
	Quantity  float64   `json:"quantity"`
	Unit      Unit      `json:"unit"`
	TotalCost float64   `json:"total_cost"`
	CreatedAt time.Time `json:"created_at"`
}

// UnitCost is undefined for an empty line and reported as 0.
func (l StockLine) UnitCost() float64 {
	if l.Quantity > 0 {
		return l.TotalCost / l.Quantity
	}
	return 0
}

// Recipe: ingredient quantities needed for one unit of a dish. Dish names are
// global, not scoped per outlet.
type Recipe struct {
	Dish        string             `json:"dish"`
	Ingredients map[string]float64 `json:"ingredients"`
}

// SaleRecord: the settled result of one sale. Financial fields are never
// mutated after creation; deletion does not restore debited stock.
type SaleRecord struct {
	ID             uint64    `json:"id"`
	Date           time.Time `json:"date"`
	Outlet         string    `json:"outlet"`
	Dish           string    `json:"dish"`
	Platform       string    `json:"platform"`
	Revenue        float64   `json:"revenue"`
	Commission     float64   `json:"commission"`
	Delivery       float64   `json:"delivery"`
	IngredientCost float64   `json:"ingredient_cost"`
	Tax            float64   `json:"tax"`
	NetProfit      float64   `json:"net_profit"`
}

type ExpenseCategory string

const (
	ExpenseRent        ExpenseCategory = "Rent"
	ExpenseSalary      ExpenseCategory = "Salary"
	ExpenseElectricity ExpenseCategory = "Electricity"
	ExpensePackaging   ExpenseCategory = "Packaging"
	ExpenseMarketing   ExpenseCategory = "Marketing"
	ExpenseOther       ExpenseCategory = "Other"
)

func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch ExpenseCategory(s) {
	case ExpenseRent, ExpenseSalary, ExpenseElectricity, ExpensePackaging, ExpenseMarketing, ExpenseOther:
		return ExpenseCategory(s), nil
	}
	return "", fmt.Errorf("expense category %q: %w", s, ErrValidation)
}

type ExpenseRecord struct {
	ID       uint64          `json:"id"`
	Date     time.Time       `json:"date"`
	Outlet   string          `json:"outlet"`
	Category ExpenseCategory `json:"category"`
	Amount   float64         `json:"amount"`
	Notes    string          `json:"notes"`
}
