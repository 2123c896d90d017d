package persist

import "time"

// Row types mirror the core records one to one. Ids come from the core's
// allocator, so primary keys are plain columns, not autoincrement.

type OutletRow struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null;unique"`
	CreatedAt time.Time `gorm:"not null"`
}

type PlatformRow struct {
	ID                uint    `gorm:"primaryKey"`
	Outlet            string  `gorm:"size:100;index;not null"`
	Name              string  `gorm:"size:100;not null"`
	CommissionPercent float64 `gorm:"not null"`
	DeliveryFee       float64 `gorm:"not null"`
}

type StockLineRow struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement:false"`
	Outlet    string    `gorm:"size:100;index;not null"`
	Item      string    `gorm:"size:100;index;not null"`
	Quantity  float64   `gorm:"not null"`
	Unit      string    `gorm:"size:10;not null"`
	TotalCost float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

type RecipeRow struct {
	ID          uint     `gorm:"primaryKey"`
	Dish        string   `gorm:"size:100;not null;unique"`
	Ingredients string   `gorm:"type:text;not null"` // JSON map item -> quantity
	Price       *float64 // nil when no menu price is set
}

type SaleRow struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement:false"`
	Date           time.Time `gorm:"index;not null"`
	Outlet         string    `gorm:"size:100;index;not null"`
	Dish           string    `gorm:"size:100;not null"`
	Platform       string    `gorm:"size:100;not null"`
	Revenue        float64   `gorm:"not null"`
	Commission     float64   `gorm:"not null"`
	Delivery       float64   `gorm:"not null"`
	IngredientCost float64   `gorm:"not null"`
	Tax            float64   `gorm:"not null"`
	NetProfit      float64   `gorm:"not null"`
}

type ExpenseRow struct {
	ID       uint64    `gorm:"primaryKey;autoIncrement:false"`
	Date     time.Time `gorm:"index;not null"`
	Outlet   string    `gorm:"size:100;index;not null"`
	Category string    `gorm:"size:50;not null"`
	Amount   float64   `gorm:"not null"`
	Notes    string    `gorm:"size:255"`
}

// MetaRow keeps the id allocator monotonic across restarts. Single row.
type MetaRow struct {
	ID     uint `gorm:"primaryKey"`
	NextID uint64
}
