// Package persist layers optional durability under the in-memory core. The
// core never talks to the database: the server loads a snapshot at boot and
// flushes one after every successful command. Everything is synchronous, so
// the core's one-operation-at-a-time contract is untouched.
package persist

import (
	"encoding/json"
	"fmt"

	"cloudk-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DB struct {
	g   *gorm.DB
	log *logrus.Logger
}

func Open(dsn string, log *logrus.Logger) (*DB, error) {
	g, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	err = g.AutoMigrate(
		&OutletRow{},
		&PlatformRow{},
		&StockLineRow{},
		&RecipeRow{},
		&SaleRow{},
		&ExpenseRow{},
		&MetaRow{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &DB{g: g, log: log}, nil
}

// Load reads every table into a snapshot and restores the store from it.
func (d *DB) Load(s *ledger.Store) error {
	var snap ledger.Snapshot
	snap.Prices = make(map[string]float64)

	var outlets []OutletRow
	if err := d.g.Order("id asc").Find(&outlets).Error; err != nil {
		return err
	}
	var platforms []PlatformRow
	if err := d.g.Order("id asc").Find(&platforms).Error; err != nil {
		return err
	}
	for _, o := range outlets {
		out := ledger.Outlet{Name: o.Name, CreatedAt: o.CreatedAt}
		for _, p := range platforms {
			if p.Outlet == o.Name {
				out.Platforms = append(out.Platforms, ledger.PlatformConfig{
					Name:              p.Name,
					CommissionPercent: p.CommissionPercent,
					DeliveryFee:       p.DeliveryFee,
				})
			}
		}
		snap.Outlets = append(snap.Outlets, out)
	}

	var stock []StockLineRow
	if err := d.g.Order("id asc").Find(&stock).Error; err != nil {
		return err
	}
	for _, l := range stock {
		snap.Stock = append(snap.Stock, ledger.StockLine{
			ID:        l.ID,
			Outlet:    l.Outlet,
			Item:      l.Item,
			Quantity:  l.Quantity,
			Unit:      ledger.Unit(l.Unit),
			TotalCost: l.TotalCost,
			CreatedAt: l.CreatedAt,
		})
	}

	var recipes []RecipeRow
	if err := d.g.Find(&recipes).Error; err != nil {
		return err
	}
	for _, r := range recipes {
		ingredients := make(map[string]float64)
		if err := json.Unmarshal([]byte(r.Ingredients), &ingredients); err != nil {
			return fmt.Errorf("recipe %q: %w", r.Dish, err)
		}
		snap.Recipes = append(snap.Recipes, ledger.Recipe{Dish: r.Dish, Ingredients: ingredients})
		if r.Price != nil {
			snap.Prices[r.Dish] = *r.Price
		}
	}

	var sales []SaleRow
	if err := d.g.Order("id asc").Find(&sales).Error; err != nil {
		return err
	}
	for _, r := range sales {
		snap.Sales = append(snap.Sales, ledger.SaleRecord{
			ID:             r.ID,
			Date:           r.Date,
			Outlet:         r.Outlet,
			Dish:           r.Dish,
			Platform:       r.Platform,
			Revenue:        r.Revenue,
			Commission:     r.Commission,
			Delivery:       r.Delivery,
			IngredientCost: r.IngredientCost,
			Tax:            r.Tax,
			NetProfit:      r.NetProfit,
		})
	}

	var expenses []ExpenseRow
	if err := d.g.Order("id asc").Find(&expenses).Error; err != nil {
		return err
	}
	for _, r := range expenses {
		snap.Expenses = append(snap.Expenses, ledger.ExpenseRecord{
			ID:       r.ID,
			Date:     r.Date,
			Outlet:   r.Outlet,
			Category: ledger.ExpenseCategory(r.Category),
			Amount:   r.Amount,
			Notes:    r.Notes,
		})
	}

	var meta MetaRow
	if err := d.g.First(&meta).Error; err == nil {
		snap.NextID = meta.NextID
	}

	s.Restore(snap)
	return nil
}

// Flush writes the whole snapshot in one transaction. The data set is one
// restaurant's books, small enough that replace-all beats tracking dirty rows.
func (d *DB) Flush(s *ledger.Store) error {
	snap := s.Snapshot()

	return d.g.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&OutletRow{}, &PlatformRow{}, &StockLineRow{}, &RecipeRow{}, &SaleRow{}, &ExpenseRow{}, &MetaRow{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		for i, o := range snap.Outlets {
			row := OutletRow{ID: uint(i + 1), Name: o.Name, CreatedAt: o.CreatedAt}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			for _, p := range o.Platforms {
				prow := PlatformRow{
					Outlet:            o.Name,
					Name:              p.Name,
					CommissionPercent: p.CommissionPercent,
					DeliveryFee:       p.DeliveryFee,
				}
				if err := tx.Create(&prow).Error; err != nil {
					return err
				}
			}
		}

		for _, l := range snap.Stock {
			row := StockLineRow{
				ID:        l.ID,
				Outlet:    l.Outlet,
				Item:      l.Item,
				Quantity:  l.Quantity,
				Unit:      string(l.Unit),
				TotalCost: l.TotalCost,
				CreatedAt: l.CreatedAt,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		for _, rec := range snap.Recipes {
			raw, err := json.Marshal(rec.Ingredients)
			if err != nil {
				return err
			}
			row := RecipeRow{Dish: rec.Dish, Ingredients: string(raw)}
			if p, ok := snap.Prices[rec.Dish]; ok {
				price := p
				row.Price = &price
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		for _, sale := range snap.Sales {
			row := SaleRow{
				ID:             sale.ID,
				Date:           sale.Date,
				Outlet:         sale.Outlet,
				Dish:           sale.Dish,
				Platform:       sale.Platform,
				Revenue:        sale.Revenue,
				Commission:     sale.Commission,
				Delivery:       sale.Delivery,
				IngredientCost: sale.IngredientCost,
				Tax:            sale.Tax,
				NetProfit:      sale.NetProfit,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		for _, e := range snap.Expenses {
			row := ExpenseRow{
				ID:       e.ID,
				Date:     e.Date,
				Outlet:   e.Outlet,
				Category: string(e.Category),
				Amount:   e.Amount,
				Notes:    e.Notes,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return tx.Create(&MetaRow{ID: 1, NextID: snap.NextID}).Error
	})
}

// Middleware flushes after every successful mutating request. A failed flush
// is logged, not returned — the command already applied in memory, and the
// next successful flush carries the full state anyway.
func (d *DB) Middleware(s *ledger.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil || c.Method() == fiber.MethodGet {
			return err
		}
		if c.Response().StatusCode() >= 400 {
			return err
		}
		if ferr := d.Flush(s); ferr != nil {
			d.log.WithFields(logrus.Fields{
				"module": "persist",
				"path":   c.Path(),
			}).Error(ferr.Error())
		}
		return err
	}
}
