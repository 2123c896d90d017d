package sales

import (
	"errors"
	"time"

	"cloudk-backend/internal/ledger"
	"cloudk-backend/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RecordSaleRequest struct {
	Outlet   string `json:"outlet"`
	Dish     string `json:"dish"`
	Platform string `json:"platform"`
	// Price overrides the menu price; when omitted the stored menu price is
	// used.
	Price         *float64 `json:"price"`
	Tax           float64  `json:"tax"`
	ExtraDelivery float64  `json:"extra_delivery"`
	Date          string   `json:"date"` // "2025-12-09", defaults to today
}

type SaleResponse struct {
	ID             uint64  `json:"id"`
	Date           string  `json:"date"`
	Outlet         string  `json:"outlet"`
	Dish           string  `json:"dish"`
	Platform       string  `json:"platform"`
	Revenue        float64 `json:"revenue"`
	Commission     float64 `json:"commission"`
	Delivery       float64 `json:"delivery"`
	IngredientCost float64 `json:"ingredient_cost"`
	Tax            float64 `json:"tax"`
	NetProfit      float64 `json:"net_profit"`
}

func toResponse(s ledger.SaleRecord) SaleResponse {
	return SaleResponse{
		ID:             s.ID,
		Date:           s.Date.Format(web.DateLayout),
		Outlet:         s.Outlet,
		Dish:           s.Dish,
		Platform:       s.Platform,
		Revenue:        web.Round2(s.Revenue),
		Commission:     web.Round2(s.Commission),
		Delivery:       web.Round2(s.Delivery),
		IngredientCost: web.Round2(s.IngredientCost),
		Tax:            web.Round2(s.Tax),
		NetProfit:      web.Round2(s.NetProfit),
	}
}

// POST /api/sales
func RecordSaleHandler(eng *ledger.Settlement, cat *ledger.Catalog, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var saleDate time.Time
		if body.Date != "" {
			d, err := web.ParseDate(body.Date)
			if err != nil {
				return err
			}
			saleDate = d
		}

		var price float64
		if body.Price != nil {
			price = *body.Price
		} else {
			p, ok := cat.Price(body.Dish)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "No menu price set for this dish, pass a price")
			}
			price = p
		}

		sale, err := eng.RecordSale(ledger.SaleInput{
			Outlet:        body.Outlet,
			Dish:          body.Dish,
			Platform:      body.Platform,
			Price:         price,
			Tax:           body.Tax,
			ExtraDelivery: body.ExtraDelivery,
			Date:          saleDate,
		})
		if err != nil {
			var ins *ledger.InsufficientStockError
			if errors.As(err, &ins) {
				// richer body so the till can show what ran out
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error":     ins.Error(),
					"item":      ins.Item,
					"needed":    ins.Needed,
					"available": ins.Available,
				})
			}
			return web.Error(err)
		}

		log.WithFields(logrus.Fields{
			"sale":     sale.ID,
			"outlet":   sale.Outlet,
			"dish":     sale.Dish,
			"platform": sale.Platform,
			"profit":   sale.NetProfit,
		}).Info("sale recorded")
		return c.Status(fiber.StatusCreated).JSON(toResponse(sale))
	}
}

// GET /api/sales?outlet=...&from=...&to=...
func ListSalesHandler(eng *ledger.Settlement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		outlet := c.Query("outlet")
		if outlet == "" {
			return fiber.NewError(fiber.StatusBadRequest, "outlet query parameter is required")
		}
		from, to, err := web.DateRange(c)
		if err != nil {
			return err
		}

		rows := eng.List(outlet, from, to)
		res := make([]SaleResponse, 0, len(rows))
		for _, s := range rows {
			res = append(res, toResponse(s))
		}
		return c.JSON(res)
	}
}

// DELETE /api/sales/:id — removes the record only; debited stock stays
// consumed.
func DeleteSaleHandler(eng *ledger.Settlement, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.ParseID(c)
		if err != nil {
			return err
		}

		if err := eng.DeleteSale(id); err != nil {
			return web.Error(err)
		}

		log.WithFields(logrus.Fields{"sale": id}).Info("sale deleted, stock not restored")
		return c.SendStatus(fiber.StatusNoContent)
	}
}
