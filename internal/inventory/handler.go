package inventory

import (
	"cloudk-backend/internal/ledger"
	"cloudk-backend/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AddStockRequest struct {
	Outlet    string  `json:"outlet"`
	Item      string  `json:"item"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	TotalCost float64 `json:"total_cost"`
}

type StockLineResponse struct {
	ID        uint64  `json:"id"`
	Outlet    string  `json:"outlet"`
	Item      string  `json:"item"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	TotalCost float64 `json:"total_cost"`
	UnitCost  float64 `json:"unit_cost"`
}

func toResponse(l ledger.StockLine) StockLineResponse {
	return StockLineResponse{
		ID:        l.ID,
		Outlet:    l.Outlet,
		Item:      l.Item,
		Quantity:  l.Quantity,
		Unit:      string(l.Unit),
		TotalCost: web.Round2(l.TotalCost),
		UnitCost:  web.Round2(l.UnitCost()),
	}
}

func requireOutletQuery(c *fiber.Ctx) (string, error) {
	outlet := c.Query("outlet")
	if outlet == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "outlet query parameter is required")
	}
	return outlet, nil
}

// POST /api/stock
func AddStockHandler(inv *ledger.Inventory, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		l, err := inv.AddStock(body.Outlet, body.Item, body.Quantity, ledger.Unit(body.Unit), body.TotalCost)
		if err != nil {
			return web.Error(err)
		}

		log.WithFields(logrus.Fields{
			"outlet":   l.Outlet,
			"item":     l.Item,
			"quantity": l.Quantity,
			"unit":     l.Unit,
		}).Info("stock added")
		return c.Status(fiber.StatusCreated).JSON(toResponse(l))
	}
}

// GET /api/stock?outlet=...
func ListStockHandler(inv *ledger.Inventory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		outlet, err := requireOutletQuery(c)
		if err != nil {
			return err
		}

		lines := inv.List(outlet)
		res := make([]StockLineResponse, 0, len(lines))
		for _, l := range lines {
			res = append(res, toResponse(l))
		}
		return c.JSON(res)
	}
}

// GET /api/stock/low?outlet=...
func LowStockHandler(inv *ledger.Inventory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		outlet, err := requireOutletQuery(c)
		if err != nil {
			return err
		}

		lines := inv.LowStock(outlet)
		res := make([]StockLineResponse, 0, len(lines))
		for _, l := range lines {
			res = append(res, toResponse(l))
		}
		return c.JSON(res)
	}
}

// DELETE /api/stock/:id
func RemoveStockLineHandler(inv *ledger.Inventory, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.ParseID(c)
		if err != nil {
			return err
		}

		if err := inv.RemoveLine(id); err != nil {
			return web.Error(err)
		}

		log.WithFields(logrus.Fields{"stock_line": id}).Info("stock line removed")
		return c.SendStatus(fiber.StatusNoContent)
	}
}
